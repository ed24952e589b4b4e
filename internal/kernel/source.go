package kernel

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Source is one translation unit: header fragments followed by a body.
// Concatenation order is significant; headers must define the symbols used
// by later fragments and by the body.
type Source struct {
	Headers []string
	Body    string
}

// Assemble joins the headers and the body in order.
func (s Source) Assemble() string {
	var b strings.Builder
	for _, h := range s.Headers {
		b.WriteString(h)
		b.WriteString("\n")
	}
	b.WriteString(s.Body)
	return b.String()
}

// AssembleAll concatenates a source set into a single program text.
func AssembleAll(sources []Source) string {
	var b strings.Builder
	for _, s := range sources {
		b.WriteString(s.Assemble())
		b.WriteString("\n")
	}
	return b.String()
}

// Fingerprint identifies a program text for compile caching.
func Fingerprint(program string) string {
	sum := sha256.Sum256([]byte(program))
	return hex.EncodeToString(sum[:])
}
