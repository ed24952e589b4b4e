package kernel

import "regexp"

// Advisory markers delimiting the elementwise tid loop of a kernel body.
// They are vectorization hints for the compiling backend, not runtime
// semantics, but their presence is part of the required source shape.
const (
	MarkerVectorize = "//vectorize_over"
	MarkerEnd       = "//end_vectorize"
)

var (
	declRe = regexp.MustCompile(`void\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	callRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
)

// builtins are the math symbols every backend's device library provides.
var builtins = map[string]bool{
	"sqrt": true, "exp": true, "log": true, "pow": true, "fabs": true,
	"sin": true, "cos": true, "tan": true, "sincos": true, "hypot": true,
	"floor": true, "ceil": true, "printf": true,
}

var keywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "return": true,
	"sizeof": true, "void": true, "int": true, "double": true, "float": true,
	"const": true, "defined": true,
}

// analyze extracts the function names a program declares and the called
// symbols it cannot resolve against declarations, builtins, or registered
// device functions.
func analyze(program string) (decls map[string]bool, unresolved []string) {
	decls = make(map[string]bool)
	for _, m := range declRe.FindAllStringSubmatch(program, -1) {
		decls[m[1]] = true
	}
	seen := make(map[string]bool)
	for _, m := range callRe.FindAllStringSubmatch(program, -1) {
		name := m[1]
		if decls[name] || builtins[name] || keywords[name] || seen[name] {
			continue
		}
		if !IsDeviceFunc(name) {
			seen[name] = true
			unresolved = append(unresolved, name)
		}
	}
	return decls, unresolved
}
