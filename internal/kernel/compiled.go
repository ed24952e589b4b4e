package kernel

import (
	"fmt"
	"strings"
)

// Compiled is one kernel built for one backend: the validated entry bound
// to its registered elementwise implementation. Invoking it runs the body
// for each index in [0, n), with n supplied at call time.
type Compiled struct {
	Name        string
	Desc        Desc
	Backend     string
	Fingerprint string
	impl        Impl
}

// Run executes the kernel body for a single index.
func (k *Compiled) Run(tid int, c *Call) { k.impl(tid, c) }

// CompileError carries the diagnostic text of a failed kernel build. The
// kernel stays unusable on that backend until its source is corrected.
type CompileError struct {
	Kernel  string
	Backend string
	Diag    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("kernel %q failed to build on backend %q: %s", e.Kernel, e.Backend, e.Diag)
}

// Compile builds the named kernel from an assembled program text for one
// backend. It checks the elementwise loop shape, resolves every referenced
// symbol, validates the descriptor, and binds the registered entry
// implementation.
func Compile(program, name string, desc Desc, backendName string) (*Compiled, error) {
	fail := func(diag string) (*Compiled, error) {
		return nil, &CompileError{Kernel: name, Backend: backendName, Diag: diag}
	}

	decls, unresolved := analyze(program)
	if !decls[name] {
		return fail("entry not declared in program source")
	}
	if !strings.Contains(program, MarkerVectorize) || !strings.Contains(program, MarkerEnd) {
		return fail("missing vectorization markers around the tid loop")
	}
	if len(unresolved) > 0 {
		return fail("unresolved device function(s): " + strings.Join(unresolved, ", "))
	}

	if desc.NThreads == "" {
		return fail("descriptor names no index-range argument")
	}
	nOK := false
	for _, a := range desc.Args {
		if a.Name == desc.NThreads && !a.Pointer {
			nOK = true
		}
	}
	if !nOK {
		return fail(fmt.Sprintf("index-range argument %q is not a scalar in the descriptor list", desc.NThreads))
	}

	impl := LookupEntry(name)
	if impl == nil {
		return fail("no host implementation registered for entry")
	}

	return &Compiled{
		Name:        name,
		Desc:        desc,
		Backend:     backendName,
		Fingerprint: Fingerprint(program),
		impl:        impl,
	}, nil
}
