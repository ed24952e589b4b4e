// Package kernel models vectorized elementwise kernels: their textual
// source fragments, argument descriptors, and the compiled form backends
// dispatch.
//
// Kernel source keeps the dialect of the device builds: an entry function
// over (n, pointers...) whose body is a tid loop over [0, n) guarded by a
// bounds check and delimited by the advisory //vectorize_over and
// //end_vectorize markers. Compiling a source on a CPU-hosted backend
// validates that structure, resolves every symbol the body references, and
// binds the host implementation registered for the entry name. Compilation
// is a pure function of (source, backend), which is what makes compiled
// kernels cacheable by content.
package kernel
