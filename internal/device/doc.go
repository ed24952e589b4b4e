// Package device implements the array layer beneath the kernel runtime:
// backend-owned Buffers and the strided, aliasing ArrayViews that expose
// them.
//
// A Buffer is a raw block of memory belonging to exactly one backend. An
// ArrayView is a non-owning window into a Buffer described by an element
// offset, a shape and per-axis strides; several views may overlap the same
// cells, and a write through one view is immediately visible through every
// other view of that memory. Views never outlive their buffer.
//
// Host arrays cross this boundary through CopyIn and CopyOut; CopyOut always
// materializes a fresh contiguous host slice, decoupled from device-side
// aliasing.
package device
