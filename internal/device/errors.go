package device

import "errors"

// Error taxonomy of the array and dispatch layers. Every failure is surfaced
// synchronously at the offending call and never retried; a failed call leaves
// previously copied-out results untouched.
var (
	// ErrOutOfBounds indicates a view whose shape/strides address memory
	// outside its buffer.
	ErrOutOfBounds = errors.New("device: view exceeds buffer bounds")

	// ErrTypeMismatch indicates a descriptor/argument element-type
	// disagreement.
	ErrTypeMismatch = errors.New("device: element type mismatch")

	// ErrShape indicates inconsistent argument or array extents. Mismatches
	// are rejected before dispatch, never silently truncated or broadcast.
	ErrShape = errors.New("device: shape mismatch")
)
