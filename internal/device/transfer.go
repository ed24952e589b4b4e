package device

import "fmt"

// CopyIn fills a view element by element from a contiguous host slice.
// The host length must match the view's extent exactly.
func CopyIn(v ArrayView, host any) error {
	switch h := host.(type) {
	case []float64:
		if v.dtype != Float64 {
			return fmt.Errorf("%w: []float64 host array into %s view", ErrTypeMismatch, v.dtype)
		}
		if len(h) != v.Len() {
			return fmt.Errorf("%w: %d host elements into %d-element view", ErrShape, len(h), v.Len())
		}
		for i, x := range h {
			v.SetFloat64(i, x)
		}
	case []int32:
		if v.dtype != Int32 {
			return fmt.Errorf("%w: []int32 host array into %s view", ErrTypeMismatch, v.dtype)
		}
		if len(h) != v.Len() {
			return fmt.Errorf("%w: %d host elements into %d-element view", ErrShape, len(h), v.Len())
		}
		for i, x := range h {
			v.SetInt32(i, x)
		}
	case []int64:
		if v.dtype != Int64 {
			return fmt.Errorf("%w: []int64 host array into %s view", ErrTypeMismatch, v.dtype)
		}
		if len(h) != v.Len() {
			return fmt.Errorf("%w: %d host elements into %d-element view", ErrShape, len(h), v.Len())
		}
		for i, x := range h {
			v.SetInt64(i, x)
		}
	default:
		return fmt.Errorf("%w: unsupported host array type %T", ErrTypeMismatch, host)
	}
	return nil
}

// CopyOut materializes a possibly strided view into a fresh contiguous host
// slice. The result is decoupled from the source: it shares no memory with
// the buffer.
func CopyOut(v ArrayView) (any, error) {
	switch v.dtype {
	case Float64:
		out := make([]float64, v.Len())
		for i := range out {
			out[i] = v.Float64(i)
		}
		return out, nil
	case Int32:
		out := make([]int32, v.Len())
		for i := range out {
			out[i] = v.Int32(i)
		}
		return out, nil
	case Int64:
		out := make([]int64, v.Len())
		for i := range out {
			out[i] = v.Int64(i)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: view has unknown element type", ErrTypeMismatch)
}

// CopyOutFloat64 is CopyOut for the common float64 case.
func CopyOutFloat64(v ArrayView) ([]float64, error) {
	if v.dtype != Float64 {
		return nil, fmt.Errorf("%w: copying %s view as float64", ErrTypeMismatch, v.dtype)
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.Float64(i)
	}
	return out, nil
}
