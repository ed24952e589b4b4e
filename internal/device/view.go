package device

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ArrayView is a non-owning, possibly strided window into a Buffer. Views
// may alias: writes through one view are visible through any other view of
// the same cells, and views over disjoint cells never interfere.
type ArrayView struct {
	buf     *Buffer
	dtype   DType
	offset  int // element offset into the buffer
	shape   []int
	strides []int // element strides, one per axis
}

// View builds a strided view over buf. It fails with ErrTypeMismatch when
// dtype disagrees with the buffer and with ErrOutOfBounds when any
// addressable element falls outside the buffer.
func View(buf *Buffer, dtype DType, offset int, shape, strides []int) (ArrayView, error) {
	if dtype != buf.dtype {
		return ArrayView{}, fmt.Errorf("%w: %s view over %s buffer", ErrTypeMismatch, dtype, buf.dtype)
	}
	if len(shape) != len(strides) {
		return ArrayView{}, fmt.Errorf("%w: %d axes with %d strides", ErrShape, len(shape), len(strides))
	}
	v := ArrayView{
		buf:     buf,
		dtype:   dtype,
		offset:  offset,
		shape:   append([]int(nil), shape...),
		strides: append([]int(nil), strides...),
	}
	lo, hi := v.bounds()
	if lo < 0 || hi > buf.n {
		return ArrayView{}, fmt.Errorf("%w: elements [%d, %d) over %d-element buffer",
			ErrOutOfBounds, lo, hi, buf.n)
	}
	return v, nil
}

// Len returns the number of logical elements the view addresses.
func (v ArrayView) Len() int {
	if len(v.shape) == 0 {
		return 0
	}
	n := 1
	for _, s := range v.shape {
		n *= s
	}
	return n
}

func (v ArrayView) Shape() []int    { return append([]int(nil), v.shape...) }
func (v ArrayView) Strides() []int  { return append([]int(nil), v.strides...) }
func (v ArrayView) DType() DType    { return v.dtype }
func (v ArrayView) Buffer() *Buffer { return v.buf }

// Contiguous reports whether the view walks its buffer without gaps in
// row-major order.
func (v ArrayView) Contiguous() bool {
	stride := 1
	for ax := len(v.shape) - 1; ax >= 0; ax-- {
		if v.shape[ax] > 1 && v.strides[ax] != stride {
			return false
		}
		stride *= v.shape[ax]
	}
	return true
}

// bounds returns the half-open element range [lo, hi) the view can address.
func (v ArrayView) bounds() (lo, hi int) {
	if v.Len() == 0 {
		return 0, 0
	}
	lo, hi = v.offset, v.offset
	for ax, s := range v.shape {
		span := (s - 1) * v.strides[ax]
		if span >= 0 {
			hi += span
		} else {
			lo += span
		}
	}
	return lo, hi + 1
}

// Slice narrows the first axis to [start, stop) with the given step. The
// result aliases the same buffer; writing through it mutates the parent in
// place.
func (v ArrayView) Slice(start, stop, step int) (ArrayView, error) {
	if len(v.shape) == 0 {
		return ArrayView{}, fmt.Errorf("%w: slicing a scalar view", ErrShape)
	}
	if step <= 0 {
		return ArrayView{}, fmt.Errorf("%w: non-positive slice step %d", ErrShape, step)
	}
	if start < 0 || stop > v.shape[0] || start > stop {
		return ArrayView{}, fmt.Errorf("%w: slice [%d:%d] of axis length %d",
			ErrOutOfBounds, start, stop, v.shape[0])
	}
	shape := append([]int(nil), v.shape...)
	shape[0] = (stop - start + step - 1) / step
	strides := append([]int(nil), v.strides...)
	strides[0] = v.strides[0] * step
	return ArrayView{
		buf:     v.buf,
		dtype:   v.dtype,
		offset:  v.offset + start*v.strides[0],
		shape:   shape,
		strides: strides,
	}, nil
}

// elem maps a logical row-major flat index to a buffer element index.
func (v ArrayView) elem(i int) int {
	e := v.offset
	for ax := len(v.shape) - 1; ax >= 0; ax-- {
		if d := v.shape[ax]; d > 0 {
			e += (i % d) * v.strides[ax]
			i /= d
		}
	}
	return e
}

// Typed element access. Callers are expected to have validated the view's
// dtype at the marshaling boundary; the accessors themselves sit inside
// kernel loops and do not re-check it.

func (v ArrayView) Float64(i int) float64 {
	off := v.elem(i) * v.dtype.Size()
	return math.Float64frombits(binary.LittleEndian.Uint64(v.buf.data[off:]))
}

func (v ArrayView) SetFloat64(i int, val float64) {
	off := v.elem(i) * v.dtype.Size()
	binary.LittleEndian.PutUint64(v.buf.data[off:], math.Float64bits(val))
}

func (v ArrayView) Int32(i int) int32 {
	off := v.elem(i) * v.dtype.Size()
	return int32(binary.LittleEndian.Uint32(v.buf.data[off:]))
}

func (v ArrayView) SetInt32(i int, val int32) {
	off := v.elem(i) * v.dtype.Size()
	binary.LittleEndian.PutUint32(v.buf.data[off:], uint32(val))
}

func (v ArrayView) Int64(i int) int64 {
	off := v.elem(i) * v.dtype.Size()
	return int64(binary.LittleEndian.Uint64(v.buf.data[off:]))
}

func (v ArrayView) SetInt64(i int, val int64) {
	off := v.elem(i) * v.dtype.Size()
	binary.LittleEndian.PutUint64(v.buf.data[off:], uint64(val))
}
