package device

// Buffer is a raw block of typed memory owned by the backend that allocated
// it. Buffers are never shared across backends, and a Buffer must outlive
// every ArrayView referencing it.
type Buffer struct {
	data  []byte
	dtype DType
	n     int
	owner string
}

// NewBuffer allocates an n-element buffer belonging to the named backend.
func NewBuffer(owner string, n int, dtype DType) *Buffer {
	return &Buffer{
		data:  make([]byte, n*dtype.Size()),
		dtype: dtype,
		n:     n,
		owner: owner,
	}
}

func (b *Buffer) Len() int      { return b.n }
func (b *Buffer) DType() DType  { return b.dtype }
func (b *Buffer) Owner() string { return b.owner }

// Release drops the backing storage. Every view into the buffer becomes
// invalid.
func (b *Buffer) Release() {
	b.data = nil
	b.n = 0
}

// View returns the full contiguous view of the buffer.
func (b *Buffer) View() ArrayView {
	return ArrayView{
		buf:     b,
		dtype:   b.dtype,
		shape:   []int{b.n},
		strides: []int{1},
	}
}
