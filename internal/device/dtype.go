package device

// DType identifies the element type of a Buffer or ArrayView. Device kernels
// have no native complex type, so complex quantities always travel as two
// Float64 components.
type DType int

const (
	Int32 DType = iota
	Int64
	Float64
)

// Size returns the element width in bytes.
func (d DType) Size() int {
	switch d {
	case Int32:
		return 4
	case Int64, Float64:
		return 8
	}
	return 0
}

func (d DType) String() string {
	switch d {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	}
	return "unknown"
}
