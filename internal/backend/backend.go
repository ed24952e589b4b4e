package backend

import (
	"fmt"
	"runtime"

	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/kernel"
)

// Backend is one concrete execution environment. The set of variants is
// small and fixed; dispatch happens over this closed interface rather than
// anything open-ended.
type Backend interface {
	Name() string
	Available() bool
	Alloc(n int, dtype device.DType) (*device.Buffer, error)
	Free(buf *device.Buffer)
	ToDevice(host any) (device.ArrayView, error)
	FromDevice(v device.ArrayView) (any, error)
	Compile(program, name string, desc kernel.Desc) (*kernel.Compiled, error)
	Invoke(k *kernel.Compiled, c *kernel.Call, n int) error
	Cleanup()
}

// New returns the named backend with default tuning.
func New(name string) (Backend, error) {
	switch name {
	case "serial":
		return NewSerial(), nil
	case "threads":
		return NewThreads(0), nil
	case "workgroup":
		return NewWorkgroup(0), nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

// All returns one instance of every backend variant.
func All() []Backend {
	return []Backend{NewSerial(), NewThreads(0), NewWorkgroup(0)}
}

// AutoSelect picks the best backend for this host.
func AutoSelect() Backend {
	if runtime.NumCPU() > 1 {
		return NewThreads(0)
	}
	return NewSerial()
}

// alloc backs every CPU-hosted variant's Alloc.
func alloc(owner string, n int, dtype device.DType) (*device.Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative buffer length %d", device.ErrShape, n)
	}
	return device.NewBuffer(owner, n, dtype), nil
}

// toDevice allocates a buffer on the owning backend and copies a host array
// into it.
func toDevice(owner string, host any) (device.ArrayView, error) {
	var n int
	var dt device.DType
	switch h := host.(type) {
	case []float64:
		n, dt = len(h), device.Float64
	case []int32:
		n, dt = len(h), device.Int32
	case []int64:
		n, dt = len(h), device.Int64
	default:
		return device.ArrayView{}, fmt.Errorf("%w: unsupported host array type %T", device.ErrTypeMismatch, host)
	}
	v := device.NewBuffer(owner, n, dt).View()
	if err := device.CopyIn(v, host); err != nil {
		return device.ArrayView{}, err
	}
	return v, nil
}

// validate rejects an invocation before any work is issued: negative index
// ranges, kernels compiled for another backend, foreign buffers, and
// argument arrays shorter than the index range.
func validate(b Backend, k *kernel.Compiled, c *kernel.Call, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative index range %d", device.ErrShape, n)
	}
	if k.Backend != b.Name() {
		return fmt.Errorf("kernel %q was compiled for backend %q, invoked on %q",
			k.Name, k.Backend, b.Name())
	}
	for i := 0; i < c.Len(); i++ {
		a := c.Arg(i)
		if !a.Pointer {
			continue
		}
		v := c.View(i)
		if v.Len() < n {
			return fmt.Errorf("%w: argument %q holds %d elements, invocation wants %d",
				device.ErrShape, a.Name, v.Len(), n)
		}
		if v.Buffer().Owner() != b.Name() {
			return fmt.Errorf("%w: argument %q lives on backend %q, invoked on %q",
				device.ErrTypeMismatch, a.Name, v.Buffer().Owner(), b.Name())
		}
	}
	return nil
}
