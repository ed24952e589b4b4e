package backend

import (
	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/kernel"
)

// Serial executes kernels on a single OS thread in index order. It is the
// reference behavior the parallel variants must reproduce exactly.
type Serial struct{}

func NewSerial() *Serial { return &Serial{} }

func (s *Serial) Name() string    { return "serial" }
func (s *Serial) Available() bool { return true }

func (s *Serial) Alloc(n int, dtype device.DType) (*device.Buffer, error) {
	return alloc(s.Name(), n, dtype)
}

func (s *Serial) Free(buf *device.Buffer) { buf.Release() }

func (s *Serial) ToDevice(host any) (device.ArrayView, error) {
	return toDevice(s.Name(), host)
}

func (s *Serial) FromDevice(v device.ArrayView) (any, error) {
	return device.CopyOut(v)
}

func (s *Serial) Compile(program, name string, desc kernel.Desc) (*kernel.Compiled, error) {
	return kernel.Compile(program, name, desc, s.Name())
}

func (s *Serial) Invoke(k *kernel.Compiled, c *kernel.Call, n int) error {
	if err := validate(s, k, c, n); err != nil {
		return err
	}
	for tid := 0; tid < n; tid++ {
		k.Run(tid, c)
	}
	return nil
}

func (s *Serial) Cleanup() {}
