package backend

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/kernel"
)

// defaultGroupSize matches the workgroup extent of typical device builds.
const defaultGroupSize = 256

// Workgroup emulates an accelerator-parallel backend: one logical thread
// per index, grouped into fixed-size workgroups. Groups are claimed
// dynamically by a pool of host workers; the trailing group masks
// out-of-range logical threads with the same bounds guard a device build
// relies on.
type Workgroup struct {
	groupSize int
	workers   int
}

func NewWorkgroup(groupSize int) *Workgroup {
	if groupSize <= 0 {
		groupSize = defaultGroupSize
	}
	return &Workgroup{groupSize: groupSize, workers: runtime.NumCPU()}
}

func (w *Workgroup) Name() string    { return "workgroup" }
func (w *Workgroup) Available() bool { return true }

func (w *Workgroup) GroupSize() int { return w.groupSize }

func (w *Workgroup) Alloc(n int, dtype device.DType) (*device.Buffer, error) {
	return alloc(w.Name(), n, dtype)
}

func (w *Workgroup) Free(buf *device.Buffer) { buf.Release() }

func (w *Workgroup) ToDevice(host any) (device.ArrayView, error) {
	return toDevice(w.Name(), host)
}

func (w *Workgroup) FromDevice(v device.ArrayView) (any, error) {
	return device.CopyOut(v)
}

func (w *Workgroup) Compile(program, name string, desc kernel.Desc) (*kernel.Compiled, error) {
	return kernel.Compile(program, name, desc, w.Name())
}

func (w *Workgroup) Invoke(k *kernel.Compiled, c *kernel.Call, n int) error {
	if err := validate(w, k, c, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	groups := (n + w.groupSize - 1) / w.groupSize
	workers := w.workers
	if workers > groups {
		workers = groups
	}

	var next int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				g := int(atomic.AddInt64(&next, 1)) - 1
				if g >= groups {
					return
				}
				base := g * w.groupSize
				for lt := 0; lt < w.groupSize; lt++ {
					if tid := base + lt; tid < n {
						k.Run(tid, c)
					}
				}
			}
		}()
	}
	wg.Wait()
	return nil
}

func (w *Workgroup) Cleanup() {}
