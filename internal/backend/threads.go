package backend

import (
	"runtime"
	"sync"

	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/kernel"
)

// Threads executes kernels fork-join across a fixed worker count, each
// worker owning one contiguous chunk of the index range. Chunking never
// affects results: bodies are pure per-index functions.
type Threads struct {
	workers int
}

func NewThreads(workers int) *Threads {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Threads{workers: workers}
}

func (t *Threads) Name() string    { return "threads" }
func (t *Threads) Available() bool { return true }

func (t *Threads) Workers() int { return t.workers }

func (t *Threads) Alloc(n int, dtype device.DType) (*device.Buffer, error) {
	return alloc(t.Name(), n, dtype)
}

func (t *Threads) Free(buf *device.Buffer) { buf.Release() }

func (t *Threads) ToDevice(host any) (device.ArrayView, error) {
	return toDevice(t.Name(), host)
}

func (t *Threads) FromDevice(v device.ArrayView) (any, error) {
	return device.CopyOut(v)
}

func (t *Threads) Compile(program, name string, desc kernel.Desc) (*kernel.Compiled, error) {
	return kernel.Compile(program, name, desc, t.Name())
}

func (t *Threads) Invoke(k *kernel.Compiled, c *kernel.Call, n int) error {
	if err := validate(t, k, c, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	workers := t.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for tid := lo; tid < hi; tid++ {
				k.Run(tid, c)
			}
		}(start, end)
	}
	wg.Wait()
	return nil
}

func (t *Threads) Cleanup() {}
