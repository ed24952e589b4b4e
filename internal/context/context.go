// Package context orchestrates a backend and its compiled kernels: source
// assembly, memoized compilation, argument validation, and named dispatch.
package context

import (
	"fmt"
	"sync"

	"github.com/san-kum/beamkern/internal/backend"
	"github.com/san-kum/beamkern/internal/device"
	"github.com/san-kum/beamkern/internal/kernel"
)

// Context owns one backend and the kernels compiled for it. The compile
// cache is state of the Context, created with it and dropped on Close,
// keyed by (program fingerprint, kernel name, backend). Lookups are safe
// under concurrent use; compilation itself is expected to happen before
// concurrent invocations begin.
type Context struct {
	backend backend.Backend

	mu       sync.Mutex
	kernels  map[string]*kernel.Compiled
	cache    map[cacheKey]*kernel.Compiled
	compiles int
}

type cacheKey struct {
	fingerprint string
	name        string
	backend     string
}

func New(b backend.Backend) *Context {
	return &Context{
		backend: b,
		kernels: make(map[string]*kernel.Compiled),
		cache:   make(map[cacheKey]*kernel.Compiled),
	}
}

func (c *Context) Backend() backend.Backend { return c.backend }

// AddOption adjusts kernel registration.
type AddOption func(*addOptions)

type addOptions struct {
	onlyIfNeeded bool
}

// OnlyIfNeeded controls compile memoization. It defaults to true: a source
// set already compiled on this backend is reused. Pass OnlyIfNeeded(false)
// to force a rebuild.
func OnlyIfNeeded(v bool) AddOption {
	return func(o *addOptions) { o.onlyIfNeeded = v }
}

// AddKernels assembles the source set into one program, compiles every
// described kernel on this context's backend, and registers them for
// dispatch by name.
func (c *Context) AddKernels(sources []kernel.Source, descs map[string]kernel.Desc, opts ...AddOption) error {
	o := addOptions{onlyIfNeeded: true}
	for _, f := range opts {
		f(&o)
	}

	program := kernel.AssembleAll(sources)
	fp := kernel.Fingerprint(program)

	c.mu.Lock()
	defer c.mu.Unlock()
	for name, desc := range descs {
		key := cacheKey{fingerprint: fp, name: name, backend: c.backend.Name()}
		if o.onlyIfNeeded {
			if k, ok := c.cache[key]; ok {
				c.kernels[name] = k
				continue
			}
		}
		k, err := c.backend.Compile(program, name, desc)
		if err != nil {
			return err
		}
		c.compiles++
		c.cache[key] = k
		c.kernels[name] = k
	}
	return nil
}

// Run dispatches a registered kernel by name with keyword-bound arguments.
// The index-range size is read from the argument named by the kernel's
// NThreads descriptor. Binding and shape validation happen before any
// backend work is issued.
func (c *Context) Run(name string, kwargs map[string]any) error {
	c.mu.Lock()
	k, ok := c.kernels[name]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("no kernel %q registered on this context", name)
	}

	call, err := kernel.Bind(k.Desc.Args, kwargs)
	if err != nil {
		return err
	}
	n, err := threadCount(k.Desc, kwargs)
	if err != nil {
		return err
	}
	return c.backend.Invoke(k, call, n)
}

func threadCount(desc kernel.Desc, kwargs map[string]any) (int, error) {
	raw, ok := kwargs[desc.NThreads]
	if !ok {
		return 0, fmt.Errorf("%w: missing index-range argument %q", device.ErrShape, desc.NThreads)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	}
	return 0, fmt.Errorf("%w: index-range argument %q must be an integer",
		device.ErrTypeMismatch, desc.NThreads)
}

// HasKernel reports whether a kernel is registered for dispatch.
func (c *Context) HasKernel(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.kernels[name]
	return ok
}

// CompileCount reports how many backend compilations this context has
// performed. Memoized registrations do not count.
func (c *Context) CompileCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compiles
}

// ToDevice allocates backend memory for a host array and copies it in.
func (c *Context) ToDevice(host any) (device.ArrayView, error) {
	return c.backend.ToDevice(host)
}

// FromDevice materializes a device view into a contiguous host array.
// Round-tripping an unmodified array through ToDevice and FromDevice is a
// value-preserving identity.
func (c *Context) FromDevice(v device.ArrayView) (any, error) {
	return c.backend.FromDevice(v)
}

// Close drops the kernel cache and releases backend resources.
func (c *Context) Close() {
	c.mu.Lock()
	c.kernels = make(map[string]*kernel.Compiled)
	c.cache = make(map[cacheKey]*kernel.Compiled)
	c.mu.Unlock()
	c.backend.Cleanup()
}
