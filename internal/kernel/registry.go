package kernel

import "sync"

// Impl is the host implementation of a kernel entry: the pure per-index
// body. Implementations read and write their arguments only at the given
// tid, carry no state between indices, and are safe to run concurrently
// for distinct indices.
type Impl func(tid int, c *Call)

var (
	regMu       sync.RWMutex
	entryImpls  = map[string]Impl{}
	deviceFuncs = map[string]bool{}
)

// RegisterEntry binds the host implementation for a kernel entry name.
// Typically called from an init function of the package owning the kernel.
func RegisterEntry(name string, impl Impl) {
	regMu.Lock()
	defer regMu.Unlock()
	entryImpls[name] = impl
}

// RegisterDeviceFunc declares a device-side function symbol as resolvable
// by kernel bodies.
func RegisterDeviceFunc(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	deviceFuncs[name] = true
}

// LookupEntry returns the registered implementation, or nil.
func LookupEntry(name string) Impl {
	regMu.RLock()
	defer regMu.RUnlock()
	return entryImpls[name]
}

// IsDeviceFunc reports whether the symbol is a registered device function.
func IsDeviceFunc(name string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	return deviceFuncs[name]
}
