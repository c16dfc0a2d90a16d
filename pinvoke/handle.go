// Package pinvoke implements the host-side half of the native boundary:
// safe handle lifetime management and native library discovery. See
// spec §4.7.
package pinvoke

import (
	"fmt"
	"runtime"
	"sync"
)

// DestroyFunc releases a native resource given its raw pointer.
type DestroyFunc func(ptr uintptr)

// SafeHandle wraps a native resource that has an explicit destroy
// function. It stores the raw pointer, tracks ownership, and invokes the
// destroy function exactly once on finalization or explicit Close. A
// null pointer is reported as invalid (spec §4.7).
type SafeHandle struct {
	mu      sync.Mutex
	ptr     uintptr
	destroy DestroyFunc
	closed  bool
}

// NewSafeHandle wraps ptr, arranging for destroy to run exactly once
// either via an explicit Close or, failing that, a finalizer.
func NewSafeHandle(ptr uintptr, destroy DestroyFunc) *SafeHandle {
	h := &SafeHandle{ptr: ptr, destroy: destroy}
	if ptr != 0 {
		runtime.SetFinalizer(h, (*SafeHandle).Close)
	}
	return h
}

// Valid reports whether the handle still wraps a non-null, unreleased
// pointer.
func (h *SafeHandle) Valid() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed && h.ptr != 0
}

// Pointer returns the raw pointer for use in a native call. Callers must
// not retain it past the call — the handle may be closed concurrently by
// another goroutine holding a reference to it.
func (h *SafeHandle) Pointer() uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ptr
}

// Close releases the native resource, invoking destroy exactly once.
// Safe to call more than once or concurrently.
func (h *SafeHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if h.ptr != 0 && h.destroy != nil {
		h.destroy(h.ptr)
	}
	h.ptr = 0
	runtime.SetFinalizer(h, nil)
	return nil
}

func (h *SafeHandle) String() string {
	if h.Valid() {
		return fmt.Sprintf("SafeHandle(%#x)", h.Pointer())
	}
	return "SafeHandle(invalid)"
}
