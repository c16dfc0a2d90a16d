// Package registry implements the transfer-syntax-keyed codec registry:
// priority-arbitrated registration with a frozen-snapshot fast path for
// hot lookups. See spec §4.9.
package registry

import (
	"sync"
	"sync/atomic"

	"github.com/radxcodec/codeccore/codecs"
)

// Fixed priority ladder (spec §4.9). A registrant wanting higher
// precedence simply passes a larger integer.
const (
	PriorityFallback    = 0
	PriorityPureHost    = 50
	PriorityNative      = 100
	PriorityUserOverride = 200
)

// Origin names where a registered codec came from, for introspection.
type Origin int

const (
	OriginUnknown Origin = iota
	OriginFallback
	OriginPureHost
	OriginNative
	OriginUserOverride
)

func originForPriority(priority int) Origin {
	switch {
	case priority >= PriorityUserOverride:
		return OriginUserOverride
	case priority >= PriorityNative:
		return OriginNative
	case priority >= PriorityPureHost:
		return OriginPureHost
	default:
		return OriginFallback
	}
}

type entry struct {
	codec    codecs.PixelCodec
	priority int
}

// CodecInfo is the introspection result of GetCodecInfo: spec §4.9's
// (name, priority, origin) tuple, with TransferSyntaxUID standing in for
// "name" since that's the only identifier this registry keys on.
type CodecInfo struct {
	TransferSyntaxUID string
	Priority          int
	Origin            Origin
}

// Registry maps transfer-syntax identifier to codec implementation with
// strict-monotonic priority arbitration. Reads go through an immutable
// frozen snapshot once one exists; the first lookup after any register
// builds and publishes a fresh snapshot, serving subsequent lookups
// lock-free until the next register invalidates it (spec §4.9/§9).
type Registry struct {
	mu       sync.Mutex
	table    map[string]entry
	snapshot atomic.Pointer[map[string]entry]
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{table: make(map[string]entry)}
}

// Register inserts (transferSyntaxUID, codec, priority). If an entry
// already exists with priority >= the new priority, the call is a no-op
// (deterministic, ties favor the first registrant). Invalidates any
// frozen snapshot.
func (r *Registry) Register(codec codecs.PixelCodec, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tsuid := codec.TransferSyntaxUID()
	existing, ok := r.table[tsuid]
	if ok && existing.priority >= priority {
		return
	}
	r.table[tsuid] = entry{codec: codec, priority: priority}
	r.snapshot.Store(nil) // thaw: next Lookup rebuilds
}

// Lookup returns the codec registered for transferSyntaxUID, or nil if
// none is registered. Uses the frozen snapshot when present; otherwise
// builds one under the lock and publishes it before returning.
func (r *Registry) Lookup(transferSyntaxUID string) codecs.PixelCodec {
	snap := r.snapshot.Load()
	if snap == nil {
		snap = r.freeze()
	}
	e, ok := (*snap)[transferSyntaxUID]
	if !ok {
		return nil
	}
	return e.codec
}

func (r *Registry) freeze() *map[string]entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have frozen it while we waited for the lock.
	if snap := r.snapshot.Load(); snap != nil {
		return snap
	}

	copyTable := make(map[string]entry, len(r.table))
	for k, v := range r.table {
		copyTable[k] = v
	}
	r.snapshot.Store(&copyTable)
	return &copyTable
}

// GetCodecInfo returns introspection data for transferSyntaxUID, or ok=false
// if unregistered.
func (r *Registry) GetCodecInfo(transferSyntaxUID string) (info CodecInfo, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, found := r.table[transferSyntaxUID]
	if !found {
		return CodecInfo{}, false
	}
	return CodecInfo{
		TransferSyntaxUID: transferSyntaxUID,
		Priority:          e.priority,
		Origin:            originForPriority(e.priority),
	}, true
}

// GetPriority returns the registered priority for transferSyntaxUID, or
// ok=false if unregistered.
func (r *Registry) GetPriority(transferSyntaxUID string) (priority int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, found := r.table[transferSyntaxUID]
	if !found {
		return 0, false
	}
	return e.priority, true
}
