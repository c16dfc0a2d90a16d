//go:build !cgo

package native

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Version reports the stubbed build's ABI version. It always matches
// ABIVersion since there is no separate native library to drift from.
func Version() int32 {
	return ABIVersion
}

// Features reports only the pure-Go codecs available without cgo: RLE
// and DEFLATE, both implemented directly in the codecs package.
func Features() int32 {
	return FeatureRLE | FeatureDeflate
}

var simdCache atomic.Int32
var simdOnce sync.Once

// SIMDFeatures detects CPU capabilities via golang.org/x/sys/cpu, since
// a !cgo build has no C CPUID intrinsic available. Cached process-wide
// after the first call, matching the cgo build's contract.
func SIMDFeatures() int32 {
	simdOnce.Do(func() {
		var mask int32
		if cpu.X86.HasSSE2 {
			mask |= SIMDSSE2
		}
		if cpu.X86.HasSSE41 {
			mask |= SIMDSSE41
		}
		if cpu.X86.HasSSE42 {
			mask |= SIMDSSE42
		}
		if cpu.X86.HasAVX {
			mask |= SIMDAVX
		}
		if cpu.X86.HasAVX2 {
			mask |= SIMDAVX2
		}
		if cpu.X86.HasAVX512F {
			mask |= SIMDAVX512F
		}
		if cpu.ARM64.HasASIMD {
			mask |= SIMDNEON
		}
		simdCache.Store(mask)
	})
	return simdCache.Load()
}

// errSlot emulates the thread-local error slot with a goroutine-agnostic
// process-wide slot: without cgo there is no native code writing errors
// from arbitrary OS threads, so every failure in this build originates
// from pure-Go stub functions on the calling goroutine's own call stack,
// making a single guarded variable sufficient.
var (
	errMu   sync.Mutex
	errText string
)

func setStubError(msg string) {
	errMu.Lock()
	errText = msg
	errMu.Unlock()
}

// LastError returns the last error message recorded by a stub call.
func LastError() string {
	errMu.Lock()
	defer errMu.Unlock()
	return errText
}

// ClearError clears the recorded stub error message.
func ClearError() {
	errMu.Lock()
	errText = ""
	errMu.Unlock()
}
