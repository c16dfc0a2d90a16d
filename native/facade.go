//go:build cgo

package native

/*
#include "facade.h"
#include <stdlib.h>
*/
import "C"

// Version returns the native facade's ABI version constant. Init uses
// this for a compile-time-vs-runtime mismatch check.
func Version() int32 {
	return int32(C.radxcodec_version())
}

// Features returns the bitmap of codecs actually linked into this build.
// The GPU bit is OR-ed in separately by the caller (codeccore.Init) once
// gpu.Available() has been queried, since GPU availability is resolved
// by a runtime dlopen rather than at link time.
func Features() int32 {
	return int32(C.radxcodec_features())
}

// SIMDFeatures returns the CPU capability bitmap detected via CPUID
// (x86) or fixed to SIMDNEON (aarch64). Safe under concurrent first
// call from any number of goroutines/OS threads.
func SIMDFeatures() int32 {
	return int32(C.radxcodec_simd_features())
}

// LastError returns the calling OS thread's last native error message.
// Always returns a non-nil string, possibly empty. Because this reads
// true C thread-local storage, the result is only meaningful when called
// from the same goroutine immediately after it observed a failing
// native.* call, and only if that goroutine has not been rescheduled
// onto a different OS thread in between — callers that need this
// guarantee should wrap the failing call and LastError in
// runtime.LockOSThread/UnlockOSThread.
func LastError() string {
	return C.GoString(C.radxcodec_last_error())
}

// ClearError zeroes the calling thread's error buffer.
func ClearError() {
	C.radxcodec_clear_error()
}
