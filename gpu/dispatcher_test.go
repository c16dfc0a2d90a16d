package gpu

import (
	"context"
	"testing"
)

func TestPreferCPU_DefaultFalse(t *testing.T) {
	if preferCPU(context.Background()) {
		t.Error("preferCPU(background) = true, want false")
	}
}

func TestWithPreferCPU_RoundTrip(t *testing.T) {
	ctx := WithPreferCPU(context.Background(), true)
	if !preferCPU(ctx) {
		t.Error("preferCPU after WithPreferCPU(true) = false, want true")
	}

	ctx = WithPreferCPU(ctx, false)
	if preferCPU(ctx) {
		t.Error("preferCPU after WithPreferCPU(false) = true, want false")
	}
}

// TestAvailable_NoCompanionLibrary exercises the realistic test-machine
// case: no libradxcodec_gpu.* on the library search path, so Available()
// must settle into stateFailed rather than blocking or panicking.
func TestAvailable_NoCompanionLibrary(t *testing.T) {
	d := &Dispatcher{}
	if d.Available() {
		t.Skip("GPU companion library present on this machine; dispatch-to-GPU path not exercised here")
	}
	// Sticky: a second call must not re-attempt the load.
	if d.Available() {
		t.Error("Available() became true on second call after failing once")
	}
}

func TestJ2KDecode_FallsBackToCPUWithoutGPU(t *testing.T) {
	d := &Dispatcher{}
	if d.Available() {
		t.Skip("GPU companion library present on this machine")
	}
	_, _, _, err := d.J2KDecode(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected an error from the CPU fallback decoding nil input, got nil")
	}
}

func TestBatchDecode_FallsBackToCPUWithoutGPU(t *testing.T) {
	d := &Dispatcher{}
	if d.Available() {
		t.Skip("GPU companion library present on this machine")
	}
	results := d.BatchDecode(context.Background(), [][]byte{nil}, [][]byte{nil})
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Err == nil {
		t.Error("expected an error decoding nil input via CPU fallback, got nil")
	}
}
