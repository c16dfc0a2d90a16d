// Package gpu provides hardware-accelerated JPEG 2000 decode via a
// dynamically loaded companion library, falling back transparently to the
// CPU path when no such library is present. See spec §4.6.
package gpu

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"

	"github.com/radxcodec/codeccore/native"
)

// state is the dispatcher's lazy-load state machine.
type state int32

const (
	stateUninit state = iota
	stateInitializing
	stateReady
	stateFailed
)

// libraryNames lists the companion library in search order, per platform
// naming convention. The loader tries each in turn.
var libraryNames = []string{
	"libradxcodec_gpu.so",
	"libradxcodec_gpu.so.1",
	"radxcodec_gpu.dll",
	"libradxcodec_gpu.dylib",
}

type gpuSymbols struct {
	available   func() int32
	init        func() int32
	deviceInfo  func(out *byte, outLen int32) int32
	shutdown    func()
	decode      func(in *byte, inLen uint64, out *byte, outLen uint64, w, h, c *int32) int32
	batchDecode func(ins **byte, inLens *uint64, n int32, outs **byte, outLens *uint64, statuses *int32) int32
	lastError   func() string
	clearError  func()
}

// Dispatcher is the process-wide GPU dispatch shim. Use the package-level
// Default instance; construct additional instances only for testing.
type Dispatcher struct {
	mu      sync.Mutex
	state   atomic.Int32
	syms    *gpuSymbols
	handle  uintptr
	failMsg string
}

// Default is the process-wide dispatcher used by J2KDecode/BatchDecode.
var Default = &Dispatcher{}

type preferCPUKey struct{}

// WithPreferCPU returns a context that forces the CPU decode path for any
// gpu call made with it, substituting for the native shim's per-thread
// prefer_cpu flag (goroutines have no stable OS-thread identity to key a
// true thread-local on).
func WithPreferCPU(ctx context.Context, prefer bool) context.Context {
	return context.WithValue(ctx, preferCPUKey{}, prefer)
}

func preferCPU(ctx context.Context) bool {
	v, _ := ctx.Value(preferCPUKey{}).(bool)
	return v
}

// Available reports whether the GPU companion library loaded successfully.
// The first call triggers the lazy load; the result is sticky thereafter.
func (d *Dispatcher) Available() bool {
	d.ensureLoaded()
	return state(d.state.Load()) == stateReady
}

func (d *Dispatcher) ensureLoaded() {
	if state(d.state.Load()) == stateReady || state(d.state.Load()) == stateFailed {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Re-check under the lock: another goroutine may have raced us here.
	switch state(d.state.Load()) {
	case stateReady, stateFailed:
		return
	}

	d.state.Store(int32(stateInitializing))
	handle, syms, err := loadGPULibrary()
	if err != nil {
		d.failMsg = err.Error()
		logrus.WithError(err).Debug("gpu: companion library not available, using CPU path")
		d.state.Store(int32(stateFailed))
		return
	}

	status := syms.init()
	if status != 0 {
		d.failMsg = fmt.Sprintf("gpu: init() returned status %d: %s", status, syms.lastError())
		logrus.WithField("status", status).Debug("gpu: companion library init failed")
		d.state.Store(int32(stateFailed))
		return
	}

	d.handle = handle
	d.syms = syms
	logrus.Debug("gpu: companion library loaded and initialized")
	d.state.Store(int32(stateReady))
}

func loadGPULibrary() (uintptr, *gpuSymbols, error) {
	var lastErr error
	for _, name := range libraryNames {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		syms, err := resolveSymbols(handle)
		if err != nil {
			return 0, nil, err
		}
		return handle, syms, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate library names configured")
	}
	return 0, nil, fmt.Errorf("gpu: no companion library found: %w", lastErr)
}

// resolveSymbols binds all eight required entry points. A missing symbol
// is treated as "GPU not available" per spec §4.6.
func resolveSymbols(handle uintptr) (*gpuSymbols, error) {
	syms := &gpuSymbols{}
	names := []string{
		"radxcodec_gpu_available", "radxcodec_gpu_init", "radxcodec_gpu_device_info",
		"radxcodec_gpu_shutdown", "radxcodec_gpu_j2k_decode", "radxcodec_gpu_j2k_decode_batch",
		"radxcodec_gpu_last_error", "radxcodec_gpu_clear_error",
	}
	for _, n := range names {
		if _, err := purego.Dlsym(handle, n); err != nil {
			return nil, fmt.Errorf("gpu: missing required symbol %q: %w", n, err)
		}
	}

	purego.RegisterLibFunc(&syms.available, handle, "radxcodec_gpu_available")
	purego.RegisterLibFunc(&syms.init, handle, "radxcodec_gpu_init")
	purego.RegisterLibFunc(&syms.deviceInfo, handle, "radxcodec_gpu_device_info")
	purego.RegisterLibFunc(&syms.shutdown, handle, "radxcodec_gpu_shutdown")
	purego.RegisterLibFunc(&syms.decode, handle, "radxcodec_gpu_j2k_decode")
	purego.RegisterLibFunc(&syms.batchDecode, handle, "radxcodec_gpu_j2k_decode_batch")
	purego.RegisterLibFunc(&syms.lastError, handle, "radxcodec_gpu_last_error")
	purego.RegisterLibFunc(&syms.clearError, handle, "radxcodec_gpu_clear_error")
	return syms, nil
}

// J2KDecode decodes a JPEG 2000 image, preferring the GPU path when
// available. On GPU failure it logs the companion library's error message
// at Warn level, clears that library's error, and transparently retries
// on the CPU (spec §4.6). The GPU message is not kept by the dispatcher
// or copied into any other error slot.
func (d *Dispatcher) J2KDecode(ctx context.Context, input []byte, output []byte) (width, height, components int, err error) {
	if !d.Available() || preferCPU(ctx) {
		w, h, c, _, err := native.J2KDecode(input, output, native.J2KDecodeOptions{})
		return w, h, c, err
	}

	d.mu.Lock()
	syms := d.syms
	d.mu.Unlock()

	var w, h, c int32
	status := syms.decode(
		&input[0], uint64(len(input)),
		&output[0], uint64(len(output)),
		&w, &h, &c,
	)
	if status == 0 {
		return int(w), int(h), int(c), nil
	}

	logrus.WithField("status", status).WithField("message", syms.lastError()).
		Warn("gpu: j2k decode failed, falling back to CPU")
	syms.clearError()

	cw, ch, cc, _, cerr := native.J2KDecode(input, output, native.J2KDecodeOptions{})
	return cw, ch, cc, cerr
}

// BatchResult is the outcome of one item within a BatchDecode call.
type BatchResult struct {
	Width, Height, Components int
	Err                        error
}

// BatchDecode decodes a batch of JPEG 2000 inputs in one device-side pass
// when the GPU is available. On whole-batch GPU failure, every item is
// retried individually on the CPU (the simpler of the two strategies the
// spec leaves open, see DESIGN.md).
func (d *Dispatcher) BatchDecode(ctx context.Context, inputs [][]byte, outputs [][]byte) []BatchResult {
	results := make([]BatchResult, len(inputs))

	if !d.Available() || preferCPU(ctx) || len(inputs) == 0 {
		return d.cpuBatchDecode(inputs, outputs)
	}

	d.mu.Lock()
	syms := d.syms
	d.mu.Unlock()

	inPtrs := make([]*byte, len(inputs))
	inLens := make([]uint64, len(inputs))
	outPtrs := make([]*byte, len(outputs))
	outLens := make([]uint64, len(outputs))
	statuses := make([]int32, len(inputs))

	for i := range inputs {
		if len(inputs[i]) > 0 {
			inPtrs[i] = &inputs[i][0]
		}
		inLens[i] = uint64(len(inputs[i]))
		if len(outputs[i]) > 0 {
			outPtrs[i] = &outputs[i][0]
		}
		outLens[i] = uint64(len(outputs[i]))
	}

	batchStatus := syms.batchDecode(
		&inPtrs[0], &inLens[0], int32(len(inputs)),
		&outPtrs[0], &outLens[0], &statuses[0],
	)
	if batchStatus != 0 {
		logrus.WithField("status", batchStatus).
			Warn("gpu: batch decode failed for the whole batch, falling back to CPU for every item")
		syms.clearError()
		return d.cpuBatchDecode(inputs, outputs)
	}

	for i := range inputs {
		if statuses[i] != 0 {
			results[i] = BatchResult{Err: fmt.Errorf("gpu: item %d failed with status %d", i, statuses[i])}
			continue
		}
		// Per-item geometry isn't reported by the batch API; callers that
		// need it should probe with native.J2KGetInfo beforehand.
		results[i] = BatchResult{}
	}
	return results
}

func (d *Dispatcher) cpuBatchDecode(inputs [][]byte, outputs [][]byte) []BatchResult {
	results := make([]BatchResult, len(inputs))
	for i := range inputs {
		w, h, c, _, err := native.J2KDecode(inputs[i], outputs[i], native.J2KDecodeOptions{})
		results[i] = BatchResult{Width: w, Height: h, Components: c, Err: err}
	}
	return results
}

// Available reports whether the default dispatcher's GPU companion
// library loaded successfully.
func Available() bool {
	return Default.Available()
}

// J2KDecode decodes via the default dispatcher.
func J2KDecode(ctx context.Context, input []byte, output []byte) (width, height, components int, err error) {
	return Default.J2KDecode(ctx, input, output)
}

// BatchDecode decodes via the default dispatcher.
func BatchDecode(ctx context.Context, inputs [][]byte, outputs [][]byte) []BatchResult {
	return Default.BatchDecode(ctx, inputs, outputs)
}
