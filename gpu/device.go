package gpu

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// DeviceInfo describes the compute device backing decode calls — either
// the GPU companion library's own report, or a description of the CPU
// fallback path when no GPU is available.
type DeviceInfo struct {
	Name        string
	GPU         bool
	TotalMemory uint64
}

// DeviceInfo reports the active decode device. When the GPU companion
// library is unavailable, it falls back to describing host memory via
// gopsutil so callers can still reason about available headroom for the
// CPU decode path.
func (d *Dispatcher) DeviceInfo(ctx context.Context) (DeviceInfo, error) {
	if d.Available() && !preferCPU(ctx) {
		d.mu.Lock()
		syms := d.syms
		d.mu.Unlock()

		buf := make([]byte, 256)
		status := syms.deviceInfo(&buf[0], int32(len(buf)))
		if status == 0 {
			return DeviceInfo{Name: cString(buf), GPU: true}, nil
		}
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("gpu: failed to query host memory for CPU fallback device info: %w", err)
	}
	return DeviceInfo{Name: "cpu", GPU: false, TotalMemory: vm.Total}, nil
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
