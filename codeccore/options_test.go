package codeccore

import "testing"

func TestDefaultOptions_EnablesEveryCodec(t *testing.T) {
	o := defaultOptions()
	if !o.enableJPEG || !o.enableJ2K || !o.enableJLS {
		t.Errorf("defaultOptions() = %+v, want every enable* flag true", o)
	}
	if o.skipVersionCheck || o.preferCPU {
		t.Errorf("defaultOptions() = %+v, want skipVersionCheck and preferCPU false", o)
	}
}

func TestOptions_ApplyOverridesDefaults(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithSkipVersionCheck(true),
		WithEnableJ2K(false),
		WithLibraryPath("/opt/lib/libradxcodec.so"),
	} {
		opt(&o)
	}
	if !o.skipVersionCheck {
		t.Error("WithSkipVersionCheck(true) did not set skipVersionCheck")
	}
	if o.enableJ2K {
		t.Error("WithEnableJ2K(false) did not clear enableJ2K")
	}
	if o.libraryPath != "/opt/lib/libradxcodec.so" {
		t.Errorf("libraryPath = %q, want override", o.libraryPath)
	}
	if !o.enableJPEG || !o.enableJLS {
		t.Error("unrelated options must remain at their defaults")
	}
}
