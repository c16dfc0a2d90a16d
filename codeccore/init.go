// Package codeccore is the initializer and lifecycle owner for the
// native codec core: resolving and verifying the native library, querying
// its feature and SIMD masks, and registering native codec adapters into
// the shared registry before any user code observes a lookup. See
// spec §4.10.
package codeccore

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/radxcodec/codeccore/codecs"
	"github.com/radxcodec/codeccore/gpu"
	"github.com/radxcodec/codeccore/native"
	"github.com/radxcodec/codeccore/pinvoke"
	"github.com/radxcodec/codeccore/registry"
)

// nativeLibraryName returns the file the resolver looks for when no
// explicit override is configured (spec §4.7's target-triple convention
// and platform default search both key off this base name).
func nativeLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "radxcodec.dll"
	case "darwin":
		return "libradxcodec.dylib"
	default:
		return "libradxcodec.so"
	}
}

var (
	once          sync.Once
	initErr       error
	initialized   atomic.Bool
	autoInitOff   atomic.Bool
	autoInitCheck sync.Once

	defaultRegistry = registry.New()
)

// InitError is returned by Init on failure. It carries a correlation ID
// so a cached re-throw can be matched back to the original failure in
// logs across repeated explicit Init calls.
type InitError struct {
	CorrelationID string
	Cause         error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("codeccore: initialization failed (correlation %s): %v", e.CorrelationID, e.Cause)
}

func (e *InitError) Unwrap() error { return e.Cause }

// DisableAutoInit suppresses the automatic initialization that would
// otherwise run on first use of Registry(). Must be called before any
// such first use; the switch is consulted exactly once (spec §4.10).
func DisableAutoInit() {
	autoInitOff.Store(true)
}

// Init performs process-wide one-time initialization: verifying the
// native library version (unless skipped), querying feature/SIMD masks,
// and registering native codec adapters at PriorityNative. Safe to call
// more than once; only the first call does any work, and a cached
// failure is re-thrown (with the same correlation ID) on every
// subsequent explicit call.
func Init(opts ...Option) error {
	once.Do(func() {
		initialized.Store(true)
		o := defaultOptions()
		for _, opt := range opts {
			opt(&o)
		}
		initErr = doInit(o)
	})
	return initErr
}

func doInit(o Options) error {
	resolver := &pinvoke.Resolver{ExplicitPath: o.libraryPath}
	libPath, resolveErr := resolver.Resolve(nativeLibraryName())
	if resolveErr != nil {
		if o.libraryPath != "" {
			// An explicit override was given and could not be confirmed
			// on disk at any tried path: treat as a hard init failure
			// rather than silently falling through to the platform
			// default search (spec §4.7/§4.10, scenario 6).
			return wrapInitErr(resolveErr)
		}
		logrus.WithError(resolveErr).Debug("codeccore: native library not found by path convention, deferring to platform default search")
	} else {
		logrus.WithField("library_path", libPath).Debug("codeccore: resolved native library")
	}

	if !o.skipVersionCheck {
		if v := native.Version(); v != native.ABIVersion {
			err := fmt.Errorf("native library ABI version mismatch: got %d, want %d", v, native.ABIVersion)
			return wrapInitErr(err)
		}
	}

	features := native.Features()
	if gpu.Available() {
		features |= native.FeatureGPU
	}
	simd := native.SIMDFeatures()
	logrus.WithFields(logrus.Fields{
		"features": features,
		"simd":     simd,
		"gpu":      gpu.Available(),
	}).Info("codeccore: native facade initialized")

	if o.enableJPEG && features&native.FeatureJPEG != 0 {
		defaultRegistry.Register(codecs.NewJPEGCodec(codecs.TransferSyntaxJPEGBaselineProcess1), registry.PriorityNative)
		defaultRegistry.Register(codecs.NewJPEGCodec(codecs.TransferSyntaxJPEGBaselineProcess2), registry.PriorityNative)
	}
	if o.enableJ2K && features&native.FeatureJ2K != 0 {
		useGPU := gpu.Available() && !o.preferCPU
		defaultRegistry.Register(codecs.NewJ2KCodec(codecs.TransferSyntaxJPEG2000Lossless, true, useGPU), registry.PriorityNative)
		defaultRegistry.Register(codecs.NewJ2KCodec(codecs.TransferSyntaxJPEG2000Lossy, false, useGPU), registry.PriorityNative)
	}
	if o.enableJLS && features&native.FeatureJLS != 0 {
		defaultRegistry.Register(codecs.NewJLSCodec(codecs.TransferSyntaxJPEGLSLossless, 0), registry.PriorityNative)
		defaultRegistry.Register(codecs.NewJLSCodec(codecs.TransferSyntaxJPEGLSNearLossless, 2), registry.PriorityNative)
	}

	// Pure-host fallbacks register at the lower priority regardless of
	// native availability; their existence is what makes the priority
	// ladder's displacement behavior observable (spec §8 scenario 1).
	defaultRegistry.Register(codecs.NewJPEGBaselineFallbackCodec(codecs.TransferSyntaxJPEGBaselineProcess1), registry.PriorityPureHost)
	defaultRegistry.Register(codecs.NewJPEGBaselineFallbackCodec(codecs.TransferSyntaxJPEGBaselineProcess2), registry.PriorityPureHost)
	defaultRegistry.Register(codecs.NewDeflateCodec(), registry.PriorityPureHost)
	defaultRegistry.Register(codecs.NewRLECodec(), registry.PriorityPureHost)

	return nil
}

func wrapInitErr(cause error) error {
	err := &InitError{CorrelationID: uuid.NewString(), Cause: cause}
	logrus.WithError(err).Error("codeccore: initialization failed")
	return err
}

// ensureAutoInit runs Init with default options exactly once, unless
// DisableAutoInit was called before this point (spec §4.10).
func ensureAutoInit() {
	autoInitCheck.Do(func() {
		if autoInitOff.Load() {
			return
		}
		if err := Init(); err != nil {
			logrus.WithError(err).Warn("codeccore: auto-init failed; native codecs unavailable")
		}
	})
}

// Registry returns the shared codec registry, auto-initializing on first
// use unless DisableAutoInit was called.
func Registry() *registry.Registry {
	ensureAutoInit()
	return defaultRegistry
}

// Initialized reports whether Init has run (successfully or not).
func Initialized() bool {
	return initialized.Load()
}
