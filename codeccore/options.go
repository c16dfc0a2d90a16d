package codeccore

// Options configures a call to Init. Init starts from settings that
// enable every codec; the Option functions adjust them from there (the
// zero value of Options enables none). There is no WithEnableVideo: the video wrapper is
// a stream decoder handle (native.NewVideoDecoder), not a PixelCodec, so
// it has no registry entry for an enable flag to gate — callers reach it
// directly.
type Options struct {
	skipVersionCheck bool
	preferCPU        bool
	enableJPEG       bool
	enableJ2K        bool
	enableJLS        bool
	libraryPath      string
}

// Option configures Options via the functional-options pattern.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		enableJPEG: true,
		enableJ2K:  true,
		enableJLS:  true,
	}
}

// WithSkipVersionCheck bypasses the ABI version-constant equality check,
// loading the native library regardless (spec §4.10).
func WithSkipVersionCheck(skip bool) Option {
	return func(o *Options) { o.skipVersionCheck = skip }
}

// WithPreferCPU is equivalent to calling gpu.WithPreferCPU(ctx, true) for
// every call issued through this Init's registered adapters.
func WithPreferCPU(prefer bool) Option {
	return func(o *Options) { o.preferCPU = prefer }
}

// WithEnableJPEG toggles registration of the JPEG adapter.
func WithEnableJPEG(enable bool) Option {
	return func(o *Options) { o.enableJPEG = enable }
}

// WithEnableJ2K toggles registration of the JPEG 2000 adapters.
func WithEnableJ2K(enable bool) Option {
	return func(o *Options) { o.enableJ2K = enable }
}

// WithEnableJLS toggles registration of the JPEG-LS adapters.
func WithEnableJLS(enable bool) Option {
	return func(o *Options) { o.enableJLS = enable }
}

// WithLibraryPath overrides the native library search with an absolute
// path.
func WithLibraryPath(path string) Option {
	return func(o *Options) { o.libraryPath = path }
}
