package pinvoke

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Resolver locates the native companion library on disk, trying in
// order: an explicit configured path, a target-triple subdirectory
// convention next to the running executable, then the platform default
// search (spec §4.7).
type Resolver struct {
	// ExplicitPath overrides all other discovery when non-empty
	// (codeccore.WithLibraryPath).
	ExplicitPath string
}

// targetTriple returns the "<os>-<arch>" directory name the loader
// expects adjacent to the host executable (spec §6).
func targetTriple() string {
	return fmt.Sprintf("%s-%s", runtime.GOOS, runtime.GOARCH)
}

// Resolve returns the first existing candidate path for libName,
// searching in the order described above. If none exists, it returns an
// error naming every path tried.
func (r *Resolver) Resolve(libName string) (string, error) {
	var tried []string

	if r.ExplicitPath != "" {
		tried = append(tried, r.ExplicitPath)
		if fileExists(r.ExplicitPath) {
			return r.ExplicitPath, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "runtimes", targetTriple(), "native", libName)
		tried = append(tried, candidate)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	// Platform default search: bare name, resolved by the OS loader's own
	// search path (LD_LIBRARY_PATH, DT_RPATH, etc.) at dlopen time. Only
	// the loader can confirm this candidate, so it is listed last among
	// the paths tried and returned as the fallback together with a
	// ResolveError.
	tried = append(tried, libName)

	return libName, &ResolveError{LibraryName: libName, PathsTried: tried}
}

// ResolveError reports library discovery failure with full context: every
// path tried (spec §4.7). It is returned alongside the bare-name fallback
// so callers may choose to attempt the platform search anyway.
type ResolveError struct {
	LibraryName string
	PathsTried  []string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("pinvoke: could not confirm %q at any known path, tried: %v (platform default search left to the OS loader)", e.LibraryName, e.PathsTried)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
