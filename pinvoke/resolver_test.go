package pinvoke

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolver_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "libcustom.so")
	if err := os.WriteFile(libPath, []byte("stub"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r := &Resolver{ExplicitPath: libPath}
	got, err := r.Resolve("libcustom.so")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != libPath {
		t.Errorf("Resolve() = %q, want %q", got, libPath)
	}
}

func TestResolver_ExplicitPathMissingFallsThrough(t *testing.T) {
	r := &Resolver{ExplicitPath: "/nonexistent/path/libfoo.so"}
	got, err := r.Resolve("libfoo.so")
	if err == nil {
		t.Fatal("expected a ResolveError when no candidate exists, got nil")
	}
	var resolveErr *ResolveError
	if !asResolveError(err, &resolveErr) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if resolveErr.LibraryName != "libfoo.so" {
		t.Errorf("LibraryName = %q, want %q", resolveErr.LibraryName, "libfoo.so")
	}
	if len(resolveErr.PathsTried) < 2 {
		t.Errorf("expected multiple paths tried, got %v", resolveErr.PathsTried)
	}
	// The bare name is still returned so callers may attempt the
	// platform default search even though nothing was confirmed on disk.
	if got != "libfoo.so" {
		t.Errorf("Resolve() = %q, want bare name fallback %q", got, "libfoo.so")
	}
}

func TestResolver_NoExplicitPath_TriesExecutableConvention(t *testing.T) {
	r := &Resolver{}
	_, err := r.Resolve("libneverexists-xyz.so")
	if err == nil {
		t.Fatal("expected error for a library that exists nowhere")
	}
	var resolveErr *ResolveError
	if !asResolveError(err, &resolveErr) {
		t.Fatalf("expected *ResolveError, got %T", err)
	}
	if len(resolveErr.PathsTried) == 0 {
		t.Error("expected at least one path tried")
	}
}

func TestTargetTriple(t *testing.T) {
	triple := targetTriple()
	if triple == "" || triple == "-" {
		t.Errorf("targetTriple() = %q, want non-empty <os>-<arch>", triple)
	}
}

func asResolveError(err error, target **ResolveError) bool {
	re, ok := err.(*ResolveError)
	if ok {
		*target = re
	}
	return ok
}
