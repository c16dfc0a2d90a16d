package codeccore

import (
	"strings"
	"testing"

	"github.com/radxcodec/codeccore/codecs"
)

// TestInit_RegistersPureHostFallbacks verifies that, regardless of native
// feature availability, the pure-host and fallback codecs end up
// registered (spec §8 scenario 1's displacement behavior is only
// observable once these exist).
func TestInit_RegistersPureHostFallbacks(t *testing.T) {
	resetForTest()
	defer resetForTest()

	if err := Init(WithSkipVersionCheck(true)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	reg := Registry()
	for _, tsuid := range []string{
		codecs.TransferSyntaxJPEGBaselineProcess1,
		codecs.TransferSyntaxJPEGBaselineProcess2,
		codecs.TransferSyntaxDeflateExplicitVRLE,
		codecs.TransferSyntaxRLELossless,
	} {
		if _, ok := reg.GetCodecInfo(tsuid); !ok {
			t.Errorf("expected %s to be registered after Init", tsuid)
		}
	}
}

func TestInit_IsIdempotent(t *testing.T) {
	resetForTest()
	defer resetForTest()

	err1 := Init(WithSkipVersionCheck(true))
	err2 := Init(WithSkipVersionCheck(true))
	if err1 != err2 {
		t.Errorf("Init returned different errors on repeated calls: %v vs %v", err1, err2)
	}
}

func TestInitialized_ReflectsInitCall(t *testing.T) {
	resetForTest()
	defer resetForTest()

	if Initialized() {
		t.Error("Initialized() = true before Init has run")
	}
	_ = Init(WithSkipVersionCheck(true))
	if !Initialized() {
		t.Error("Initialized() = false after Init has run")
	}
}

// TestInit_BogusLibraryPathThrowsAndCaches covers spec §8 scenario 6: an
// explicit library_path that cannot be confirmed on disk must fail the
// first Init call with the bogus path embedded in the error, and every
// later explicit Init call must re-throw that same cached error without
// retrying the resolve.
func TestInit_BogusLibraryPathThrowsAndCaches(t *testing.T) {
	resetForTest()
	defer resetForTest()

	const bogusPath = "/nonexistent/path/to/libradxcodec.so"

	err1 := Init(WithLibraryPath(bogusPath))
	if err1 == nil {
		t.Fatal("Init with a bogus library_path returned nil, want an error")
	}
	if !strings.Contains(err1.Error(), bogusPath) {
		t.Errorf("Init error %q does not contain the bogus path %q", err1.Error(), bogusPath)
	}
	ie1, ok := err1.(*InitError)
	if !ok {
		t.Fatalf("Init returned %T, want *InitError", err1)
	}

	// A second explicit call, even with a different (valid-looking) path,
	// must re-throw the identical cached failure rather than re-resolving.
	err2 := Init(WithLibraryPath("/some/other/path.so"))
	if err2 != err1 {
		t.Errorf("second Init call returned a different error: %v vs %v", err2, err1)
	}
	ie2, ok := err2.(*InitError)
	if !ok {
		t.Fatalf("second Init returned %T, want *InitError", err2)
	}
	if ie2.CorrelationID != ie1.CorrelationID {
		t.Errorf("cached re-throw changed correlation ID: %s vs %s", ie2.CorrelationID, ie1.CorrelationID)
	}
}

func TestInitError_CorrelationIDAndUnwrap(t *testing.T) {
	cause := errTest("boom")
	wrapped := wrapInitErr(cause)

	ie, ok := wrapped.(*InitError)
	if !ok {
		t.Fatalf("wrapInitErr returned %T, want *InitError", wrapped)
	}
	if ie.CorrelationID == "" {
		t.Error("expected a non-empty correlation ID")
	}
	if ie.Unwrap() != cause {
		t.Error("Unwrap() did not return the original cause")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
