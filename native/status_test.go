package native

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindNone, "ok"},
		{KindInvalidArgument, "invalid_argument"},
		{KindOutOfMemory, "out_of_memory"},
		{KindDecodeFailed, "decode_failed"},
		{KindEncodeFailed, "encode_failed"},
		{KindUnsupported, "unsupported"},
		{KindCorruptData, "corrupt_data"},
		{KindTimeout, "timeout"},
		{KindInternal, "internal"},
		{Kind(-99), "kind(-99)"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestKindFromStatus(t *testing.T) {
	for status := int32(0); status >= -8; status-- {
		if got := kindFromStatus(status); got != Kind(status) {
			t.Errorf("kindFromStatus(%d) = %v, want %v", status, got, Kind(status))
		}
	}
	if got := kindFromStatus(-99); got != KindInternal {
		t.Errorf("kindFromStatus(-99) = %v, want KindInternal (unenumerated codes must not panic)", got)
	}
}

func TestErrorError(t *testing.T) {
	e := &Error{Kind: KindDecodeFailed, Op: "j2k_decode", Message: "bad marker"}
	want := "native: j2k_decode: decode_failed: bad marker"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	empty := &Error{Kind: KindInternal, Op: "jls_encode"}
	want = "native: jls_encode: internal"
	if got := empty.Error(); got != want {
		t.Errorf("Error() with empty message = %q, want %q", got, want)
	}
}

// TestSIMDFeaturesConcurrentStable exercises the testable property from
// spec §8: concurrent first access to SIMDFeatures() from many goroutines
// returns the same value to all callers.
func TestSIMDFeaturesConcurrentStable(t *testing.T) {
	const n = 16
	results := make(chan int32, n)
	for i := 0; i < n; i++ {
		go func() {
			results <- SIMDFeatures()
		}()
	}
	first := <-results
	for i := 1; i < n; i++ {
		if got := <-results; got != first {
			t.Errorf("SIMDFeatures() returned %d, want %d (all callers must observe the same mask)", got, first)
		}
	}
}

func TestVersionMatchesABIVersion(t *testing.T) {
	if Version() != ABIVersion {
		t.Errorf("Version() = %d, want ABIVersion %d", Version(), ABIVersion)
	}
}
