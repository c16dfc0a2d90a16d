package codecs

import (
	"strings"
	"testing"

	"github.com/radxcodec/codeccore/native"
)

func TestCodecError_Error(t *testing.T) {
	err := &CodecError{
		Kind:              native.KindDecodeFailed,
		Op:                "j2k_decode",
		TransferSyntaxUID: TransferSyntaxJPEG2000Lossless,
		Message:           "bad SOC marker",
	}
	msg := err.Error()
	for _, want := range []string{"j2k_decode", "decode_failed", TransferSyntaxJPEG2000Lossless, "bad SOC marker"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestEncodeParams_ValidateFor_RejectsZeroGeometry(t *testing.T) {
	p := EncodeParams{Width: 0, Height: 8, Components: 1, BitsPerSample: 8}
	if err := p.validateFor("test_encode", "1.2.3"); err == nil {
		t.Fatal("expected validation error for zero width, got nil")
	}
}

func TestEncodeParams_ValidateFor_RejectsOutOfRangeBitsPerSample(t *testing.T) {
	p := EncodeParams{Width: 8, Height: 8, Components: 1, BitsPerSample: 1}
	if err := p.validateFor("test_encode", "1.2.3"); err == nil {
		t.Fatal("expected validation error for BitsPerSample=1, got nil")
	}
	p.BitsPerSample = 17
	if err := p.validateFor("test_encode", "1.2.3"); err == nil {
		t.Fatal("expected validation error for BitsPerSample=17, got nil")
	}
}

func TestEncodeParams_ValidateFor_AcceptsValidParams(t *testing.T) {
	p := EncodeParams{Width: 64, Height: 64, Components: 1, BitsPerSample: 8, Quality: 90}
	if err := p.validateFor("test_encode", "1.2.3"); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestFromNativeError_WrapsKind(t *testing.T) {
	cause := &nativeError{kind: -3, message: "corrupt"}
	err := fromNativeError("j2k_decode", "1.2.3", cause)
	ce, ok := err.(*CodecError)
	if !ok {
		t.Fatalf("fromNativeError returned %T, want *CodecError", err)
	}
	if ce.Message != "corrupt" {
		t.Errorf("Message = %q, want %q", ce.Message, "corrupt")
	}
	if ce.Kind != native.KindInternal {
		t.Errorf("Kind = %v, want KindInternal", ce.Kind)
	}
}

// nativeError is a stand-in implementing error so fromNativeError's
// non-*native.Error branch (native.KindInternal wrap) is also exercised.
type nativeError struct {
	kind    int
	message string
}

func (e *nativeError) Error() string { return e.message }
