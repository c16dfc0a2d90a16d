package codecs

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestDeflateCodec_TransferSyntaxUID(t *testing.T) {
	c := NewDeflateCodec()
	if got := c.TransferSyntaxUID(); got != TransferSyntaxDeflateExplicitVRLE {
		t.Errorf("TransferSyntaxUID() = %q, want %q", got, TransferSyntaxDeflateExplicitVRLE)
	}
}

func TestDeflateCodec_RoundTrip(t *testing.T) {
	pixels := make([]byte, 4096)
	rnd := rand.New(rand.NewSource(3))
	rnd.Read(pixels)

	c := NewDeflateCodec()
	encoded, err := c.Encode(pixels, EncodeParams{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) == 0 {
		t.Fatal("Encode produced empty output")
	}

	decoded, _, err := c.Decode(encoded, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(pixels, decoded) {
		t.Error("round trip mismatch")
	}
}

func TestDeflateCodec_RoundTrip_RepetitiveData(t *testing.T) {
	pixels := bytes.Repeat([]byte{0x00}, 8192)

	c := NewDeflateCodec()
	encoded, err := c.Encode(pixels, EncodeParams{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) >= len(pixels) {
		t.Errorf("expected compression on repetitive data: encoded %d bytes >= raw %d bytes", len(encoded), len(pixels))
	}

	decoded, _, err := c.Decode(encoded, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(pixels, decoded) {
		t.Error("round trip mismatch")
	}
}

func TestDeflateCodec_Decode_RejectsCorruptData(t *testing.T) {
	c := NewDeflateCodec()
	_, _, err := c.Decode([]byte{0xFF, 0xFF, 0xFF, 0xFF}, DecodeOptions{})
	if err == nil {
		t.Fatal("expected error for corrupt deflate stream, got nil")
	}
}
