package codecs

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/radxcodec/codeccore/native"
)

// DeflateCodec implements the Deflated Explicit VR Little Endian transfer
// syntax: whole-stream DEFLATE over the raw pixel bytes, not a pixel
// codec in the image-compression sense but sharing the same adapter
// contract so the registry can arbitrate it alongside the others.
type DeflateCodec struct{}

// NewDeflateCodec returns a flate-backed codec for raw pixel streams.
func NewDeflateCodec() *DeflateCodec { return &DeflateCodec{} }

func (c *DeflateCodec) TransferSyntaxUID() string { return TransferSyntaxDeflateExplicitVRLE }

func (c *DeflateCodec) Decode(encoded []byte, opts DecodeOptions) ([]byte, FrameInfo, error) {
	r := flate.NewReader(bytes.NewReader(encoded))
	defer r.Close()
	pixels, err := io.ReadAll(r)
	if err != nil {
		return nil, FrameInfo{}, &CodecError{
			Kind: native.KindDecodeFailed, Op: "deflate_decode",
			TransferSyntaxUID: c.TransferSyntaxUID(), Message: err.Error(),
		}
	}
	return pixels, FrameInfo{}, nil
}

func (c *DeflateCodec) Encode(pixels []byte, params EncodeParams) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, &CodecError{Kind: native.KindInternal, Op: "deflate_encode", TransferSyntaxUID: c.TransferSyntaxUID(), Message: err.Error()}
	}
	if _, err := w.Write(pixels); err != nil {
		return nil, &CodecError{Kind: native.KindEncodeFailed, Op: "deflate_encode", TransferSyntaxUID: c.TransferSyntaxUID(), Message: err.Error()}
	}
	if err := w.Close(); err != nil {
		return nil, &CodecError{Kind: native.KindEncodeFailed, Op: "deflate_encode", TransferSyntaxUID: c.TransferSyntaxUID(), Message: err.Error()}
	}
	return buf.Bytes(), nil
}
