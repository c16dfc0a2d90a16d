package codecs

import (
	"github.com/radxcodec/codeccore/native"
)

// JLSCodec adapts the native CharLS wrapper to PixelCodec, for both the
// lossless and near-lossless JPEG-LS transfer syntaxes. NearLossless
// carries the fixed tolerance this codec instance always encodes with
// (0 for the lossless variant).
type JLSCodec struct {
	tsuid        string
	nearLossless int
}

// NewJLSCodec returns a native-backed JPEG-LS codec with a fixed
// near-lossless tolerance (0 for the lossless transfer syntax).
func NewJLSCodec(tsuid string, nearLossless int) *JLSCodec {
	return &JLSCodec{tsuid: tsuid, nearLossless: nearLossless}
}

func (c *JLSCodec) TransferSyntaxUID() string { return c.tsuid }

func (c *JLSCodec) Decode(encoded []byte, opts DecodeOptions) ([]byte, FrameInfo, error) {
	required, params, err := native.JLSGetDecodeSize(encoded)
	if err != nil {
		return nil, FrameInfo{}, fromNativeError("jls_decode", c.tsuid, err)
	}
	output := make([]byte, required)
	gotParams, err := native.JLSDecode(encoded, output)
	if err != nil {
		return nil, FrameInfo{}, fromNativeError("jls_decode", c.tsuid, err)
	}
	_ = params
	return output, FrameInfo{
		Width: gotParams.Width, Height: gotParams.Height,
		Components: gotParams.Components, BitsPerSample: gotParams.BitsPerSample,
	}, nil
}

func (c *JLSCodec) Encode(pixels []byte, params EncodeParams) ([]byte, error) {
	if err := params.validateFor("jls_encode", c.tsuid); err != nil {
		return nil, err
	}
	nativeParams := native.JLSParams{
		Width:          params.Width,
		Height:         params.Height,
		Components:     params.Components,
		BitsPerSample:  params.BitsPerSample,
		NearLossless:   c.nearLossless,
		InterleaveMode: native.JLSInterleaveNone,
	}
	bound := native.JLSGetEncodeBound(nativeParams)
	output := make([]byte, bound)
	written, err := native.JLSEncode(pixels, output, nativeParams)
	if err != nil {
		return nil, fromNativeError("jls_encode", c.tsuid, err)
	}
	return output[:written], nil
}
