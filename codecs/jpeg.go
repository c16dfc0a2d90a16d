package codecs

import (
	"github.com/radxcodec/codeccore/native"
)

// JPEGCodec adapts the native libjpeg-turbo wrapper to PixelCodec. It
// serves JPEG Baseline and JPEG Extended transfer syntaxes.
type JPEGCodec struct {
	tsuid string
}

// NewJPEGCodec returns a native-backed JPEG codec for tsuid.
func NewJPEGCodec(tsuid string) *JPEGCodec {
	return &JPEGCodec{tsuid: tsuid}
}

func (c *JPEGCodec) TransferSyntaxUID() string { return c.tsuid }

func (c *JPEGCodec) Decode(encoded []byte, opts DecodeOptions) ([]byte, FrameInfo, error) {
	w, h, comps, _, err := native.JPEGDecodeHeader(encoded)
	if err != nil {
		return nil, FrameInfo{}, fromNativeError("jpeg_decode", c.tsuid, err)
	}
	output := make([]byte, w*h*comps)
	gotW, gotH, gotComps, err := native.JPEGDecode(encoded, output, native.ColorspaceAuto)
	if err != nil {
		return nil, FrameInfo{}, fromNativeError("jpeg_decode", c.tsuid, err)
	}
	return output, FrameInfo{Width: gotW, Height: gotH, Components: gotComps, BitsPerSample: 8}, nil
}

func (c *JPEGCodec) Encode(pixels []byte, params EncodeParams) ([]byte, error) {
	if err := params.validateFor("jpeg_encode", c.tsuid); err != nil {
		return nil, err
	}
	subsampling := params.Subsampling
	if subsampling == 0 {
		subsampling = 0x22 // 4:2:0 default, matching libjpeg-turbo's own default
	}
	out, err := native.JPEGEncode(pixels, params.Width, params.Height, params.Components, params.Quality, subsampling)
	if err != nil {
		return nil, fromNativeError("jpeg_encode", c.tsuid, err)
	}
	return out, nil
}
