package codecs

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/radxcodec/codeccore/native"
)

// JPEGBaselineFallbackCodec implements JPEG Baseline decode/encode using
// stdlib image/jpeg, serving as the portable pure-host fallback behind
// JPEGCodec in the registry's priority ladder. Adapted from the teacher's
// JPEGBaselineDecoder: same color-space conversion helpers, generalized
// to also encode.
type JPEGBaselineFallbackCodec struct {
	tsuid string
}

// NewJPEGBaselineFallbackCodec returns a stdlib-backed JPEG codec for tsuid.
func NewJPEGBaselineFallbackCodec(tsuid string) *JPEGBaselineFallbackCodec {
	return &JPEGBaselineFallbackCodec{tsuid: tsuid}
}

func (c *JPEGBaselineFallbackCodec) TransferSyntaxUID() string { return c.tsuid }

func (c *JPEGBaselineFallbackCodec) Decode(encoded []byte, opts DecodeOptions) ([]byte, FrameInfo, error) {
	if len(encoded) == 0 {
		return nil, FrameInfo{}, &CodecError{Kind: native.KindInvalidArgument, Op: "jpeg_decode", TransferSyntaxUID: c.tsuid, Message: "empty input"}
	}

	img, err := jpeg.Decode(bytes.NewReader(encoded))
	if err != nil {
		return nil, FrameInfo{}, &CodecError{Kind: native.KindDecodeFailed, Op: "jpeg_decode", TransferSyntaxUID: c.tsuid, Message: err.Error()}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var pixels []byte
	var components int
	switch typed := img.(type) {
	case *image.Gray:
		pixels = typed.Pix
		components = 1
	case *image.YCbCr:
		pixels = ycbcrToRGB(typed)
		components = 3
	case *image.RGBA:
		pixels = rgbaToRGB(typed)
		components = 3
	case *image.NRGBA:
		pixels = nrgbaToRGB(typed)
		components = 3
	default:
		return nil, FrameInfo{}, &CodecError{
			Kind: native.KindUnsupported, Op: "jpeg_decode", TransferSyntaxUID: c.tsuid,
			Message: fmt.Sprintf("unsupported image type: %T", img),
		}
	}

	return pixels, FrameInfo{Width: width, Height: height, Components: components, BitsPerSample: 8}, nil
}

func (c *JPEGBaselineFallbackCodec) Encode(pixels []byte, params EncodeParams) ([]byte, error) {
	if err := params.validateFor("jpeg_encode", c.tsuid); err != nil {
		return nil, err
	}

	var img image.Image
	switch params.Components {
	case 1:
		gray := image.NewGray(image.Rect(0, 0, params.Width, params.Height))
		copy(gray.Pix, pixels)
		img = gray
	case 3:
		rgba := image.NewRGBA(image.Rect(0, 0, params.Width, params.Height))
		for i := 0; i < params.Width*params.Height; i++ {
			rgba.Pix[i*4] = pixels[i*3]
			rgba.Pix[i*4+1] = pixels[i*3+1]
			rgba.Pix[i*4+2] = pixels[i*3+2]
			rgba.Pix[i*4+3] = 255
		}
		img = rgba
	default:
		return nil, &CodecError{
			Kind: native.KindUnsupported, Op: "jpeg_encode", TransferSyntaxUID: c.tsuid,
			Message: fmt.Sprintf("unsupported component count: %d", params.Components),
		}
	}

	quality := params.Quality
	if quality == 0 {
		quality = jpeg.DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, &CodecError{Kind: native.KindEncodeFailed, Op: "jpeg_encode", TransferSyntaxUID: c.tsuid, Message: err.Error()}
	}
	return buf.Bytes(), nil
}

// ycbcrToRGB converts an image.YCbCr to interleaved RGB bytes, matching
// JPEG's own YCbCr-to-RGB color transform.
func ycbcrToRGB(img *image.YCbCr) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, width*height*3)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			yi := img.YOffset(x, y)
			ci := img.COffset(x, y)
			yy := int32(img.Y[yi])
			cb := int32(img.Cb[ci])
			cr := int32(img.Cr[ci])
			r := yy + (91881*(cr-128))>>16
			g := yy - (22554*(cb-128))>>16 - (46802*(cr-128))>>16
			b := yy + (116130*(cb-128))>>16
			rgb[idx] = clampUint8(r)
			rgb[idx+1] = clampUint8(g)
			rgb[idx+2] = clampUint8(b)
			idx += 3
		}
	}
	return rgb
}

func rgbaToRGB(img *image.RGBA) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, width*height*3)
	srcIdx, dstIdx := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgb[dstIdx] = img.Pix[srcIdx]
			rgb[dstIdx+1] = img.Pix[srcIdx+1]
			rgb[dstIdx+2] = img.Pix[srcIdx+2]
			srcIdx += 4
			dstIdx += 3
		}
	}
	return rgb
}

func nrgbaToRGB(img *image.NRGBA) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, width*height*3)
	srcIdx, dstIdx := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgb[dstIdx] = img.Pix[srcIdx]
			rgb[dstIdx+1] = img.Pix[srcIdx+1]
			rgb[dstIdx+2] = img.Pix[srcIdx+2]
			srcIdx += 4
			dstIdx += 3
		}
	}
	return rgb
}

func clampUint8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
