//go:build !cgo

package native

// Colorspace selects the output colorspace for JPEGDecode.
type Colorspace int

// Accepted colorspace requests for JPEGDecode (spec §4.2).
const (
	ColorspaceAuto Colorspace = iota
	ColorspaceRGB
	ColorspaceYBR
	ColorspaceGray
)

const unsupportedJPEGMsg = "JPEG decoding requires cgo and libjpeg-turbo; rebuild with CGO_ENABLED=1"

// JPEGDecodeHeader is a stub: JPEG requires cgo and libjpeg-turbo.
func JPEGDecodeHeader(input []byte) (width, height, components, subsampling int, err error) {
	setStubError(unsupportedJPEGMsg)
	return 0, 0, 0, 0, &Error{Kind: KindUnsupported, Op: "jpeg_decode_header", Message: unsupportedJPEGMsg}
}

// JPEGDecode is a stub: JPEG requires cgo and libjpeg-turbo.
func JPEGDecode(input []byte, output []byte, cs Colorspace) (width, height, components int, err error) {
	setStubError(unsupportedJPEGMsg)
	return 0, 0, 0, &Error{Kind: KindUnsupported, Op: "jpeg_decode", Message: unsupportedJPEGMsg}
}

// JPEGEncode is a stub: JPEG requires cgo and libjpeg-turbo.
func JPEGEncode(input []byte, width, height, components, quality, subsampling int) ([]byte, error) {
	setStubError(unsupportedJPEGMsg)
	return nil, &Error{Kind: KindUnsupported, Op: "jpeg_encode", Message: unsupportedJPEGMsg}
}

// JPEGHas12BitSupport always reports false in a stub build.
func JPEGHas12BitSupport() bool {
	return false
}
