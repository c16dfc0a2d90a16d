//go:build cgo

package native

/*
#cgo pkg-config: libjpeg
#include "jpeg_wrap.h"
#include "facade.h"
#include <stdlib.h>
*/
import "C"
import "unsafe"

// Colorspace selects the output colorspace for JPEGDecode.
type Colorspace int

// Accepted colorspace requests for JPEGDecode (spec §4.2).
const (
	ColorspaceAuto Colorspace = iota
	ColorspaceRGB
	ColorspaceYBR
	ColorspaceGray
)

// JPEGDecodeHeader parses JPEG markers only, returning image geometry
// without doing any pixel work.
func JPEGDecodeHeader(input []byte) (width, height, components, subsampling int, err error) {
	if len(input) == 0 {
		return 0, 0, 0, 0, &Error{Kind: KindInvalidArgument, Op: "jpeg_decode_header", Message: "empty input"}
	}
	var w, h, c, sub C.int
	status := C.radxcodec_jpeg_decode_header(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		&w, &h, &c, &sub,
	)
	if status != C.RADXCODEC_OK {
		return 0, 0, 0, 0, &Error{Kind: kindFromStatus(int32(status)), Op: "jpeg_decode_header", Message: LastError()}
	}
	return int(w), int(h), int(c), int(sub), nil
}

// JPEGDecode decodes a JPEG baseline/extended/lossless stream into the
// caller-supplied output buffer, applying the requested colorspace
// conversion in-library.
func JPEGDecode(input []byte, output []byte, cs Colorspace) (width, height, components int, err error) {
	if len(input) == 0 || len(output) == 0 {
		return 0, 0, 0, &Error{Kind: KindInvalidArgument, Op: "jpeg_decode", Message: "empty input or output buffer"}
	}
	var w, h, c C.int
	status := C.radxcodec_jpeg_decode(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		(*C.uchar)(unsafe.Pointer(&output[0])), C.ulong(len(output)),
		C.int(cs),
		&w, &h, &c,
	)
	if status != C.RADXCODEC_OK {
		return 0, 0, 0, &Error{Kind: kindFromStatus(int32(status)), Op: "jpeg_decode", Message: LastError()}
	}
	return int(w), int(h), int(c), nil
}

// JPEGEncode compresses raw interleaved pixel data at the requested
// quality (1..100) and chroma subsampling (encoded as (h<<4)|v, e.g.
// 0x22 for 4:2:0, 0x11 for 4:4:4).
func JPEGEncode(input []byte, width, height, components, quality, subsampling int) ([]byte, error) {
	if len(input) == 0 {
		return nil, &Error{Kind: KindInvalidArgument, Op: "jpeg_encode", Message: "empty input"}
	}
	var outPtr *C.uchar
	var outLen C.ulong
	status := C.radxcodec_jpeg_encode(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.int(width), C.int(height), C.int(components),
		C.int(quality), C.int(subsampling),
		&outPtr, &outLen,
	)
	if status != C.RADXCODEC_OK {
		return nil, &Error{Kind: kindFromStatus(int32(status)), Op: "jpeg_encode", Message: LastError()}
	}
	defer C.radxcodec_jpeg_free((*C.uchar)(outPtr))
	return C.GoBytes(unsafe.Pointer(outPtr), C.int(outLen)), nil
}

// JPEGHas12BitSupport reports whether the linked libjpeg-turbo was built
// with 12-bit sample precision.
func JPEGHas12BitSupport() bool {
	return C.radxcodec_jpeg_has_12bit_support() != 0
}
