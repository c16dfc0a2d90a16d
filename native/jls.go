//go:build cgo

package native

/*
#cgo pkg-config: libcharls
#include "jls_wrap.h"
#include "facade.h"
#include <stdlib.h>
*/
import "C"
import "unsafe"

// JLSInterleave is the CharLS sample interleave mode.
type JLSInterleave int

const (
	JLSInterleaveNone JLSInterleave = iota
	JLSInterleaveLine
	JLSInterleaveSample
)

// JLSParams carries the JPEG-LS frame parameters exchanged on every
// operation (spec §4.4).
type JLSParams struct {
	Width           int
	Height          int
	Components      int
	BitsPerSample   int
	NearLossless    int
	InterleaveMode  JLSInterleave
}

func jlsParamsToC(p JLSParams) C.radxcodec_jls_params_t {
	return C.radxcodec_jls_params_t{
		width:            C.int(p.Width),
		height:           C.int(p.Height),
		components:       C.int(p.Components),
		bits_per_sample:  C.int(p.BitsPerSample),
		near_lossless:    C.int(p.NearLossless),
		interleave_mode:  C.int(p.InterleaveMode),
	}
}

func jlsParamsFromC(c C.radxcodec_jls_params_t) JLSParams {
	return JLSParams{
		Width:          int(c.width),
		Height:         int(c.height),
		Components:     int(c.components),
		BitsPerSample:  int(c.bits_per_sample),
		NearLossless:   int(c.near_lossless),
		InterleaveMode: JLSInterleave(c.interleave_mode),
	}
}

// JLSGetDecodeSize probes a JPEG-LS header and returns the required
// decode output buffer size and the frame parameters.
func JLSGetDecodeSize(input []byte) (requiredOutputBytes int, params JLSParams, err error) {
	if len(input) == 0 {
		return 0, JLSParams{}, &Error{Kind: KindInvalidArgument, Op: "jls_get_decode_size", Message: "empty input"}
	}
	var required C.ulong
	var cParams C.radxcodec_jls_params_t
	status := C.radxcodec_jls_get_decode_size(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		&required, &cParams,
	)
	if status != C.RADXCODEC_OK {
		return 0, JLSParams{}, &Error{Kind: kindFromStatus(int32(status)), Op: "jls_get_decode_size", Message: LastError()}
	}
	return int(required), jlsParamsFromC(cParams), nil
}

// JLSDecode decodes a JPEG-LS stream into the caller-supplied output
// buffer, which must be at least as large as JLSGetDecodeSize reports.
func JLSDecode(input []byte, output []byte) (JLSParams, error) {
	if len(input) == 0 || len(output) == 0 {
		return JLSParams{}, &Error{Kind: KindInvalidArgument, Op: "jls_decode", Message: "empty input or output buffer"}
	}
	var cParams C.radxcodec_jls_params_t
	status := C.radxcodec_jls_decode(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		(*C.uchar)(unsafe.Pointer(&output[0])), C.ulong(len(output)),
		&cParams,
	)
	if status != C.RADXCODEC_OK {
		return JLSParams{}, &Error{Kind: kindFromStatus(int32(status)), Op: "jls_decode", Message: LastError()}
	}
	return jlsParamsFromC(cParams), nil
}

// JLSGetEncodeBound returns a conservative upper bound on the encoded
// size for the given frame parameters.
func JLSGetEncodeBound(params JLSParams) int {
	cParams := jlsParamsToC(params)
	return int(C.radxcodec_jls_get_encode_bound(&cParams))
}

// JLSEncode compresses raw interleaved pixel data using JPEG-LS,
// returning the encoded byte count written into output.
func JLSEncode(input []byte, output []byte, params JLSParams) (int, error) {
	if len(input) == 0 || len(output) == 0 {
		return 0, &Error{Kind: KindInvalidArgument, Op: "jls_encode", Message: "empty input or output buffer"}
	}
	cParams := jlsParamsToC(params)
	var written C.ulong
	status := C.radxcodec_jls_encode(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		(*C.uchar)(unsafe.Pointer(&output[0])), C.ulong(len(output)),
		&cParams, &written,
	)
	if status != C.RADXCODEC_OK {
		return 0, &Error{Kind: kindFromStatus(int32(status)), Op: "jls_encode", Message: LastError()}
	}
	return int(written), nil
}
