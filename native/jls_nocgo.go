//go:build !cgo

package native

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
	Width          int
	Height         int
	Components     int
	BitsPerSample  int
	NearLossless   int
	InterleaveMode JLSInterleave
}

const unsupportedJLSMsg = "JPEG-LS support requires cgo and libcharls; rebuild with CGO_ENABLED=1"

// JLSGetDecodeSize is a stub: JPEG-LS requires cgo and libcharls.
func JLSGetDecodeSize(input []byte) (requiredOutputBytes int, params JLSParams, err error) {
	setStubError(unsupportedJLSMsg)
	return 0, JLSParams{}, &Error{Kind: KindUnsupported, Op: "jls_get_decode_size", Message: unsupportedJLSMsg}
}

// JLSDecode is a stub: JPEG-LS requires cgo and libcharls.
func JLSDecode(input []byte, output []byte) (JLSParams, error) {
	setStubError(unsupportedJLSMsg)
	return JLSParams{}, &Error{Kind: KindUnsupported, Op: "jls_decode", Message: unsupportedJLSMsg}
}

// JLSGetEncodeBound mirrors the native formula without requiring cgo,
// since it is pure arithmetic over caller-supplied parameters.
func JLSGetEncodeBound(params JLSParams) int {
	bytesPerSample := (params.BitsPerSample + 7) / 8
	rawSize := params.Width * params.Height * params.Components * bytesPerSample
	return rawSize + rawSize/16 + 1024
}

// JLSEncode is a stub: JPEG-LS requires cgo and libcharls.
func JLSEncode(input []byte, output []byte, params JLSParams) (int, error) {
	setStubError(unsupportedJLSMsg)
	return 0, &Error{Kind: KindUnsupported, Op: "jls_encode", Message: unsupportedJLSMsg}
}
