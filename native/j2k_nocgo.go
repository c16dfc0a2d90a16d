//go:build !cgo

package native

// J2KFormat distinguishes a raw codestream from a JP2 file-format wrapper.
type J2KFormat int

const (
	J2KCodestream J2KFormat = iota
	J2KFileFormat
)

// J2KInfo describes a JPEG 2000 image's header without decoding pixels.
type J2KInfo struct {
	Width            int
	Height           int
	Components       int
	BitsPerComponent int
	Signed           bool
	ColorSpace       int
	ResolutionLevels int
	QualityLayers    int
	TileWidth        int
	TileHeight       int
	TilesWide        int
	TilesHigh        int
	Format           J2KFormat
}

// J2KDecodeOptions controls resolution reduction and layer truncation
// during decode (spec §4.3).
type J2KDecodeOptions struct {
	Reduce           int
	MaxQualityLayers int
}

// J2KProgression is the wavelet packet progression order used on encode.
type J2KProgression int

const (
	J2KProgLRCP J2KProgression = iota
	J2KProgRLCP
	J2KProgRPCL
	J2KProgPCRL
	J2KProgCPRL
)

// J2KEncodeParams controls JPEG 2000 encoding (spec §4.3).
type J2KEncodeParams struct {
	Lossless           bool
	CompressionRatio    float64
	Quality             float64
	ResolutionLevels    int
	TileWidth           int
	TileHeight          int
	CodeBlockWidthExp   int
	CodeBlockHeightExp  int
	Progression         J2KProgression
	Format              J2KFormat
}

const unsupportedJ2KMsg = "JPEG 2000 support requires cgo and libopenjp2; rebuild with CGO_ENABLED=1"

// J2KDetectFormat replicates the native byte-level signature check without
// requiring cgo, since autodetection needs no native library calls.
func J2KDetectFormat(input []byte) J2KFormat {
	jp2Signature := [12]byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}
	if len(input) >= 2 && input[0] == 0xFF && input[1] == 0x4F {
		return J2KCodestream
	}
	if len(input) >= 12 {
		match := true
		for i := 0; i < 12; i++ {
			if input[i] != jp2Signature[i] {
				match = false
				break
			}
		}
		if match {
			return J2KFileFormat
		}
	}
	if len(input) >= 8 && input[4] == 'j' && input[5] == 'P' && input[6] == ' ' && input[7] == ' ' {
		return J2KFileFormat
	}
	return J2KCodestream
}

// J2KGetInfo is a stub: JPEG 2000 requires cgo and libopenjp2.
func J2KGetInfo(input []byte) (J2KInfo, error) {
	setStubError(unsupportedJ2KMsg)
	return J2KInfo{}, &Error{Kind: KindUnsupported, Op: "j2k_get_info", Message: unsupportedJ2KMsg}
}

// J2KDecode is a stub: JPEG 2000 requires cgo and libopenjp2.
func J2KDecode(input []byte, output []byte, opts J2KDecodeOptions) (width, height, components, bps int, err error) {
	setStubError(unsupportedJ2KMsg)
	return 0, 0, 0, 0, &Error{Kind: KindUnsupported, Op: "j2k_decode", Message: unsupportedJ2KMsg}
}

// J2KDecodeRegion is a stub: JPEG 2000 requires cgo and libopenjp2.
func J2KDecodeRegion(input []byte, output []byte, x0, y0, x1, y1 int, opts J2KDecodeOptions) (width, height, components, bps int, err error) {
	setStubError(unsupportedJ2KMsg)
	return 0, 0, 0, 0, &Error{Kind: KindUnsupported, Op: "j2k_decode_region", Message: unsupportedJ2KMsg}
}

// J2KEncode is a stub: JPEG 2000 requires cgo and libopenjp2.
func J2KEncode(input []byte, width, height, components, bits int, signed bool, params J2KEncodeParams) ([]byte, error) {
	setStubError(unsupportedJ2KMsg)
	return nil, &Error{Kind: KindUnsupported, Op: "j2k_encode", Message: unsupportedJ2KMsg}
}
