//go:build cgo

package native

/*
#cgo pkg-config: libopenjp2
#include "j2k_wrap.h"
#include "facade.h"
#include <stdlib.h>
*/
import "C"
import "unsafe"

// J2KFormat distinguishes a raw codestream from a JP2 file-format wrapper.
type J2KFormat int

const (
	J2KCodestream J2KFormat = iota
	J2KFileFormat
)

// J2KInfo describes a JPEG 2000 image's header without decoding pixels.
type J2KInfo struct {
	Width             int
	Height            int
	Components        int
	BitsPerComponent  int
	Signed            bool
	ColorSpace        int
	ResolutionLevels  int
	QualityLayers     int
	TileWidth         int
	TileHeight        int
	TilesWide         int
	TilesHigh         int
	Format            J2KFormat
}

// J2KDecodeOptions controls resolution reduction and layer truncation
// during decode (spec §4.3).
type J2KDecodeOptions struct {
	// Reduce discards this many resolution levels (0 = full resolution).
	Reduce int
	// MaxQualityLayers caps the number of quality layers decoded (0 = all).
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
	Lossless             bool
	CompressionRatio     float64
	Quality              float64
	ResolutionLevels     int
	TileWidth            int
	TileHeight           int
	CodeBlockWidthExp    int
	CodeBlockHeightExp   int
	Progression          J2KProgression
	Format               J2KFormat
}

// J2KDetectFormat inspects the leading bytes of input to decide whether it
// is a raw codestream or a JP2 file-format wrapper.
func J2KDetectFormat(input []byte) J2KFormat {
	if len(input) == 0 {
		return J2KCodestream
	}
	fmt := C.radxcodec_j2k_detect_format((*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)))
	if fmt == C.RADXCODEC_J2K_FILE_FORMAT {
		return J2KFileFormat
	}
	return J2KCodestream
}

// J2KGetInfo reads the JPEG 2000 header and returns image geometry without
// decoding any pixel data.
func J2KGetInfo(input []byte) (J2KInfo, error) {
	if len(input) == 0 {
		return J2KInfo{}, &Error{Kind: KindInvalidArgument, Op: "j2k_get_info", Message: "empty input"}
	}
	var cinfo C.radxcodec_j2k_info_t
	status := C.radxcodec_j2k_get_info(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)), &cinfo,
	)
	if status != C.RADXCODEC_OK {
		return J2KInfo{}, &Error{Kind: kindFromStatus(int32(status)), Op: "j2k_get_info", Message: LastError()}
	}
	return j2kInfoFromC(cinfo), nil
}

func j2kInfoFromC(c C.radxcodec_j2k_info_t) J2KInfo {
	format := J2KCodestream
	if c.wrapper_format == C.RADXCODEC_J2K_FILE_FORMAT {
		format = J2KFileFormat
	}
	return J2KInfo{
		Width:            int(c.width),
		Height:           int(c.height),
		Components:       int(c.components),
		BitsPerComponent: int(c.bits_per_component),
		Signed:           c.is_signed != 0,
		ColorSpace:       int(c.color_space),
		ResolutionLevels: int(c.resolution_levels),
		QualityLayers:    int(c.quality_layers),
		TileWidth:        int(c.tile_width),
		TileHeight:       int(c.tile_height),
		TilesWide:        int(c.tiles_wide),
		TilesHigh:        int(c.tiles_high),
		Format:           format,
	}
}

func j2kOptsToC(opts J2KDecodeOptions) C.radxcodec_j2k_decode_opts_t {
	return C.radxcodec_j2k_decode_opts_t{
		reduce:             C.int(opts.Reduce),
		max_quality_layers: C.int(opts.MaxQualityLayers),
	}
}

// J2KDecode fully decodes a JPEG 2000 image into the caller-supplied
// output buffer, honoring the resolution/layer limits in opts.
func J2KDecode(input []byte, output []byte, opts J2KDecodeOptions) (width, height, components, bps int, err error) {
	if len(input) == 0 || len(output) == 0 {
		return 0, 0, 0, 0, &Error{Kind: KindInvalidArgument, Op: "j2k_decode", Message: "empty input or output buffer"}
	}
	cOpts := j2kOptsToC(opts)
	var w, h, c, bitsps C.int
	status := C.radxcodec_j2k_decode(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		(*C.uchar)(unsafe.Pointer(&output[0])), C.ulong(len(output)),
		&cOpts,
		&w, &h, &c, &bitsps,
	)
	if status != C.RADXCODEC_OK {
		return 0, 0, 0, 0, &Error{Kind: kindFromStatus(int32(status)), Op: "j2k_decode", Message: LastError()}
	}
	return int(w), int(h), int(c), int(bitsps), nil
}

// J2KDecodeRegion decodes only the [x0,y0)-[x1,y1) rectangle of a JPEG
// 2000 image, in image (not tile) coordinates.
func J2KDecodeRegion(input []byte, output []byte, x0, y0, x1, y1 int, opts J2KDecodeOptions) (width, height, components, bps int, err error) {
	if len(input) == 0 || len(output) == 0 {
		return 0, 0, 0, 0, &Error{Kind: KindInvalidArgument, Op: "j2k_decode_region", Message: "empty input or output buffer"}
	}
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, &Error{Kind: KindInvalidArgument, Op: "j2k_decode_region", Message: "empty region"}
	}
	cOpts := j2kOptsToC(opts)
	var w, h, c, bitsps C.int
	status := C.radxcodec_j2k_decode_region(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.ulong(len(input)),
		(*C.uchar)(unsafe.Pointer(&output[0])), C.ulong(len(output)),
		C.int(x0), C.int(y0), C.int(x1), C.int(y1),
		&cOpts,
		&w, &h, &c, &bitsps,
	)
	if status != C.RADXCODEC_OK {
		return 0, 0, 0, 0, &Error{Kind: kindFromStatus(int32(status)), Op: "j2k_decode_region", Message: LastError()}
	}
	return int(w), int(h), int(c), int(bitsps), nil
}

// J2KEncode compresses raw interleaved pixel data into a JPEG 2000
// codestream or JP2 file, returning the encoded bytes.
func J2KEncode(input []byte, width, height, components, bits int, signed bool, params J2KEncodeParams) ([]byte, error) {
	if len(input) == 0 {
		return nil, &Error{Kind: KindInvalidArgument, Op: "j2k_encode", Message: "empty input"}
	}

	lossless := C.int(0)
	if params.Lossless {
		lossless = 1
	}
	progression := C.radxcodec_j2k_progression_t(params.Progression)
	format := C.int(0)
	if params.Format == J2KFileFormat {
		format = 1
	}
	cParams := C.radxcodec_j2k_encode_params_t{
		lossless:              lossless,
		compression_ratio:      C.double(params.CompressionRatio),
		quality:                C.double(params.Quality),
		resolution_levels:      C.int(params.ResolutionLevels),
		tile_width:             C.int(params.TileWidth),
		tile_height:            C.int(params.TileHeight),
		code_block_width_exp:   C.int(params.CodeBlockWidthExp),
		code_block_height_exp:  C.int(params.CodeBlockHeightExp),
		progression:            progression,
		wrapper_format:         format,
	}

	cSigned := C.int(0)
	if signed {
		cSigned = 1
	}

	// Worst case JPEG 2000 expansion stays well within 2x raw size for
	// any realistic parameter set; start generous and this is a single
	// allocation per encode call, not a hot-path retry loop.
	bound := len(input)*2 + 4096
	output := make([]byte, bound)
	var written C.ulong

	status := C.radxcodec_j2k_encode(
		(*C.uchar)(unsafe.Pointer(&input[0])), C.int(width), C.int(height), C.int(components),
		C.int(bits), cSigned,
		&cParams,
		(*C.uchar)(unsafe.Pointer(&output[0])), C.ulong(len(output)),
		&written,
	)
	if status != C.RADXCODEC_OK {
		return nil, &Error{Kind: kindFromStatus(int32(status)), Op: "j2k_encode", Message: LastError()}
	}
	return output[:int(written)], nil
}
