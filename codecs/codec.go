// Package codecs implements the host-facing pixel data codec adapters:
// the translation layer between a caller's raw pixel buffers and the
// native facade's byte-buffer conventions. See spec §4.8.
package codecs

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/radxcodec/codeccore/native"
)

var validate = validator.New()

// PixelCodec is the capability every adapter in this package implements:
// translate between raw interleaved pixel bytes and a transfer-syntax-
// specific wire encoding.
type PixelCodec interface {
	// Decode decompresses encoded pixel data into raw interleaved samples.
	Decode(encoded []byte, opts DecodeOptions) (pixels []byte, info FrameInfo, err error)
	// Encode compresses raw interleaved samples.
	Encode(pixels []byte, params EncodeParams) (encoded []byte, err error)
	// TransferSyntaxUID identifies the codec for registry lookup.
	TransferSyntaxUID() string
}

// FrameInfo describes the geometry a Decode call produced.
type FrameInfo struct {
	Width      int
	Height     int
	Components int
	BitsPerSample int
}

// DecodeOptions parameterizes a Decode call. Zero value means "default":
// full resolution, all quality layers, auto colorspace.
type DecodeOptions struct {
	// Reduce discards this many JPEG 2000 resolution levels.
	Reduce int `validate:"gte=0"`
	// MaxQualityLayers caps JPEG 2000 quality layers (0 = all).
	MaxQualityLayers int `validate:"gte=0"`
	// Region, if non-nil, requests partial JPEG 2000 decode.
	Region *Region

	// Geometry is required by RLE, whose wire format carries no frame
	// header of its own, so it knows the expected output size. Deflate
	// inflates the whole stream and ignores it, as do the self-describing
	// codecs (JPEG, JPEG 2000, JPEG-LS).
	Geometry FrameInfo
}

// Region is an image-coordinate decode window, inclusive of X0/Y0 and
// exclusive of X1/Y1.
type Region struct {
	X0, Y0, X1, Y1 int
}

// EncodeParams parameterizes an Encode call. Fields not applicable to a
// given codec are ignored.
type EncodeParams struct {
	Width          int `validate:"required,gt=0"`
	Height         int `validate:"required,gt=0"`
	Components     int `validate:"required,gt=0"`
	BitsPerSample   int `validate:"required,gte=2,lte=16"`
	Signed          bool
	Quality         int     `validate:"gte=0,lte=100"`
	Subsampling     int
	NearLossless    int     `validate:"gte=0,lte=255"`
	CompressionRatio float64 `validate:"gte=0"`
}

func (p EncodeParams) validateFor(op string, tsuid string) error {
	if err := validate.Struct(p); err != nil {
		return &CodecError{Kind: native.KindInvalidArgument, Op: op, TransferSyntaxUID: tsuid, Message: err.Error()}
	}
	return nil
}

// CodecError is raised by every adapter in this package on failure. It
// carries the unified error kind, the native message, the transfer-syntax
// identifier, and a human-readable category label (spec §4.8/§7).
type CodecError struct {
	Kind              native.Kind
	Op                string
	TransferSyntaxUID string
	Message           string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec %s: %s (transfer syntax %s): %s", e.Op, e.Kind, e.TransferSyntaxUID, e.Message)
}

func fromNativeError(op, tsuid string, err error) error {
	if err == nil {
		return nil
	}
	if ne, ok := err.(*native.Error); ok {
		return &CodecError{Kind: ne.Kind, Op: op, TransferSyntaxUID: tsuid, Message: ne.Message}
	}
	return &CodecError{Kind: native.KindInternal, Op: op, TransferSyntaxUID: tsuid, Message: err.Error()}
}

// Transfer syntax UIDs this package registers adapters for (DICOM PS3.5).
const (
	TransferSyntaxJPEGBaselineProcess1 = "1.2.840.10008.1.2.4.50"
	TransferSyntaxJPEGBaselineProcess2 = "1.2.840.10008.1.2.4.51"
	TransferSyntaxJPEG2000Lossless     = "1.2.840.10008.1.2.4.90"
	TransferSyntaxJPEG2000Lossy        = "1.2.840.10008.1.2.4.91"
	TransferSyntaxHTJ2KLossless        = "1.2.840.10008.1.2.4.201"
	TransferSyntaxHTJ2KLossy           = "1.2.840.10008.1.2.4.203"
	TransferSyntaxJPEGLSLossless       = "1.2.840.10008.1.2.4.80"
	TransferSyntaxJPEGLSNearLossless   = "1.2.840.10008.1.2.4.81"
	TransferSyntaxRLELossless          = "1.2.840.10008.1.2.5"
	TransferSyntaxDeflateExplicitVRLE  = "1.2.840.10008.1.2.1.99"
)
