//go:build !cgo

package native

// VideoCodecID names the compressed video formats the wrapper decodes.
type VideoCodecID int

const (
	VideoCodecMPEG2 VideoCodecID = iota
	VideoCodecMPEG4
	VideoCodecH264
	VideoCodecHEVC
)

// VideoPixelFormat is the decoded-frame pixel layout requested by a caller.
type VideoPixelFormat int

const (
	VideoFormatGray8 VideoPixelFormat = iota
	VideoFormatGray16
	VideoFormatRGB24
	VideoFormatYUV420P
)

// VideoStreamInfo describes a decoder handle's stream (spec §4.5).
type VideoStreamInfo struct {
	Width      int
	Height     int
	CodecID    VideoCodecID
	BitDepth   int
	FrameCount int64
	FrameRate  float64
	DurationUs int64
}

// VideoFrameInfo describes a single decoded frame.
type VideoFrameInfo struct {
	Width    int
	Height   int
	Format   VideoPixelFormat
	PTS      int64
	KeyFrame bool
}

// VideoDecoder is a stub handle: video decoding requires cgo and libavcodec.
type VideoDecoder struct{}

const unsupportedVideoMsg = "video decoding requires cgo and libavcodec/libavutil/libswscale; rebuild with CGO_ENABLED=1"

// NewVideoDecoder is a stub: video decoding requires cgo and libavcodec.
func NewVideoDecoder(codecID VideoCodecID, extradata []byte) (*VideoDecoder, error) {
	setStubError(unsupportedVideoMsg)
	return nil, &Error{Kind: KindUnsupported, Op: "video_decoder_create", Message: unsupportedVideoMsg}
}

func (d *VideoDecoder) Close() error { return nil }

func (d *VideoDecoder) GetInfo() (VideoStreamInfo, error) {
	return VideoStreamInfo{}, &Error{Kind: KindUnsupported, Op: "video_get_info", Message: unsupportedVideoMsg}
}

func (d *VideoDecoder) DecodeFrame(input []byte, output []byte, format VideoPixelFormat) (VideoFrameInfo, bool, error) {
	return VideoFrameInfo{}, false, &Error{Kind: KindUnsupported, Op: "video_decode_frame", Message: unsupportedVideoMsg}
}

func (d *VideoDecoder) Flush(output []byte, format VideoPixelFormat) (VideoFrameInfo, bool, error) {
	return VideoFrameInfo{}, false, &Error{Kind: KindUnsupported, Op: "video_flush", Message: unsupportedVideoMsg}
}

func (d *VideoDecoder) Seek(frameNumber int64) error {
	return &Error{Kind: KindUnsupported, Op: "video_seek", Message: unsupportedVideoMsg}
}

func (d *VideoDecoder) Reset() error {
	return &Error{Kind: KindUnsupported, Op: "video_reset", Message: unsupportedVideoMsg}
}

func (d *VideoDecoder) GetFrameSize(format VideoPixelFormat) int {
	return -1
}
