//go:build cgo

package native

/*
#cgo pkg-config: libavcodec libavutil libswscale
#include "video_wrap.h"
#include "facade.h"
#include <stdlib.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

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
	Width       int
	Height      int
	CodecID     VideoCodecID
	BitDepth    int
	FrameCount  int64 // -1 if unknown
	FrameRate   float64
	DurationUs  int64 // -1 if unknown
}

// VideoFrameInfo describes a single decoded frame.
type VideoFrameInfo struct {
	Width    int
	Height   int
	Format   VideoPixelFormat
	PTS      int64
	KeyFrame bool
}

// VideoDecoder wraps an opaque native decoder handle. Not safe for
// concurrent use by multiple goroutines against the same handle;
// distinct handles may be used in parallel (spec §4.5).
type VideoDecoder struct {
	handle *C.radxcodec_video_decoder_t
}

// NewVideoDecoder allocates a decoder for codecID, optionally seeded with
// out-of-band extradata (e.g. H.264 SPS/PPS).
func NewVideoDecoder(codecID VideoCodecID, extradata []byte) (*VideoDecoder, error) {
	var ptr *C.uchar
	var length C.ulong
	if len(extradata) > 0 {
		ptr = (*C.uchar)(unsafe.Pointer(&extradata[0]))
		length = C.ulong(len(extradata))
	}
	h := C.radxcodec_video_decoder_create(C.int(codecID), ptr, length)
	if h == nil {
		return nil, &Error{Kind: KindInvalidArgument, Op: "video_decoder_create", Message: LastError()}
	}
	d := &VideoDecoder{handle: h}
	runtime.SetFinalizer(d, (*VideoDecoder).Close)
	return d, nil
}

// Close releases the native decoder. Safe to call more than once.
func (d *VideoDecoder) Close() error {
	if d.handle == nil {
		return nil
	}
	C.radxcodec_video_decoder_destroy(d.handle)
	d.handle = nil
	runtime.SetFinalizer(d, nil)
	return nil
}

// GetInfo returns the stream's geometry and timing metadata.
func (d *VideoDecoder) GetInfo() (VideoStreamInfo, error) {
	var cinfo C.radxcodec_video_info_t
	status := C.radxcodec_video_get_info(d.handle, &cinfo)
	if status != C.RADXCODEC_OK {
		return VideoStreamInfo{}, &Error{Kind: kindFromStatus(int32(status)), Op: "video_get_info", Message: LastError()}
	}
	return VideoStreamInfo{
		Width:      int(cinfo.width),
		Height:     int(cinfo.height),
		CodecID:    VideoCodecID(cinfo.codec_id),
		BitDepth:   int(cinfo.bit_depth),
		FrameCount: int64(cinfo.frame_count),
		FrameRate:  float64(cinfo.frame_rate),
		DurationUs: int64(cinfo.duration_us),
	}, nil
}

// DecodeFrame feeds a compressed packet and attempts a non-blocking
// receive. frameAvailable is false when the decoder consumed the packet
// but needs more input before it can emit a frame (B-frame reordering).
func (d *VideoDecoder) DecodeFrame(input []byte, output []byte, format VideoPixelFormat) (info VideoFrameInfo, frameAvailable bool, err error) {
	var inPtr *C.uchar
	var inLen C.ulong
	if len(input) > 0 {
		inPtr = (*C.uchar)(unsafe.Pointer(&input[0]))
		inLen = C.ulong(len(input))
	}
	var outPtr *C.uchar
	if len(output) > 0 {
		outPtr = (*C.uchar)(unsafe.Pointer(&output[0]))
	}
	var cFrameInfo C.radxcodec_video_frame_info_t
	var available C.int
	status := C.radxcodec_video_decode_frame(
		d.handle, inPtr, inLen, outPtr, C.ulong(len(output)),
		C.int(format), &cFrameInfo, &available,
	)
	if status != C.RADXCODEC_OK {
		return VideoFrameInfo{}, false, &Error{Kind: kindFromStatus(int32(status)), Op: "video_decode_frame", Message: LastError()}
	}
	return videoFrameInfoFromC(cFrameInfo), available != 0, nil
}

// Flush drains buffered frames after end-of-stream. frameAvailable is
// false once the decoder's internal buffer is exhausted.
func (d *VideoDecoder) Flush(output []byte, format VideoPixelFormat) (info VideoFrameInfo, frameAvailable bool, err error) {
	var outPtr *C.uchar
	if len(output) > 0 {
		outPtr = (*C.uchar)(unsafe.Pointer(&output[0]))
	}
	var cFrameInfo C.radxcodec_video_frame_info_t
	var available C.int
	status := C.radxcodec_video_flush(d.handle, outPtr, C.ulong(len(output)), C.int(format), &cFrameInfo, &available)
	if status != C.RADXCODEC_OK {
		return VideoFrameInfo{}, false, &Error{Kind: kindFromStatus(int32(status)), Op: "video_flush", Message: LastError()}
	}
	return videoFrameInfoFromC(cFrameInfo), available != 0, nil
}

// Seek resets decoder state; the caller must next feed bytes starting at
// a keyframe at or before frameNumber.
func (d *VideoDecoder) Seek(frameNumber int64) error {
	status := C.radxcodec_video_seek(d.handle, C.long(frameNumber))
	if status != C.RADXCODEC_OK {
		return &Error{Kind: kindFromStatus(int32(status)), Op: "video_seek", Message: LastError()}
	}
	return nil
}

// Reset is equivalent to Seek(0), for stream reuse.
func (d *VideoDecoder) Reset() error {
	status := C.radxcodec_video_reset(d.handle)
	if status != C.RADXCODEC_OK {
		return &Error{Kind: kindFromStatus(int32(status)), Op: "video_reset", Message: LastError()}
	}
	return nil
}

// GetFrameSize returns the output buffer size required for format.
func (d *VideoDecoder) GetFrameSize(format VideoPixelFormat) int {
	return int(C.radxcodec_video_get_frame_size(d.handle, C.int(format)))
}

func videoFrameInfoFromC(c C.radxcodec_video_frame_info_t) VideoFrameInfo {
	return VideoFrameInfo{
		Width:    int(c.width),
		Height:   int(c.height),
		Format:   VideoPixelFormat(c.format),
		PTS:      int64(c.pts),
		KeyFrame: c.key_frame != 0,
	}
}
