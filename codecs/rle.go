package codecs

import (
	"encoding/binary"
	"fmt"

	"github.com/radxcodec/codeccore/native"
)

// RLECodec implements DICOM RLE Lossless (PS3.5 Annex G): PackBits
// compression with segments organized by byte position. Adapted from the
// teacher's RLEDecoder, unchanged in algorithm since no native equivalent
// exists to displace it (it always runs at PriorityPureHost — see
// registry package), and extended with the symmetric encoder.
type RLECodec struct{}

// NewRLECodec returns the RLE Lossless codec.
func NewRLECodec() *RLECodec { return &RLECodec{} }

func (c *RLECodec) TransferSyntaxUID() string { return TransferSyntaxRLELossless }

func (c *RLECodec) Decode(encoded []byte, opts DecodeOptions) ([]byte, FrameInfo, error) {
	if len(encoded) < 64 {
		return nil, FrameInfo{}, &CodecError{
			Kind: native.KindInvalidArgument, Op: "rle_decode", TransferSyntaxUID: c.TransferSyntaxUID(),
			Message: fmt.Sprintf("RLE data too small (< 64 bytes): %d bytes", len(encoded)),
		}
	}

	numSegments := binary.LittleEndian.Uint32(encoded[0:4])
	if numSegments == 0 || numSegments > 15 {
		return nil, FrameInfo{}, &CodecError{
			Kind: native.KindCorruptData, Op: "rle_decode", TransferSyntaxUID: c.TransferSyntaxUID(),
			Message: fmt.Sprintf("invalid number of RLE segments: %d (must be 1-15)", numSegments),
		}
	}
	offsets := make([]uint32, 15)
	for i := 0; i < 15; i++ {
		offsets[i] = binary.LittleEndian.Uint32(encoded[4+i*4 : 8+i*4])
	}

	geom := opts.Geometry
	bytesPerSample := (geom.BitsPerSample + 7) / 8
	expectedSize := geom.Width * geom.Height * geom.Components * bytesPerSample
	output := make([]byte, expectedSize)
	samplesPerFrame := geom.Width * geom.Height * geom.Components

	for seg := 0; seg < int(numSegments); seg++ {
		start := int(offsets[seg])
		var end int
		if seg < int(numSegments)-1 {
			end = int(offsets[seg+1])
		} else {
			end = len(encoded)
		}
		if start >= len(encoded) || end > len(encoded) {
			return nil, FrameInfo{}, &CodecError{
				Kind: native.KindCorruptData, Op: "rle_decode", TransferSyntaxUID: c.TransferSyntaxUID(),
				Message: fmt.Sprintf("segment %d offset out of bounds: %d-%d (data size: %d)", seg, start, end, len(encoded)),
			}
		}

		decompressed, err := decodePackBits(encoded[start:end])
		if err != nil {
			return nil, FrameInfo{}, &CodecError{
				Kind: native.KindCorruptData, Op: "rle_decode", TransferSyntaxUID: c.TransferSyntaxUID(),
				Message: fmt.Sprintf("segment %d decompression failed: %v", seg, err),
			}
		}

		bytePosition := seg % bytesPerSample
		for i := 0; i < len(decompressed) && i < samplesPerFrame; i++ {
			outIdx := i*bytesPerSample + bytePosition
			if outIdx < len(output) {
				output[outIdx] = decompressed[i]
			}
		}
	}

	return output, geom, nil
}

func (c *RLECodec) Encode(pixels []byte, params EncodeParams) ([]byte, error) {
	if err := params.validateFor("rle_encode", c.TransferSyntaxUID()); err != nil {
		return nil, err
	}

	bytesPerSample := (params.BitsPerSample + 7) / 8
	samplesPerFrame := params.Width * params.Height * params.Components
	if samplesPerFrame*bytesPerSample != len(pixels) {
		return nil, &CodecError{
			Kind: native.KindInvalidArgument, Op: "rle_encode", TransferSyntaxUID: c.TransferSyntaxUID(),
			Message: fmt.Sprintf("pixel buffer size %d does not match geometry (%d expected)", len(pixels), samplesPerFrame*bytesPerSample),
		}
	}

	numSegments := bytesPerSample
	segments := make([][]byte, numSegments)
	for bytePos := 0; bytePos < numSegments; bytePos++ {
		plane := make([]byte, samplesPerFrame)
		for i := 0; i < samplesPerFrame; i++ {
			plane[i] = pixels[i*bytesPerSample+bytePos]
		}
		segments[bytePos] = encodePackBits(plane)
	}

	header := make([]byte, 64)
	binary.LittleEndian.PutUint32(header[0:4], uint32(numSegments))
	offset := uint32(64)
	for i, seg := range segments {
		binary.LittleEndian.PutUint32(header[4+i*4:8+i*4], offset)
		offset += uint32(len(seg))
	}

	out := make([]byte, 0, offset)
	out = append(out, header...)
	for _, seg := range segments {
		out = append(out, seg...)
	}
	return out, nil
}

// decodePackBits implements the PackBits RLE decompression algorithm
// (DICOM PS3.5 Annex G): a control byte in [0,127] copies the next n+1
// bytes literally; a control byte in [129,255] repeats the next byte
// (257-n) times; 128 is a no-op.
func decodePackBits(data []byte) ([]byte, error) {
	output := make([]byte, 0, len(data)*2)
	pos := 0
	for pos < len(data) {
		control := int8(data[pos])
		pos++
		if control >= 0 {
			count := int(control) + 1
			if pos+count > len(data) {
				return nil, fmt.Errorf("literal run extends beyond data: pos=%d, count=%d, len=%d", pos, count, len(data))
			}
			output = append(output, data[pos:pos+count]...)
			pos += count
		} else if control != -128 {
			count := 1 - int(control)
			if pos >= len(data) {
				return nil, fmt.Errorf("repeat run missing data byte: pos=%d, len=%d", pos, len(data))
			}
			repeatByte := data[pos]
			pos++
			for i := 0; i < count; i++ {
				output = append(output, repeatByte)
			}
		}
	}
	return output, nil
}

// encodePackBits compresses data with the PackBits algorithm, preferring
// repeat runs of length >= 3 and otherwise emitting literal runs, each
// capped at 128 bytes per DICOM PS3.5 Annex G.
func encodePackBits(data []byte) []byte {
	output := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		runLen := 1
		for i+runLen < len(data) && data[i+runLen] == data[i] && runLen < 128 {
			runLen++
		}
		if runLen >= 3 {
			output = append(output, byte(1-runLen), data[i])
			i += runLen
			continue
		}

		litStart := i
		litLen := 0
		for i < len(data) && litLen < 128 {
			lookaheadRun := 1
			for i+lookaheadRun < len(data) && data[i+lookaheadRun] == data[i] && lookaheadRun < 128 {
				lookaheadRun++
			}
			if lookaheadRun >= 3 {
				break
			}
			i++
			litLen++
		}
		output = append(output, byte(litLen-1))
		output = append(output, data[litStart:litStart+litLen]...)
	}
	return output
}
