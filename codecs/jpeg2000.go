package codecs

import (
	"context"

	"github.com/radxcodec/codeccore/gpu"
	"github.com/radxcodec/codeccore/native"
)

// J2KCodec adapts the native OpenJPEG wrapper to PixelCodec, for both
// the lossless and lossy JPEG 2000 transfer syntaxes. Decode additionally
// consults GPU availability at construction and routes through the GPU
// dispatch shim when available (spec §4.8).
type J2KCodec struct {
	tsuid     string
	lossless  bool
	useGPU    bool
}

// NewJ2KCodec returns a native-backed JPEG 2000 codec. useGPU should
// reflect gpu.Available() observed once at registration time, per spec
// §4.8's "consults the GPU availability flag at construction".
func NewJ2KCodec(tsuid string, lossless bool, useGPU bool) *J2KCodec {
	return &J2KCodec{tsuid: tsuid, lossless: lossless, useGPU: useGPU}
}

func (c *J2KCodec) TransferSyntaxUID() string { return c.tsuid }

func (c *J2KCodec) Decode(encoded []byte, opts DecodeOptions) ([]byte, FrameInfo, error) {
	info, err := native.J2KGetInfo(encoded)
	if err != nil {
		return nil, FrameInfo{}, fromNativeError("j2k_decode", c.tsuid, err)
	}

	bps := 1
	if info.BitsPerComponent > 8 {
		bps = 2
	}
	output := make([]byte, info.Width*info.Height*info.Components*bps)

	nativeOpts := native.J2KDecodeOptions{Reduce: opts.Reduce, MaxQualityLayers: opts.MaxQualityLayers}

	if opts.Region != nil {
		w, h, comps, gotBps, err := native.J2KDecodeRegion(
			encoded, output, opts.Region.X0, opts.Region.Y0, opts.Region.X1, opts.Region.Y1, nativeOpts,
		)
		if err != nil {
			return nil, FrameInfo{}, fromNativeError("j2k_decode_region", c.tsuid, err)
		}
		return output[:w*h*comps*gotBps], FrameInfo{Width: w, Height: h, Components: comps, BitsPerSample: gotBps * 8}, nil
	}

	if c.useGPU && gpu.Available() {
		w, h, comps, err := gpu.J2KDecode(context.Background(), encoded, output)
		if err == nil {
			return output[:w*h*comps*bps], FrameInfo{Width: w, Height: h, Components: comps, BitsPerSample: bps * 8}, nil
		}
		// gpu.J2KDecode already falls back to CPU internally; reaching
		// here means even the CPU retry failed.
		return nil, FrameInfo{}, fromNativeError("j2k_decode", c.tsuid, err)
	}

	w, h, comps, gotBps, err := native.J2KDecode(encoded, output, nativeOpts)
	if err != nil {
		return nil, FrameInfo{}, fromNativeError("j2k_decode", c.tsuid, err)
	}
	return output[:w*h*comps*gotBps], FrameInfo{Width: w, Height: h, Components: comps, BitsPerSample: gotBps * 8}, nil
}

func (c *J2KCodec) Encode(pixels []byte, params EncodeParams) ([]byte, error) {
	if err := params.validateFor("j2k_encode", c.tsuid); err != nil {
		return nil, err
	}
	nativeParams := native.J2KEncodeParams{
		Lossless:         c.lossless,
		CompressionRatio: params.CompressionRatio,
		Quality:          float64(params.Quality),
		Format:           native.J2KCodestream,
	}
	out, err := native.J2KEncode(pixels, params.Width, params.Height, params.Components,
		params.BitsPerSample, params.Signed, nativeParams)
	if err != nil {
		return nil, fromNativeError("j2k_encode", c.tsuid, err)
	}
	return out, nil
}
