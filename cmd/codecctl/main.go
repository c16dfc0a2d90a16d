// Command codecctl is a small introspection CLI over the native codec
// core: report the linked library's version, feature mask, SIMD mask,
// and what transfer syntaxes the registry currently resolves.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/radxcodec/codeccore/codeccore"
	"github.com/radxcodec/codeccore/codecs"
	"github.com/radxcodec/codeccore/gpu"
	"github.com/radxcodec/codeccore/native"
)

var featureNames = []struct {
	bit  int32
	name string
}{
	{native.FeatureJPEG, "jpeg"},
	{native.FeatureJ2K, "j2k"},
	{native.FeatureHTJ2K, "htj2k"},
	{native.FeatureJLS, "jls"},
	{native.FeatureVideo, "video"},
	{native.FeatureRLE, "rle"},
	{native.FeatureDeflate, "deflate"},
	{native.FeatureGPU, "gpu"},
}

var transferSyntaxes = []string{
	codecs.TransferSyntaxJPEGBaselineProcess1,
	codecs.TransferSyntaxJPEGBaselineProcess2,
	codecs.TransferSyntaxJPEG2000Lossless,
	codecs.TransferSyntaxJPEG2000Lossy,
	codecs.TransferSyntaxJPEGLSLossless,
	codecs.TransferSyntaxJPEGLSNearLossless,
	codecs.TransferSyntaxRLELossless,
	codecs.TransferSyntaxDeflateExplicitVRLE,
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := codeccore.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "codecctl: init failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("version:  %d\n", native.Version())

	features := native.Features()
	fmt.Print("features: ")
	printSetBits(features)

	fmt.Print("simd:     ")
	printSIMD(native.SIMDFeatures())

	fmt.Printf("gpu:      available=%v\n", gpu.Available())

	fmt.Println("registry:")
	reg := codeccore.Registry()
	for _, tsuid := range transferSyntaxes {
		info, ok := reg.GetCodecInfo(tsuid)
		if !ok {
			fmt.Printf("  %-28s (unregistered)\n", tsuid)
			continue
		}
		fmt.Printf("  %-28s priority=%-4d origin=%v\n", tsuid, info.Priority, info.Origin)
	}
}

func printSetBits(mask int32) {
	first := true
	for _, f := range featureNames {
		if mask&f.bit != 0 {
			if !first {
				fmt.Print(",")
			}
			fmt.Print(f.name)
			first = false
		}
	}
	if first {
		fmt.Print("(none)")
	}
	fmt.Println()
}

func printSIMD(mask int32) {
	names := []struct {
		bit  int32
		name string
	}{
		{native.SIMDSSE2, "sse2"},
		{native.SIMDSSE41, "sse4.1"},
		{native.SIMDSSE42, "sse4.2"},
		{native.SIMDAVX, "avx"},
		{native.SIMDAVX2, "avx2"},
		{native.SIMDAVX512F, "avx512f"},
		{native.SIMDNEON, "neon"},
	}
	first := true
	for _, n := range names {
		if mask&n.bit != 0 {
			if !first {
				fmt.Print(",")
			}
			fmt.Print(n.name)
			first = false
		}
	}
	if first {
		fmt.Print("(none)")
	}
	fmt.Println()
}
