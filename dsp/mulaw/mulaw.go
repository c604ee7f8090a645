// Package mulaw implements continuous mu-law companding of float samples,
// as used to shape audio before 8-bit quantization (WaveNet style).
//
// Forward:  y = sign(x) * ln(1 + mu*|x|) / ln(1 + mu)
// Inverse:  x = sign(y) * (exp(|y| * ln(1 + mu)) - 1) / mu
//
// Inputs are clamped to [-1, 1] before either mapping. Encode and Decode
// must use the same mu to round-trip. All functions are pure.
package mulaw

import (
	"math"

	"github.com/cwbudde/algo-sndutil/dsp/core"
)

// DefaultMu is the conventional compression factor for 8-bit companding.
const DefaultMu = 255.0

// usable reports whether mu gives a well defined curve. For mu <= 0 both
// directions fall back to the identity, the limit of the curve as mu -> 0.
func usable(mu float64) bool {
	return mu > 0 && core.IsFinite(mu)
}

// EncodeSample compresses one sample.
func EncodeSample(x, mu float64) float64 {
	x = core.Clamp(x, -1, 1)
	if !usable(mu) {
		return x
	}
	return core.Sign(x) * math.Log1p(mu*math.Abs(x)) / math.Log1p(mu)
}

// DecodeSample expands one companded sample.
func DecodeSample(y, mu float64) float64 {
	y = core.Clamp(y, -1, 1)
	if !usable(mu) {
		return y
	}
	return core.Sign(y) * math.Expm1(math.Abs(y)*math.Log1p(mu)) / mu
}

// Encode returns a new slice with every sample compressed.
func Encode(samples []float64, mu float64) []float64 {
	return EncodeInto(nil, samples, mu)
}

// EncodeInto compresses src into dst, reusing dst's capacity, and returns
// the resized dst.
func EncodeInto(dst, src []float64, mu float64) []float64 {
	dst = core.EnsureLen(dst, len(src))
	for i, x := range src {
		dst[i] = EncodeSample(x, mu)
	}
	return dst
}

// Decode returns a new slice with every sample expanded.
func Decode(samples []float64, mu float64) []float64 {
	return DecodeInto(nil, samples, mu)
}

// DecodeInto expands src into dst, reusing dst's capacity, and returns
// the resized dst.
func DecodeInto(dst, src []float64, mu float64) []float64 {
	dst = core.EnsureLen(dst, len(src))
	for i, y := range src {
		dst[i] = DecodeSample(y, mu)
	}
	return dst
}

// Encode8 compresses samples and quantizes the result to bytes by mapping
// [-1, 1] onto [0, 255] and truncating. There is no dithering.
func Encode8(samples []float64, mu float64) []byte {
	out := make([]byte, len(samples))
	for i, x := range samples {
		out[i] = byte(core.MapRange(EncodeSample(x, mu), -1, 1, 0, 255, true))
	}
	return out
}

// Decode8 maps 8-bit codes from Encode8 back to [-1, 1] and expands them.
// Quantization is not undone, so the round trip is lossy.
func Decode8(codes []byte, mu float64) []float64 {
	out := make([]float64, len(codes))
	for i, c := range codes {
		out[i] = DecodeSample(core.MapRange(float64(c), 0, 255, -1, 1, false), mu)
	}
	return out
}
