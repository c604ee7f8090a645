package buffer

import "github.com/cwbudde/algo-sndutil/dsp/core"

// Deinterleave splits an interleaved L,R buffer into two new channel
// slices. A trailing half frame is dropped.
func Deinterleave(stereo []float64) (left, right []float64) {
	return DeinterleaveInto(nil, nil, stereo)
}

// DeinterleaveInto is Deinterleave writing into left and right, reusing
// their capacity when it is large enough.
func DeinterleaveInto(left, right, stereo []float64) ([]float64, []float64) {
	frames := len(stereo) / 2
	left = core.EnsureLen(left, frames)
	right = core.EnsureLen(right, frames)

	for i := 0; i < frames; i++ {
		left[i] = stereo[2*i]
		right[i] = stereo[2*i+1]
	}

	return left, right
}

// Interleave joins two channel slices into one L,R buffer. The result
// has as many frames as the shorter input.
func Interleave(left, right []float64) []float64 {
	return InterleaveInto(nil, left, right)
}

// InterleaveInto is Interleave writing into dst, reusing its capacity when
// it is large enough.
func InterleaveInto(dst, left, right []float64) []float64 {
	frames := min(len(left), len(right))
	dst = core.EnsureLen(dst, 2*frames)

	for i := 0; i < frames; i++ {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}

	return dst
}
