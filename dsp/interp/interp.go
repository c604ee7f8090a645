package interp

import "math"

// Linear blends a toward b by t. t is not clamped, so values outside
// [0,1] extrapolate.
func Linear(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Stereo reads channel (0 = left, 1 = right) of an interleaved L,R buffer
// at the fractional frame position pos, interpolating linearly between
// frame floor(pos) and the next one. pos is clamped to >= 0 and both
// frame indices to the last complete frame. Returns 0 for a buffer without
// a complete frame or a channel other than 0 or 1.
func Stereo(buf []float64, pos float64, channel int) float64 {
	frames := len(buf) / 2
	if frames == 0 || channel < 0 || channel > 1 || math.IsNaN(pos) {
		return 0
	}

	pos = math.Max(pos, 0)
	last := frames - 1

	i0 := last
	if pos < float64(last) {
		i0 = int(pos)
	}

	i1 := min(i0+1, last)
	frac := pos - float64(i0)
	if i0 == last {
		frac = 0
	}

	return Linear(buf[2*i0+channel], buf[2*i1+channel], frac)
}
