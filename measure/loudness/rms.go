package loudness

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RMS returns sqrt(mean(x^2)) over buf. An empty buffer yields 0.
func RMS(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(buf, buf) / float64(len(buf)))
}

// Peak returns the largest absolute sample value, 0 for an empty buffer.
func Peak(buf []float64) float64 {
	return vecmath.MaxAbs(buf)
}

// LimitRMS scales buf in place so its RMS does not exceed ceiling and
// returns the gain that was applied. Buffers already at or below the
// ceiling are left untouched and report a gain of 1.
//
// A negative ceiling is treated as 0, which silences any non-silent buffer.
// The gain falls back to 0 instead of dividing by a zero level, so limiting
// can never amplify.
func LimitRMS(buf []float64, ceiling float64) float64 {
	ceiling = math.Max(ceiling, 0)

	level := RMS(buf)
	if !(level > ceiling) {
		return 1
	}

	gain := 0.0
	if level > 0 {
		gain = ceiling / level
	}

	vecmath.ScaleBlockInPlace(buf, gain)

	return gain
}
