package sndfile

import (
	"math"

	"github.com/cwbudde/algo-sndutil/dsp/core"
)

const (
	readScale  = 32768.0
	writeScale = 32767.0
)

// FromInt16 converts one PCM sample to float in [-1,1].
func FromInt16(v int16) float64 {
	return core.Clamp(float64(v)/readScale, -1, 1)
}

// ToInt16 converts a float sample to PCM, clamping to [-1,1] and
// truncating toward zero.
func ToInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}

	return int16(core.Clamp(v, -1, 1) * writeScale)
}
