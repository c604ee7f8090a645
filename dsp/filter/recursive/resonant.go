package recursive

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sndutil/dsp/core"
)

const minResonantCutoffHz = 50.0

// SetResonant stores the resonant-mode parameters and recomputes the
// coefficients. It is idempotent: calling it again with the same arguments
// leaves the filter unchanged. State is not cleared.
//
// On error the previous parameters and coefficients are kept.
func (f *Filter) SetResonant(cutoffHz, resonance, sampleRate float64) error {
	c, r, err := ResonantCoefficients(cutoffHz, resonance, sampleRate)
	if err != nil {
		return err
	}

	f.cutoffHz = cutoffHz
	f.resonance = resonance
	f.sampleRate = sampleRate
	f.c = c
	f.r = r

	return nil
}

// ResonantCoefficients derives the resonant-lowpass coefficients.
//
// The cutoff is clamped to [50, sampleRate/2]. With z = cos(2*pi*fc/fs):
//
//	c = 2 - 2z
//	r = (sqrt(2)*sqrt(-(z-1)^3) + resonance*(z-1)) / (resonance*(z-1))
//
// resonance must be > 0; zero would divide by zero.
func ResonantCoefficients(cutoffHz, resonance, sampleRate float64) (c, r float64, err error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return 0, 0, fmt.Errorf("recursive: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if !core.IsFinite(cutoffHz) {
		return 0, 0, fmt.Errorf("recursive: cutoff must be finite: %v", cutoffHz)
	}

	if err := validateResonance(resonance); err != nil {
		return 0, 0, err
	}

	c, r = resonantCoefficients(cutoffHz, resonance, sampleRate)

	return c, r, nil
}

// resonantCoefficients assumes validated inputs. A cutoff so low relative to
// the sample rate that cos() rounds to 1 yields c=r=0 (silence) instead of NaN.
func resonantCoefficients(cutoffHz, resonance, sampleRate float64) (c, r float64) {
	cutoffHz = math.Min(math.Max(cutoffHz, minResonantCutoffHz), sampleRate/2)

	z := math.Cos(2 * math.Pi * cutoffHz / sampleRate)
	zm1 := z - 1

	den := resonance * zm1
	if den == 0 {
		return 0, 0
	}

	c = 2 - 2*z
	r = (math.Sqrt2*math.Sqrt(-zm1*zm1*zm1) + den) / den

	if !core.IsFinite(r) {
		return 0, 0
	}

	return c, r
}
