package recursive

import (
	"fmt"

	"github.com/cwbudde/algo-sndutil/dsp/core"
)

const (
	defaultCutoffHz  = 1000.0
	defaultResonance = 1.0
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	core.ProcessorConfig
	cutoffHz  float64
	resonance float64
}

func defaultConfig() config {
	return config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		cutoffHz:        defaultCutoffHz,
		resonance:       defaultResonance,
	}
}

// WithSampleRate sets the sample rate used by the resonant mode. Must be finite and > 0.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(sampleRate) || sampleRate <= 0 {
			return fmt.Errorf("recursive: sample rate must be > 0 and finite: %f", sampleRate)
		}

		cfg.SampleRate = sampleRate

		return nil
	}
}

// WithCutoffHz sets the resonant-mode cutoff in Hz. It is clamped to
// [50, sampleRate/2] when coefficients are derived.
func WithCutoffHz(cutoffHz float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(cutoffHz) {
			return fmt.Errorf("recursive: cutoff must be finite: %v", cutoffHz)
		}

		cfg.cutoffHz = cutoffHz

		return nil
	}
}

// WithResonance sets the resonant-mode resonance factor. Must be finite and > 0.
func WithResonance(resonance float64) Option {
	return func(cfg *config) error {
		if err := validateResonance(resonance); err != nil {
			return err
		}

		cfg.resonance = resonance

		return nil
	}
}

func validateResonance(resonance float64) error {
	if !core.IsFinite(resonance) || resonance <= 0 {
		return fmt.Errorf("recursive: resonance must be > 0 and finite: %v", resonance)
	}

	return nil
}
