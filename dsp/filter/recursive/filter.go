package recursive

import "github.com/cwbudde/algo-sndutil/dsp/core"

// Mode selects which output the filter produces.
type Mode int

const (
	// ModeBypass returns the input unchanged. The integrator stages still
	// advance so switching to another mode later is seamless.
	ModeBypass Mode = iota
	// ModeLowpass returns the second integrator stage.
	ModeLowpass
	// ModeHighpass returns the input minus the first integrator stage.
	ModeHighpass
	// ModeBandpass returns the difference of the two integrator stages.
	ModeBandpass
	// ModeResonantLowpass runs the independent two-pole resonant recurrence.
	ModeResonantLowpass
)

func (m Mode) String() string {
	switch m {
	case ModeBypass:
		return "bypass"
	case ModeLowpass:
		return "lowpass"
	case ModeHighpass:
		return "highpass"
	case ModeBandpass:
		return "bandpass"
	case ModeResonantLowpass:
		return "resonant_lowpass"
	default:
		return "unknown"
	}
}

// Filter is a stateful recursive filter. The zero value is not ready for
// the resonant mode; use New.
type Filter struct {
	// leaky integrator stages
	stage1 float64
	stage2 float64

	// resonant lowpass state and coefficients
	accumX float64
	accumY float64
	r      float64
	c      float64

	sampleRate float64
	cutoffHz   float64
	resonance  float64
}

// New constructs a filter with zeroed state and resonant coefficients
// derived from the configured cutoff, resonance and sample rate.
func New(opts ...Option) (*Filter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter{}
	if err := f.SetResonant(cfg.cutoffHz, cfg.resonance, cfg.SampleRate); err != nil {
		return nil, err
	}

	return f, nil
}

// SampleRate returns the sample rate used for resonant coefficients.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// CutoffHz returns the resonant-mode cutoff as configured (before clamping).
func (f *Filter) CutoffHz() float64 { return f.cutoffHz }

// Resonance returns the resonant-mode resonance factor.
func (f *Filter) Resonance() float64 { return f.resonance }

// Coefficients returns the current resonant coefficients.
func (f *Filter) Coefficients() (c, r float64) { return f.c, f.r }

// Process filters one sample.
//
// cutoff is the normalized integrator coefficient used by the basic modes and
// is limited to [0, 1]; a cutoff of 0 freezes the stages, which leaves
// highpass as a passthrough and lowpass/bandpass silent. The resonant mode
// ignores cutoff and uses the coefficients set by SetResonant.
func (f *Filter) Process(input, cutoff float64, mode Mode) float64 {
	if mode == ModeResonantLowpass {
		f.accumX += (input - f.accumY) * f.c
		f.accumY += f.accumX
		f.accumX *= f.r

		return f.accumY
	}

	cutoff = core.Clamp(cutoff, 0, 1)
	f.stage1 += cutoff * (input - f.stage1)
	f.stage2 += cutoff * (f.stage1 - f.stage2)

	switch mode {
	case ModeBypass:
		return input
	case ModeLowpass:
		return f.stage2
	case ModeHighpass:
		return input - f.stage1
	case ModeBandpass:
		return f.stage1 - f.stage2
	default:
		return 0
	}
}

// ProcessInPlace filters buf in place, continuing from the current state.
func (f *Filter) ProcessInPlace(buf []float64, cutoff float64, mode Mode) {
	for i := range buf {
		buf[i] = f.Process(buf[i], cutoff, mode)
	}
}

// ProcessReset clears all state, recomputes the resonant coefficients from
// the stored parameters and then filters buf in place.
func (f *Filter) ProcessReset(buf []float64, cutoff float64, mode Mode) {
	f.Reset()
	f.c, f.r = resonantCoefficients(f.cutoffHz, f.resonance, f.sampleRate)
	f.ProcessInPlace(buf, cutoff, mode)
}

// Reset clears both the integrator stages and the resonant state.
// Coefficients are kept.
func (f *Filter) Reset() {
	f.stage1 = 0
	f.stage2 = 0
	f.accumX = 0
	f.accumY = 0
}
