// Package recursive provides a cheap per-sample recursive filter with
// lowpass, highpass, bandpass and resonant-lowpass outputs.
//
// The basic modes share a cascade of two leaky integrators (Paul Kellett's
// one-pole design): the first stage tracks the input, the second stage tracks
// the first. Lowpass, highpass and bandpass are read from the stage values.
// The cutoff for these modes is a normalized smoothing coefficient in (0, 1],
// not a frequency; callers that think in Hz map it themselves.
//
// ModeResonantLowpass is a separate two-pole recurrence with its own state
// and coefficients derived from a cutoff in Hz, a resonance factor and the
// sample rate. Coefficients are only recomputed by [Filter.SetResonant] and
// [Filter.ProcessReset], never per sample.
//
// A Filter is not safe for concurrent use.
package recursive
