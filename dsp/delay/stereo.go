package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sndutil/dsp/core"
)

const (
	defaultStereoDelaySamples = 1
	defaultStereoFeedback     = 0.05
	defaultStereoCross        = 0.0
	defaultStereoVolume       = 1.0
)

// Frame is one stereo sample pair.
type Frame struct {
	L, R float64
}

// StereoDelay is a two-channel feedback delay sharing one cursor across
// both channels. Feedback can be routed to the opposite channel with Cross.
type StereoDelay struct {
	sampleRate float64
	left       *Line
	right      *Line

	volume       float64
	delaySamples int
	feedback     float64
	cross        float64
}

// NewStereo allocates a stereo delay holding bufferSeconds of audio.
// See Setup for the parameter defaults.
func NewStereo(sampleRate, bufferSeconds float64) (*StereoDelay, error) {
	d := &StereoDelay{volume: defaultStereoVolume}
	if err := d.Setup(sampleRate, bufferSeconds); err != nil {
		return nil, err
	}
	return d, nil
}

// Setup (re)allocates both channel buffers with round(bufferSeconds*sampleRate)
// zeroed samples and moves the cursor to 0. It also restores the delay time
// (1 sample), feedback (0.05) and cross (0) defaults; volume is kept.
// This is the only way to reset the delay.
func (d *StereoDelay) Setup(sampleRate, bufferSeconds float64) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("delay: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if !core.IsFinite(bufferSeconds) || bufferSeconds <= 0 {
		return fmt.Errorf("delay: buffer length must be > 0 and finite: %f", bufferSeconds)
	}

	size := int(math.Round(bufferSeconds * sampleRate))
	left, err := NewLine(size)
	if err != nil {
		return err
	}
	right, err := NewLine(size)
	if err != nil {
		return err
	}

	d.sampleRate = sampleRate
	d.left = left
	d.right = right
	d.feedback = defaultStereoFeedback
	d.cross = defaultStereoCross
	d.delaySamples = d.clampDelay(defaultStereoDelaySamples)
	return nil
}

// SetVolume sets the output gain applied to the delayed signal.
func (d *StereoDelay) SetVolume(volume float64) error {
	if !core.IsFinite(volume) {
		return fmt.Errorf("delay: volume must be finite: %v", volume)
	}
	d.volume = volume
	return nil
}

// SetDelayTime sets the delay in seconds. It is truncated to whole samples
// and limited to [0, Len-1].
func (d *StereoDelay) SetDelayTime(seconds float64) error {
	if !core.IsFinite(seconds) {
		return fmt.Errorf("delay: delay time must be finite: %v", seconds)
	}
	d.delaySamples = d.clampDelay(int(seconds * d.sampleRate))
	return nil
}

// SetDelaySamples sets the delay in samples, limited to [0, Len-1].
func (d *StereoDelay) SetDelaySamples(samples int) {
	d.delaySamples = d.clampDelay(samples)
}

// SetFeedback sets the feedback gain. Values with magnitude >= 1 are accepted
// and will ring up; keeping the loop stable is the caller's job.
func (d *StereoDelay) SetFeedback(feedback float64) error {
	if !core.IsFinite(feedback) {
		return fmt.Errorf("delay: feedback must be finite: %v", feedback)
	}
	d.feedback = feedback
	return nil
}

// SetCross sets the cross-channel feedback blend, clamped to [0, 1].
// 0 keeps each channel's feedback on itself, 1 swaps the channels.
func (d *StereoDelay) SetCross(cross float64) error {
	if !core.IsFinite(cross) {
		return fmt.Errorf("delay: cross must be finite: %v", cross)
	}
	d.cross = core.Clamp(cross, 0, 1)
	return nil
}

// Process advances the delay by one stereo sample and returns the delayed
// output scaled by volume. The caller adds it into its own mix.
//
// The oldest sample is read at the cursor first. The new input plus feedback
// is then written delaySamples ahead of the cursor, and the cursor advances.
func (d *StereoDelay) Process(inL, inR float64) Frame {
	l := d.left.Tap(0)
	r := d.right.Tap(0)

	out := Frame{L: l * d.volume, R: r * d.volume}

	d.left.Store(d.delaySamples, inL+d.feedback*(l*(1-d.cross)+r*d.cross))
	d.right.Store(d.delaySamples, inR+d.feedback*(l*d.cross+r*(1-d.cross)))

	d.left.Advance()
	d.right.Advance()

	return out
}

// ProcessAdd runs Process and accumulates the result into out.
// out is not cleared; zero it first for a wet-only signal.
func (d *StereoDelay) ProcessAdd(inL, inR float64, out *Frame) {
	f := d.Process(inL, inR)
	out.L += f.L
	out.R += f.R
}

// ProcessInterleaved runs every L,R frame of in through the delay and adds
// the delayed signal into out. in must have even length and out must be at
// least as long as in. in and out may be the same slice.
func (d *StereoDelay) ProcessInterleaved(in, out []float64) error {
	if len(in)%2 != 0 {
		return fmt.Errorf("delay: interleaved input length must be even: %d", len(in))
	}
	if len(out) < len(in) {
		return fmt.Errorf("delay: output length %d shorter than input %d", len(out), len(in))
	}

	for i := 0; i < len(in); i += 2 {
		f := d.Process(in[i], in[i+1])
		out[i] += f.L
		out[i+1] += f.R
	}
	return nil
}

// Len returns the per-channel buffer length in samples.
func (d *StereoDelay) Len() int { return d.left.Len() }

// SampleRate returns sample rate in Hz.
func (d *StereoDelay) SampleRate() float64 { return d.sampleRate }

// Volume returns the output gain.
func (d *StereoDelay) Volume() float64 { return d.volume }

// DelaySamples returns the current delay in samples.
func (d *StereoDelay) DelaySamples() int { return d.delaySamples }

// Feedback returns the feedback gain.
func (d *StereoDelay) Feedback() float64 { return d.feedback }

// Cross returns the cross-channel feedback blend in [0, 1].
func (d *StereoDelay) Cross() float64 { return d.cross }

func (d *StereoDelay) clampDelay(samples int) int {
	return max(0, min(samples, d.left.Len()-1))
}
