package loudness

import "math"

// Meter accumulates per-channel RMS and peak over a stream of blocks.
// Stereo input is interleaved L,R. Not safe for concurrent use.
type Meter struct {
	channels int

	sumSquares []float64
	peaks      []float64
	frames     int64

	// carries a sample of an incomplete stereo frame into the next block
	pending    float64
	hasPending bool
}

// NewMeter creates a meter with the given options.
func NewMeter(opts ...MeterOption) *Meter {
	cfg := ApplyMeterOptions(opts...)

	return &Meter{
		channels:   cfg.Channels,
		sumSquares: make([]float64, cfg.Channels),
		peaks:      make([]float64, cfg.Channels),
	}
}

// Channels returns the configured channel count.
func (m *Meter) Channels() int { return m.channels }

// Frames returns the number of complete frames seen since the last Reset.
func (m *Meter) Frames() int64 { return m.frames }

// ProcessBlock accumulates a block of interleaved samples. Blocks do not
// need to end on a frame boundary.
func (m *Meter) ProcessBlock(block []float64) {
	for _, x := range block {
		if m.channels == 1 {
			m.add(0, x)
			m.frames++
			continue
		}

		if !m.hasPending {
			m.pending = x
			m.hasPending = true
			continue
		}

		m.add(0, m.pending)
		m.add(1, x)
		m.hasPending = false
		m.frames++
	}
}

func (m *Meter) add(ch int, x float64) {
	m.sumSquares[ch] += x * x

	if a := math.Abs(x); a > m.peaks[ch] {
		m.peaks[ch] = a
	}
}

// RMS returns the per-channel RMS so far. All zero before any frame.
func (m *Meter) RMS() []float64 {
	out := make([]float64, m.channels)
	if m.frames == 0 {
		return out
	}

	for ch := range out {
		out[ch] = math.Sqrt(m.sumSquares[ch] / float64(m.frames))
	}

	return out
}

// Peaks returns the per-channel absolute peak so far.
func (m *Meter) Peaks() []float64 {
	return append([]float64(nil), m.peaks...)
}

// Reset clears all accumulated statistics.
func (m *Meter) Reset() {
	for ch := range m.sumSquares {
		m.sumSquares[ch] = 0
		m.peaks[ch] = 0
	}

	m.frames = 0
	m.pending = 0
	m.hasPending = false
}
