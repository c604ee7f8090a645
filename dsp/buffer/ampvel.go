package buffer

// AmpVel returns the sample at i and its first difference buf[i]-buf[i-1].
// Indices without both neighbours (i < 1 or i >= len(buf)-1) yield
// (0, 0, false).
func AmpVel(buf []float64, i int) (amp, vel float64, ok bool) {
	if i < 1 || i >= len(buf)-1 {
		return 0, 0, false
	}

	return buf[i], buf[i] - buf[i-1], true
}

// Amp returns buf[i], or 0 when i is out of range.
func Amp(buf []float64, i int) float64 {
	if i < 0 || i >= len(buf) {
		return 0
	}

	return buf[i]
}
