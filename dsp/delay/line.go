package delay

import (
	"fmt"

	"github.com/cwbudde/algo-sndutil/dsp/core"
)

// Line is a fixed-length circular buffer addressed relative to a cursor.
type Line struct {
	buffer []float64
	cursor int
}

// NewLine returns a zero-filled line of fixed size.
func NewLine(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay: line size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (l *Line) Len() int {
	return len(l.buffer)
}

// Cursor returns the current cursor index in [0, Len).
func (l *Line) Cursor() int {
	return l.cursor
}

// Tap reads the sample offset positions after the cursor, wrapping modulo Len.
// Negative offsets read behind the cursor.
func (l *Line) Tap(offset int) float64 {
	return l.buffer[l.index(offset)]
}

// Store writes v offset positions after the cursor, wrapping modulo Len.
func (l *Line) Store(offset int, v float64) {
	l.buffer[l.index(offset)] = v
}

// Advance moves the cursor forward by one sample.
func (l *Line) Advance() {
	l.cursor++
	if l.cursor >= len(l.buffer) {
		l.cursor = 0
	}
}

// Reset clears line state.
func (l *Line) Reset() {
	core.Zero(l.buffer)
	l.cursor = 0
}

func (l *Line) index(offset int) int {
	size := len(l.buffer)
	i := (l.cursor + offset) % size
	if i < 0 {
		i += size
	}
	return i
}
