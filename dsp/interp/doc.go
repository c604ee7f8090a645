// Package interp provides linear interpolation between scalar values and
// between frames of an interleaved stereo buffer.
package interp
