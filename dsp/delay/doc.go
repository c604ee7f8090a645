// Package delay provides fixed-size circular delay lines and a stereo
// feedback delay with cross-channel routing.
//
// Buffers are sized once at setup and never grow. Changing the delay time
// only moves the write offset relative to the read cursor. Parameter changes
// take effect on the next sample without smoothing, so abrupt changes can
// click.
//
// Neither type is safe for concurrent use.
package delay
