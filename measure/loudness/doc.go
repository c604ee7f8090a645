// Package loudness measures signal level by root-mean-square and limits
// buffers to an RMS ceiling.
//
// The block functions work on whole buffers and use algo-vecmath kernels.
// Meter accumulates the same statistics across successive blocks of mono or
// interleaved stereo audio.
package loudness
