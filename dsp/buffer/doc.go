// Package buffer holds helpers for caller-owned sample buffers: splitting
// and joining interleaved stereo, and sampling amplitude with its
// first difference at an index.
package buffer
