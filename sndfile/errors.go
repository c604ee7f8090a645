package sndfile

import "errors"

var (
	ErrNotWAVFile          = errors.New("sndfile: not a valid WAV file")
	ErrUnsupportedBitDepth = errors.New("sndfile: unsupported bit depth")
	ErrInvalidSampleRate   = errors.New("sndfile: sample rate must be > 0")
	ErrOddStereoLength     = errors.New("sndfile: interleaved stereo buffer has odd length")
)
