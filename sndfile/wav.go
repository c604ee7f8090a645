package sndfile

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// SaveWAVStereo16 writes interleaved 16-bit stereo samples to path as a
// PCM WAV file.
func SaveWAVStereo16(samples []int16, sampleRate int, path string) error {
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	return saveWAV(data, 2, sampleRate, path)
}

// SaveWAVStereo converts an interleaved float stereo buffer to 16-bit PCM
// and writes it to path as a WAV file.
func SaveWAVStereo(stereo []float64, sampleRate int, path string) error {
	if len(stereo)%2 != 0 {
		return ErrOddStereoLength
	}

	data := make([]int, len(stereo))
	for i, v := range stereo {
		data[i] = int(ToInt16(v))
	}

	return saveWAV(data, 2, sampleRate, path)
}

func saveWAV(data []int, channels, sampleRate int, path string) (err error) {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if len(data)%channels != 0 {
		return ErrOddStereoLength
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sndfile: create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sndfile: close %s: %w", path, cerr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("sndfile: encode %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("sndfile: finalize %s: %w", path, err)
	}

	log().Debug("wav file saved", slog.String("path", path),
		slog.Int("frames", len(data)/channels), slog.Int("sample_rate", sampleRate))

	return nil
}

// LoadWAV decodes a PCM WAV file into interleaved float samples.
func LoadWAV(path string) (samples []float64, channels, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("sndfile: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrNotWAVFile, path)
	}

	scale, offset, err := intScale(int(dec.BitDepth))
	if err != nil {
		return nil, 0, 0, err
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("sndfile: decode %s: %w", path, err)
	}

	samples = make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = (float64(v) - offset) / scale
	}

	return samples, int(dec.NumChans), int(dec.SampleRate), nil
}

// intScale returns the divisor and offset that map decoded integer PCM
// of the given bit depth to [-1,1]. 8-bit WAV data is unsigned.
func intScale(bitDepth int) (scale, offset float64, err error) {
	switch bitDepth {
	case 8:
		return 128, 128, nil
	case 16:
		return 32768, 0, nil
	case 24:
		return 8388608, 0, nil
	case 32:
		return 2147483648, 0, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
