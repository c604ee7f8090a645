package sndfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-sndutil/dsp/buffer"
)

// ReadRawMono16 decodes headerless 16-bit little-endian PCM from r.
// A trailing odd byte is ignored.
func ReadRawMono16(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sndfile: read raw: %w", err)
	}

	out := make([]float64, len(data)/2)
	for i := range out {
		out[i] = FromInt16(int16(binary.LittleEndian.Uint16(data[2*i:])))
	}

	return out, nil
}

// WriteRawMono16 encodes buf to w as headerless 16-bit little-endian PCM.
func WriteRawMono16(w io.Writer, buf []float64) error {
	bw := bufio.NewWriter(w)
	var frame [2]byte

	for _, v := range buf {
		binary.LittleEndian.PutUint16(frame[:], uint16(ToInt16(v)))
		if _, err := bw.Write(frame[:]); err != nil {
			return fmt.Errorf("sndfile: write raw: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sndfile: write raw: %w", err)
	}

	return nil
}

// LoadRawMono16 loads a raw mono file. A missing, empty or unreadable
// file yields an empty, non-nil buffer and a logged diagnostic.
func LoadRawMono16(path string) []float64 {
	size := Size(path)
	if size == 0 {
		log().Warn("raw file missing or empty", slog.String("path", path))
		return []float64{}
	}

	f, err := os.Open(path)
	if err != nil {
		log().Warn("raw file unreadable", slog.String("path", path), slog.Any("err", err))
		return []float64{}
	}
	defer f.Close()

	out, err := ReadRawMono16(f)
	if err != nil {
		log().Warn("raw file unreadable", slog.String("path", path), slog.Any("err", err))
		return []float64{}
	}

	log().Debug("raw file loaded", slog.String("path", path), slog.Int("samples", len(out)))

	return out
}

// SaveRawMono16 writes buf to path as a raw mono file, replacing any
// existing file.
func SaveRawMono16(buf []float64, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sndfile: create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sndfile: close %s: %w", path, cerr)
		}
	}()

	return WriteRawMono16(f, buf)
}

// SaveRawStereo16Split deinterleaves an L,R buffer and writes each channel
// to its own raw mono file.
func SaveRawStereo16Split(stereo []float64, pathL, pathR string) error {
	if len(stereo)%2 != 0 {
		return ErrOddStereoLength
	}

	left, right := buffer.Deinterleave(stereo)

	if err := SaveRawMono16(left, pathL); err != nil {
		return err
	}

	return SaveRawMono16(right, pathR)
}
