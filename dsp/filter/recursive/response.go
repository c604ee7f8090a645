package recursive

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// Response returns the magnitude response of the filter for the given mode
// and normalized cutoff, evaluated on fftSize/2+1 bins from DC to Nyquist.
//
// The response is measured from the impulse response of a reset copy of f,
// so the receiver's running state is not touched. fftSize must be a power
// of two >= 2 and long enough for the impulse response to decay.
func (f *Filter) Response(cutoff float64, mode Mode, fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("recursive: fft size must be a power of two >= 2: %d", fftSize)
	}

	probe := *f
	probe.Reset()

	in := make([]complex128, fftSize)
	in[0] = complex(probe.Process(1, cutoff, mode), 0)

	for i := 1; i < fftSize; i++ {
		in[i] = complex(probe.Process(0, cutoff, mode), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("recursive: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("recursive: fft forward: %w", err)
	}

	mag := make([]float64, fftSize/2+1)
	for i := range mag {
		mag[i] = cmplx.Abs(out[i])
	}

	return mag, nil
}
