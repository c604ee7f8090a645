package recursive_test

import (
	"fmt"

	"github.com/cwbudde/algo-sndutil/dsp/filter/recursive"
)

func ExampleFilter_Process() {
	f, err := recursive.New()
	if err != nil {
		panic(err)
	}

	for range 4 {
		fmt.Printf("%.4f\n", f.Process(1, 0.5, recursive.ModeLowpass))
	}

	// Output:
	// 0.2500
	// 0.5000
	// 0.6875
	// 0.8125
}

func ExampleFilter_ProcessReset() {
	f, err := recursive.New(
		recursive.WithSampleRate(48000),
		recursive.WithCutoffHz(2000),
		recursive.WithResonance(0.7),
	)
	if err != nil {
		panic(err)
	}

	buf := []float64{1, 0, 0, 0}
	f.ProcessReset(buf, 0, recursive.ModeResonantLowpass)

	fmt.Printf("len=%d first>0=%t\n", len(buf), buf[0] > 0)

	// Output:
	// len=4 first>0=true
}
