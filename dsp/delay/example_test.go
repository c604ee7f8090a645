package delay_test

import (
	"fmt"

	"github.com/cwbudde/algo-sndutil/dsp/delay"
)

func ExampleStereoDelay_Process() {
	d, err := delay.NewStereo(1000, 0.01)
	if err != nil {
		panic(err)
	}

	d.SetDelaySamples(2)
	_ = d.SetFeedback(0.5)
	_ = d.SetCross(1)

	for i := range 5 {
		in := 0.0
		if i == 0 {
			in = 1
		}
		f := d.Process(in, 0)
		fmt.Printf("%d: %.2f %.2f\n", i, f.L, f.R)
	}

	// Output:
	// 0: 0.00 0.00
	// 1: 0.00 0.00
	// 2: 1.00 0.00
	// 3: 0.00 0.00
	// 4: 0.00 0.50
}
