package mulaw_test

import (
	"fmt"

	"github.com/cwbudde/algo-sndutil/dsp/mulaw"
)

func ExampleEncode8() {
	codes := mulaw.Encode8([]float64{-1, -0.01, 0, 0.01, 1}, mulaw.DefaultMu)
	fmt.Println(codes)

	// Output:
	// [0 98 127 156 255]
}

func ExampleDecode() {
	enc := mulaw.Encode([]float64{0.25}, mulaw.DefaultMu)
	dec := mulaw.Decode(enc, mulaw.DefaultMu)
	fmt.Printf("%.3f -> %.6f\n", enc[0], dec[0])

	// Output:
	// 0.752 -> 0.250000
}
