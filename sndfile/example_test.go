package sndfile_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-sndutil/sndfile"
)

func ExampleSaveRawMono16() {
	dir, err := os.MkdirTemp("", "sndfile")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.raw")
	if err := sndfile.SaveRawMono16([]float64{0.5, -0.5, 0}, path); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(sndfile.Size(path))
	fmt.Printf("%.4f\n", sndfile.LoadRawMono16(path))

	// Output:
	// 6
	// [0.5000 -0.5000 0.0000]
}
