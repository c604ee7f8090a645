package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{3.5, 1},
		{-0.25, -1},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Fatalf("Sign(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Fatalf("Lerp = %v, want 2.5", got)
	}
	if got := Lerp(-1, 1, 1); got != 1 {
		t.Fatalf("Lerp end = %v, want 1", got)
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		clamp bool
		want  float64
	}{
		{name: "low edge", value: -1, want: 0},
		{name: "high edge", value: 1, want: 255},
		{name: "middle", value: 0, want: 127.5},
		{name: "unclamped", value: 2, want: 382.5},
		{name: "clamped", value: 2, clamp: true, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRange(tt.value, -1, 1, 0, 255, tt.clamp)
			if !NearlyEqual(got, tt.want, 1e-12) {
				t.Fatalf("MapRange(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if got := MapRange(5, 1, 1, 3, 9, false); got != 3 {
		t.Fatalf("degenerate range = %v, want 3", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) {
		t.Fatal("1 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("NaN/Inf must not be finite")
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-35); got != 0 {
		t.Fatalf("FlushDenormals(1e-35) = %v, want 0", got)
	}
	if got := FlushDenormals(0.5); got != 0.5 {
		t.Fatalf("FlushDenormals(0.5) = %v, want 0.5", got)
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestVolumeLinearToExp(t *testing.T) {
	if got := VolumeLinearToExp(0); !NearlyEqual(got, 0.001, 1e-12) {
		t.Fatalf("VolumeLinearToExp(0) = %v, want 0.001", got)
	}
	// exp(6.908) is within 0.01% of 1000.
	if got := VolumeLinearToExp(1); !NearlyEqual(got, 1, 1e-3) {
		t.Fatalf("VolumeLinearToExp(1) = %v, want ~1", got)
	}
	if VolumeLinearToExp(-3) != VolumeLinearToExp(0) || VolumeLinearToExp(7) != VolumeLinearToExp(1) {
		t.Fatal("out-of-range positions must be clamped")
	}

	prev := VolumeLinearToExp(0)
	for i := 1; i <= 10; i++ {
		cur := VolumeLinearToExp(float64(i) / 10)
		if cur <= prev {
			t.Fatalf("curve not increasing at step %d", i)
		}
		prev = cur
	}
}
