package embedding

import (
	"math"
	"testing"
)

func TestCosine_ClampedToUnitInterval(t *testing.T) {
	if got := Cosine([]float64{1, 0}, []float64{1, 0}); got != 1 {
		t.Fatalf("identical unit vectors must score 1, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{-1, 0}); got != 0 {
		t.Fatalf("negative dot products clamp to 0, got %v", got)
	}
	// Accumulated float error can push the dot product past 1.
	big := []float64{0.6, 0.8}
	scaled := []float64{0.6000000001, 0.8000000001}
	if got := Cosine(big, scaled); got > 1 {
		t.Fatalf("cosine must never exceed 1, got %v", got)
	}
}

func TestCosine_EmptyOrMismatched(t *testing.T) {
	if got := Cosine(nil, []float64{1}); got != 0 {
		t.Fatalf("empty vector must score 0, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{1}); got != 0 {
		t.Fatalf("mismatched dimensions must score 0, got %v", got)
	}
	if got := Cosine(Zero(4), Zero(4)); got != 0 {
		t.Fatalf("zero vectors must score 0, got %v", got)
	}
}

func TestCosine_PartialAlignment(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}
	got := Cosine(a, b)
	if math.Abs(got-math.Sqrt2/2) > 1e-12 {
		t.Fatalf("expected ~%v, got %v", math.Sqrt2/2, got)
	}
}

func TestZero(t *testing.T) {
	v := Zero(3)
	if len(v) != 3 {
		t.Fatalf("expected length 3, got %d", len(v))
	}
	for _, x := range v {
		if x != 0 {
			t.Fatalf("expected all zeros, got %v", v)
		}
	}
}
