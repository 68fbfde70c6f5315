package service

import (
	"math"
	"testing"
)

func TestCosine_Identity(t *testing.T) {
	v := []float64{0.3, 0.5, 0.1, 0.7}
	if got := Cosine(v, v); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected 1 for identical vectors, got %v", got)
	}
}

func TestCosine_Opposite(t *testing.T) {
	a := []float64{0.2, -0.4, 0.6}
	b := []float64{-0.2, 0.4, -0.6}
	if got := Cosine(a, b); math.Abs(got+1) > 1e-9 {
		t.Fatalf("expected -1 for opposite vectors, got %v", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	if got := Cosine(a, b); got != 0 {
		t.Fatalf("expected 0 for orthogonal vectors, got %v", got)
	}
}

func TestCosine_Symmetry(t *testing.T) {
	a := []float64{0.1, 0.9, 0.4}
	b := []float64{0.8, 0.2, 0.5}
	if Cosine(a, b) != Cosine(b, a) {
		t.Fatalf("expected symmetric similarity")
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	if got := Cosine([]float64{1, 2}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("expected 0 for mismatched dimensions, got %v", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	if got := Cosine([]float64{0, 0, 0}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("expected 0 against zero vector, got %v", got)
	}
	if got := Cosine([]float64{0, 0}, []float64{0, 0}); got != 0 {
		t.Fatalf("expected 0 for both zero vectors, got %v", got)
	}
}
