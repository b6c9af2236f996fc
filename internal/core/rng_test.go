package core

import "testing"

type fixedSource []float64

func (f *fixedSource) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestChanceBoundaries(t *testing.T) {
	src := &fixedSource{0.04, 0.05, 0.5}
	if !Chance(src, 0.05) {
		t.Fatal("0.04 should pass a 0.05 chance")
	}
	if Chance(src, 0.05) {
		t.Fatal("0.05 should not pass a 0.05 chance")
	}
	if Chance(src, 0) {
		t.Fatal("zero probability must never fire")
	}
	if len(*src) != 1 {
		t.Fatalf("zero probability should not consume a draw, %d left", len(*src))
	}
}

func TestBiasAndIntRange(t *testing.T) {
	src := &fixedSource{0.1, 0.9, 0, 0.999999, 0.5}
	if got := Bias(src); got != 1 {
		t.Fatalf("expected +1, got %d", got)
	}
	if got := Bias(src); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := IntRange(src, 20, 50); got != 20 {
		t.Fatalf("expected lower bound, got %d", got)
	}
	if got := IntRange(src, 20, 50); got != 49 {
		t.Fatalf("expected 49, got %d", got)
	}
	if got := IntRange(src, 40, 80); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
	if got := IntRange(src, 5, 5); got != 5 {
		t.Fatalf("empty range should return lo, got %d", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
	a.Seed(9)
	b.Seed(9)
	if a.Float64() != b.Float64() {
		t.Fatal("reseeding should restart the sequence")
	}
}
