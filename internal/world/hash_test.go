package world

import (
	"math"
	"testing"
)

func TestHashRange(t *testing.T) {
	h := NewHasher(1337)

	inputs := []struct{ a, b float64 }{
		{0, 0},
		{1, 1},
		{-1, -1},
		{3.13, -1.91},
		{1e9, -1e9},
		{math.MaxFloat64, math.MaxFloat64},
		{-math.MaxFloat64, 7},
		{math.Inf(1), 0},
		{math.Inf(-1), math.Inf(1)},
		{math.NaN(), 5},
		{math.SmallestNonzeroFloat64, -0.0},
	}

	for _, in := range inputs {
		v := h.At(in.a, in.b)
		if v < 0 || v >= 1 {
			t.Errorf("At(%v, %v) = %v, want value in [0,1)", in.a, in.b, v)
		}
	}

	for y := -200; y < 200; y++ {
		for x := -200; x < 200; x++ {
			v := h.At(float64(x), float64(y))
			if v < 0 || v >= 1 {
				t.Fatalf("At(%d, %d) = %v, want value in [0,1)", x, y, v)
			}
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	h1 := NewHasher(1337)
	h2 := NewHasher(1337)

	for y := -50; y < 50; y++ {
		for x := -50; x < 50; x++ {
			a, b := float64(x)*3.13, float64(y)*1.91
			if h1.At(a, b) != h2.At(a, b) {
				t.Fatalf("hash mismatch at (%v,%v)", a, b)
			}
			if h1.At(a, b) != h1.At(a, b) {
				t.Fatalf("repeated call differs at (%v,%v)", a, b)
			}
		}
	}
}

func TestHashGoldenValues(t *testing.T) {
	// Pinned outputs: a change here means every existing world changes.
	h := NewHasher(1337)
	if got := h.At(0, 0); math.Abs(got-0.5382668079723482) > 1e-15 {
		t.Errorf("At(0,0) seed 1337 = %.16f, want 0.5382668079723482", got)
	}
	if got := h.Seed(); got != 1337 {
		t.Errorf("Seed() = %d, want 1337", got)
	}
}

func TestHashUniformity(t *testing.T) {
	h := NewHasher(42)

	const buckets = 10
	const samples = 100000
	var counts [buckets]int

	i := 0
	for y := 0; i < samples; y++ {
		for x := 0; x < 500 && i < samples; x++ {
			counts[int(h.At(float64(x), float64(y))*buckets)]++
			i++
		}
	}

	expected := samples / buckets
	for b, n := range counts {
		if n < expected*9/10 || n > expected*11/10 {
			t.Errorf("bucket %d has %d samples, want within 10%% of %d", b, n, expected)
		}
	}
}

func TestHashDifferentSeeds(t *testing.T) {
	h1 := NewHasher(1337)
	h2 := NewHasher(1338)

	same := 0
	total := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if int(h1.At(float64(x), float64(y))*4) == int(h2.At(float64(x), float64(y))*4) {
				same++
			}
			total++
		}
	}

	// Uncorrelated seeds agree on a quarter of 4-way picks; allow generous slack.
	if rate := float64(same) / float64(total); rate > 0.4 {
		t.Errorf("seeds 1337 and 1338 agree on %.2f of samples, expected ~0.25", rate)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   float64
		want uint64
	}{
		{0, 0},
		{1.9, 1},
		{-0.5, math.MaxUint64}, // floor(-0.5) = -1
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		if got := fold(tt.in); got != tt.want {
			t.Errorf("fold(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
