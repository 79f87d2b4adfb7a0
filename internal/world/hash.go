package world

import "math"

// Mixing constants. The coordinate multipliers spread neighbouring tiles far
// apart before the avalanche; the golden-ratio constant folds in the seed.
const (
	mulA   = 374761393
	mulB   = 668265263
	golden = 0x9E3779B97F4A7C15
	mix1   = 0xBF58476D1CE4E5B9
	mix2   = 0x94D049BB133111EB

	// unitScale maps the top 53 bits of a hash onto [0,1).
	unitScale = 1.0 / (1 << 53)
)

// Hasher is a seeded, stateless 2D hash. The zero value hashes with seed 0.
type Hasher struct {
	seed int64
	salt uint64
}

// NewHasher returns a hasher for the given seed.
func NewHasher(seed int64) Hasher {
	return Hasher{seed: seed, salt: uint64(seed) * golden}
}

// Seed returns the seed the hasher was built with.
func (h Hasher) Seed() int64 {
	return h.seed
}

// At hashes the coordinate pair to a value in [0,1).
// Real-valued inputs are accepted so that callers can derive independent
// channels by scaling tile coordinates.
func (h Hasher) At(a, b float64) float64 {
	v := fold(a*mulA+b*mulB) + h.salt + golden
	return float64(mix64(v)>>11) * unitScale
}

// fold truncates a real to a 64-bit lattice value. NaN and infinities fold to 0.
func fold(f float64) uint64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(math.Floor(f), 1<<63)
	return uint64(int64(f))
}

// mix64 is the SplitMix64 finalizer.
func mix64(v uint64) uint64 {
	v = (v ^ (v >> 30)) * mix1
	v = (v ^ (v >> 27)) * mix2
	return v ^ (v >> 31)
}
