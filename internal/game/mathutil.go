package game

import (
	"golang.org/x/exp/rand"

	"ringgrid/internal/grid"
)

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// NewRand returns a deterministic generator for seed. Nearby seeds give
// unrelated streams.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(splitmix64(seed)))
}

// wrapRing applies the snake's ring boundary: leaving the playable band on the
// inside re-enters on the outermost ring and vice versa.
func wrapRing(r, minRing int) int {
	if r < minRing {
		return grid.Rings - 1
	}
	if r >= grid.Rings {
		return minRing
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
