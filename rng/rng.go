// Package rng provides a deterministic MT19937 generator yielding fixed.Q64 values.
//
// The sequence depends only on the seed, so simulations that draw from a Rng
// replay identically on every platform.
package rng

import (
	"github.com/lixenwraith/qmath/fixed"
)

// MT19937 parameters
const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// DefaultSeed is the reference seed of MT19937
const DefaultSeed uint32 = 5489

// Rng is a Mersenne Twister; not safe for concurrent use
type Rng struct {
	state [n]uint32
	index int
}

func New(seed uint32) *Rng {
	r := &Rng{}
	r.Seed(seed)
	return r
}

// Seed resets the generator to the sequence for seed
func (r *Rng) Seed(seed uint32) {
	r.state[0] = seed
	for i := 1; i < n; i++ {
		prev := r.state[i-1]
		r.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	r.index = n
}

// Next returns the next tempered 32-bit output
func (r *Rng) Next() uint32 {
	if r.index >= n {
		r.twist()
	}

	y := r.state[r.index]
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	r.index++
	return y
}

// NextUnit returns a uniformly distributed value in [0, 1).
// The 32 random bits become the fractional part directly.
func (r *Rng) NextUnit() fixed.Q64 {
	return fixed.FromBits(int64(r.Next()))
}

// Range returns a value in [lo, hi)
func (r *Rng) Range(lo, hi fixed.Q64) fixed.Q64 {
	if hi <= lo {
		return lo
	}
	return lo + hi.Sub(lo).Mul(r.NextUnit())
}

// Angle returns a uniformly distributed angle in [0, 2π)
func (r *Rng) Angle() fixed.Q64 {
	return fixed.TwoPi.Mul(r.NextUnit())
}

// Intn returns a value in [0, count); 0 if count <= 0
func (r *Rng) Intn(count int) int {
	if count <= 0 {
		return 0
	}
	return int(uint64(r.Next()) % uint64(count))
}

func (r *Rng) twist() {
	for i := 0; i < n; i++ {
		x := (r.state[i] & upperMask) | (r.state[(i+1)%n] & lowerMask)
		xa := x >> 1
		if x&1 != 0 {
			xa ^= matrixA
		}
		r.state[i] = r.state[(i+m)%n] ^ xa
	}
	r.index = 0
}
