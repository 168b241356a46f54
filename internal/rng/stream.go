// Package rng implements the deterministic random stream that drives all
// Fabrica generation. Every generator instance owns exactly one Stream;
// identical seeds and identical draw sequences produce identical output on
// every platform.
package rng

import (
	"math/bits"

	"github.com/spaolacci/murmur3"
)

// Stream is a seedable deterministic pseudorandom generator.
//
// The core is xoshiro256** with its state expanded from the seed via
// splitmix64, so any 64-bit seed (including 0) yields a well-mixed state.
// All state lives by value in the struct: Clone is a plain copy and the
// clone diverges from the original only through subsequent draws.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	s     [4]uint64
	draws uint64
}

// New returns a Stream seeded with the given value.
func New(seed uint64) *Stream {
	st := &Stream{}
	st.Seed(seed)
	return st
}

// Seed resets the stream state deterministically. The draw counter is
// reset as well.
func (st *Stream) Seed(seed uint64) {
	sm := seed
	for i := range st.s {
		st.s[i] = splitmix64(&sm)
	}
	st.draws = 0
}

// SeedString seeds the stream from an arbitrary string, hashed into the
// 64-bit seed space with murmur3.
func (st *Stream) SeedString(seed string) {
	st.Seed(murmur3.Sum64([]byte(seed)))
}

// Clone returns an independent copy of the stream. The copy starts at the
// original's current position; from that point the two advance separately.
func (st *Stream) Clone() *Stream {
	cp := *st
	return &cp
}

// Draws returns the number of draw operations performed since the last
// seed. Tests use it to assert that failed calls consumed no randomness.
func (st *Stream) Draws() uint64 { return st.draws }

// Uint64 returns the next raw 64-bit word and advances the state.
func (st *Stream) Uint64() uint64 {
	st.draws++
	result := bits.RotateLeft64(st.s[1]*5, 7) * 9

	t := st.s[1] << 17
	st.s[2] ^= st.s[0]
	st.s[3] ^= st.s[1]
	st.s[1] ^= st.s[2]
	st.s[0] ^= st.s[3]
	st.s[2] ^= t
	st.s[3] = bits.RotateLeft64(st.s[3], 45)

	return result
}

// IntN returns a uniformly distributed int in [0, n). It consumes exactly
// one draw regardless of n; the caller must ensure n > 0.
func (st *Stream) IntN(n int) int {
	// Fixed-cost bounded draw (multiply-shift). The bias for the pool
	// sizes used here is below 2^-32 and generation must never vary its
	// draw count based on outcome.
	hi, _ := bits.Mul64(st.Uint64(), uint64(n))
	return int(hi)
}

// Int64Range returns a uniformly distributed int64 in [min, max], both
// ends inclusive. min must not exceed max.
func (st *Stream) Int64Range(min, max int64) int64 {
	span := uint64(max) - uint64(min) // width-1; wraps correctly for negatives
	if span == ^uint64(0) {
		return int64(st.Uint64())
	}
	hi, _ := bits.Mul64(st.Uint64(), span+1)
	return min + int64(hi)
}

// Float64 returns a uniformly distributed float64 in [0, 1).
func (st *Stream) Float64() float64 {
	return float64(st.Uint64()>>11) / (1 << 53)
}

// Float64Range returns a uniformly distributed float64 in [min, max],
// both ends inclusive.
func (st *Stream) Float64Range(min, max float64) float64 {
	if min == max {
		st.Uint64() // keep the per-call draw count fixed
		return min
	}
	return min + unitClosed(st.Uint64())*(max-min)
}

// unitClosed maps a raw draw onto [0, 1] with both ends reachable.
func unitClosed(u uint64) float64 {
	return float64(u>>11) / ((1 << 53) - 1)
}

// Weighted returns an index into cumulative with probability proportional
// to each entry's weight. cumulative must be a strictly increasing
// cumulative-weight slice whose last element equals total; both are
// validated at provider registration time, never here.
func (st *Stream) Weighted(cumulative []uint64, total uint64) int {
	// Draw r in [1, total] and binary-search the first bucket >= r.
	r := 1 + st.Uint64()%total
	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumulative[mid] < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Fill fills dest with pseudorandom bytes, consuming one draw per eight
// bytes (rounded up).
func (st *Stream) Fill(dest []byte) {
	i := 0
	for ; i+8 <= len(dest); i += 8 {
		v := st.Uint64()
		for j := 0; j < 8; j++ {
			dest[i+j] = byte(v >> (8 * j))
		}
	}
	if i < len(dest) {
		v := st.Uint64()
		for j := 0; i < len(dest); i, j = i+1, j+1 {
			dest[i] = byte(v >> (8 * j))
		}
	}
}

// splitmix64 advances x and returns the next splitmix64 output. Used only
// for seeding.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
