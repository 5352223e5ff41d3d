// Package fixed implements Q64, a signed Q32.32 fixed-point number.
//
// Q64 stores the value in an int64 with an implied binary point between bit 31
// and bit 32. Every operation is integer-only, so results are bit-identical on
// all platforms. The plain operators (Add, Mul, Div...) wrap on overflow like
// Go integers; the Saturating family clamps to Min/Max instead.
package fixed

import (
	"math"
)

// Q32.32 layout
const (
	FracBits = 32
	IntBits  = 32
	Scale    = 1 << FracBits
	Mask     = Scale - 1
)

// Q64 is a Q32.32 signed fixed-point number
type Q64 int64

// Named values, rounded to nearest at 32 fractional bits
const (
	Zero    Q64 = 0
	One     Q64 = Scale
	NegOne  Q64 = -Scale
	Half    Q64 = Scale >> 1
	NegHalf Q64 = -(Scale >> 1)
	Two     Q64 = 2 * Scale
	NegTwo  Q64 = -2 * Scale

	Min Q64 = math.MinInt64
	Max Q64 = math.MaxInt64

	// Delta is the smallest positive value (one ulp, 2^-32)
	Delta    Q64 = 1
	NegDelta Q64 = -1

	// Eps is the comparison tolerance used by the trigonometric kernel (~1e-8)
	Eps Q64 = 43

	Pi       Q64 = 0x3243f6a89
	NegPi    Q64 = -Pi
	TwoPi    Q64 = 0x6487ed511
	NegTwoPi Q64 = -TwoPi
	Tau      Q64 = TwoPi
	FracPi2  Q64 = 0x1921fb544
	FracPi3  Q64 = 0x10c152383
	FracPi4  Q64 = 0xc90fdaa2
	FracPi6  Q64 = 0x860a91c1
	FracPi8  Q64 = 0x6487ed51

	// ThreeFracPi2 is 3π/2
	ThreeFracPi2 Q64 = 0x4b65f1fcd

	E            Q64 = 0x2b7e15163
	Sqrt2        Q64 = 0x16a09e668
	Sqrt3        Q64 = 0x1bb67ae86
	Ln2          Q64 = 0xb17217f8
	Ln10         Q64 = 0x24d763777
	FracOneSqrt2 Q64 = 0xb504f334
)

// --- Construction ---

func FromBits(b int64) Q64   { return Q64(b) }
func (a Q64) Bits() int64    { return int64(a) }
func FromInt(i int64) Q64    { return Q64(i << FracBits) }
func (a Q64) Int() int64     { return int64(a) >> FracBits }
func (a Q64) Float() float64 { return float64(a) / Scale }

// FromFloat converts a float64, rounding to nearest and clamping to the representable range.
// Tooling and tests only; the kernel never touches floating point.
func FromFloat(f float64) Q64 {
	v := math.Round(f * Scale)
	if v >= math.MaxInt64 {
		return Max
	}
	if v <= math.MinInt64 {
		return Min
	}
	return Q64(v)
}

// FromRaw reinterprets a raw two's-complement pattern with fracBits fractional
// bits as Q32.32. Narrowing discards the extra fractional bits (rounds toward -inf),
// widening shifts left and wraps.
func FromRaw(bits int64, fracBits uint) Q64 {
	if fracBits >= FracBits {
		return Q64(bits >> (fracBits - FracBits))
	}
	return Q64(bits << (FracBits - fracBits))
}

// --- Ordering ---

func (a Q64) Cmp(b Q64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (a Q64) Min(b Q64) Q64 {
	if b < a {
		return b
	}
	return a
}

func (a Q64) Max(b Q64) Q64 {
	if b > a {
		return b
	}
	return a
}

// Clamp restricts a to [lo, hi]; panics if lo > hi
func (a Q64) Clamp(lo, hi Q64) Q64 {
	if lo > hi {
		panic("fixed: Clamp with lo > hi")
	}
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// Signum returns NegOne, Zero or One
func (a Q64) Signum() Q64 {
	if a < 0 {
		return NegOne
	}
	if a > 0 {
		return One
	}
	return Zero
}

// IsNegative and IsPositive exist mostly for readability at call sites comparing against zero
func (a Q64) IsNegative() bool { return a < 0 }
func (a Q64) IsPositive() bool { return a > 0 }

// --- Rounding ---

func (a Q64) Floor() Q64 { return a &^ Mask }

func (a Q64) Ceil() Q64 { return (a + Mask) &^ Mask }

// Round rounds half-way cases away from zero
func (a Q64) Round() Q64 {
	if a < 0 {
		return -((-a + Half) &^ Mask)
	}
	return (a + Half) &^ Mask
}

// Trunc rounds toward zero
func (a Q64) Trunc() Q64 {
	if a < 0 {
		return -((-a) &^ Mask)
	}
	return a &^ Mask
}

// Frac returns a - Floor(a), always in [0, 1)
func (a Q64) Frac() Q64 { return a & Mask }
