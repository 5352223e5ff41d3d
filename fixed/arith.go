package fixed

import (
	"math/bits"
)

// --- Wrapping arithmetic ---

func (a Q64) Add(b Q64) Q64 { return a + b }
func (a Q64) Sub(b Q64) Q64 { return a - b }
func (a Q64) Neg() Q64      { return -a }

// MulInt and DivInt scale by a plain integer; DivInt truncates toward zero
func (a Q64) MulInt(n int64) Q64 { return a * Q64(n) }
func (a Q64) DivInt(n int64) Q64 { return a / Q64(n) }

// Shr and Shl move the binary point: a * 2^-k and a * 2^k
func (a Q64) Shr(k uint) Q64 { return a >> k }
func (a Q64) Shl(k uint) Q64 { return a << k }

// Abs wraps on Min like integer negation: Min.Abs() == Min
func (a Q64) Abs() Q64 {
	if a < 0 {
		return -a
	}
	return a
}

// AbsDiff returns |a - b| without intermediate overflow
func (a Q64) AbsDiff(b Q64) Q64 {
	if a < b {
		return Q64(uint64(b) - uint64(a))
	}
	return Q64(uint64(a) - uint64(b))
}

// Mul returns the product rounded toward -inf, wrapping on overflow
func (a Q64) Mul(b Q64) Q64 {
	hi, lo := mul128(int64(a), int64(b))
	// Q32.32 * Q32.32 = Q64.64, keep bits 32..95
	return Q64(hi<<32 | lo>>32)
}

// Div returns the quotient truncated toward zero, wrapping on overflow.
// Panics on division by zero, like integer division.
func (a Q64) Div(b Q64) Q64 {
	if b == 0 {
		panic("fixed: division by zero")
	}
	q, neg, _ := div128(a, b)
	if neg {
		return Q64(-int64(q))
	}
	return Q64(q)
}

// Rem returns the remainder of the raw division, with the sign of the dividend
func (a Q64) Rem(b Q64) Q64 { return a % b }

// --- Saturating arithmetic ---

func (a Q64) SaturatingAdd(b Q64) Q64 {
	s := a + b
	// Overflow iff operands share a sign that the sum does not
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		if a < 0 {
			return Min
		}
		return Max
	}
	return s
}

func (a Q64) SaturatingSub(b Q64) Q64 {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		if a < 0 {
			return Min
		}
		return Max
	}
	return d
}

func (a Q64) SaturatingNeg() Q64 {
	if a == Min {
		return Max
	}
	return -a
}

func (a Q64) SaturatingAbs() Q64 {
	if a < 0 {
		return a.SaturatingNeg()
	}
	return a
}

func (a Q64) SaturatingMul(b Q64) Q64 {
	hi, lo := mul128(int64(a), int64(b))
	// Result fits iff bits 95..127 of the product are all equal
	if top := int64(hi) >> 31; top != 0 && top != -1 {
		if int64(hi) < 0 {
			return Min
		}
		return Max
	}
	return Q64(hi<<32 | lo>>32)
}

// SaturatingMulAdd returns a*b + c with a single saturation of the exact result
func (a Q64) SaturatingMulAdd(b, c Q64) Q64 {
	hi, lo := mul128(int64(a), int64(b))

	// Arithmetic shift of the 128-bit product by 32
	shHi := int64(hi) >> 32
	shLo := hi<<32 | lo>>32

	sumLo, carry := bits.Add64(shLo, uint64(c), 0)
	sumHi := shHi + int64(carry)
	if c < 0 {
		sumHi--
	}

	if sumHi != int64(sumLo)>>63 {
		if sumHi < 0 {
			return Min
		}
		return Max
	}
	return Q64(sumLo)
}

// SaturatingDiv clamps overflow; division by zero yields Max, Min or Zero by the sign of a
func (a Q64) SaturatingDiv(b Q64) Q64 {
	if b == 0 {
		switch {
		case a > 0:
			return Max
		case a < 0:
			return Min
		}
		return Zero
	}
	q, neg, overflow := div128(a, b)
	if overflow {
		if neg {
			return Min
		}
		return Max
	}
	if neg {
		return Q64(-int64(q))
	}
	return Q64(q)
}

func (a Q64) SaturatingRecip() Q64 { return One.SaturatingDiv(a) }

// SaturatingSqrt returns floor(sqrt(a)) exactly; negative input yields Zero
func (a Q64) SaturatingSqrt() Q64 {
	if a <= 0 {
		return Zero
	}
	// sqrt(a * 2^32) in raw units
	ua := uint64(a)
	return Q64(isqrt128(ua>>32, ua<<32))
}

// --- 128-bit helpers ---

// mul128 returns the signed 128-bit product as (hi, lo)
func mul128(a, b int64) (hi, lo uint64) {
	hi, lo = bits.Mul64(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return hi, lo
}

// div128 computes |a| * 2^32 / |b| truncated.
// q holds the low 64 bits of the magnitude; overflow reports that the signed result does not fit.
func div128(a, b Q64) (q uint64, neg bool, overflow bool) {
	neg = (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Reduce hi first so Div64 never panics; the dropped high quotient word only matters for overflow
	overflow = hi >= ub
	q, _ = bits.Div64(hi%ub, lo, ub)

	if q > 1<<63-1 {
		// -2^63 is representable
		if !(neg && q == 1<<63) {
			overflow = true
		}
	}
	return q, neg, overflow
}

// isqrt128 returns floor(sqrt(hi:lo)), valid while the root fits in 64 bits
func isqrt128(hi, lo uint64) uint64 {
	if hi == 0 && lo == 0 {
		return 0
	}
	n := bits.Len64(lo)
	if hi != 0 {
		n = 64 + bits.Len64(hi)
	}

	// Start above the root; Newton then decreases monotonically
	g := uint64(1) << ((n + 1) / 2)
	for {
		q, _ := bits.Div64(hi, lo, g)
		next := (g + q) >> 1
		if next >= g {
			return g
		}
		g = next
	}
}
