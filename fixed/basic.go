package fixed

// sqrtMaxIter bounds Newton iteration; convergence from Max takes ~40 steps
const sqrtMaxIter = 64

// expTerms is the number of Taylor series terms used by Exp
const expTerms = 12

// Sqrt returns the square root using Newton-Raphson, iterating until
// successive guesses differ by at most Eps. Non-positive input returns Zero.
// SaturatingSqrt is exact and faster; Sqrt is kept for results that must match
// the iterative formulation bit for bit.
func (a Q64) Sqrt() Q64 {
	if a <= 0 {
		return Zero
	}

	// Initial guess at or above the root keeps the iteration monotonic
	x := a
	if x < One {
		x = One
	}

	for i := 0; i < sqrtMaxIter; i++ {
		next := x.SaturatingAdd(a.Div(x)) >> 1
		if next.AbsDiff(x) <= Eps {
			return next
		}
		x = next
	}
	return x
}

// Powi returns a^n by repeated squaring; negative n yields the saturating reciprocal
func (a Q64) Powi(n int) Q64 {
	if n == 0 {
		return One
	}

	e := n
	if e < 0 {
		e = -e
	}

	result := One
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}

	if n < 0 {
		return result.SaturatingRecip()
	}
	return result
}

// Exp returns e^a from a truncated Taylor series.
// Accurate to Eps for |a| <= 1, degrading as |a| grows.
func (a Q64) Exp() Q64 {
	result := One
	term := One
	for i := int64(1); i <= expTerms; i++ {
		term = term.Mul(a.DivInt(i))
		result += term
	}
	return result
}

// HalfOf returns a * 0.5, saturating
func (a Q64) HalfOf() Q64 { return a.SaturatingMul(Half) }
