// Package cordic computes trigonometric functions of fixed.Q64 values with the
// CORDIC rotation algorithm.
//
// Every function runs exactly Iterations steps of shifts, additions and
// fixed-point multiplications against a static rotation table, so results are
// bit-identical across platforms and execution time does not depend on the
// input. Functions are pure and safe for concurrent use.
//
// The inverse functions return a Pair of candidate angles in [-π, π]; Atan2
// shows how to pick one from the sign of the operands.
package cordic

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/fixed"
)

// ErrDomain reports an argument outside the function's domain
var ErrDomain = errors.New("cordic: argument out of domain")

// Pair holds the two angles an inverse function cannot tell apart
type Pair struct {
	First  fixed.Q64
	Second fixed.Q64
}

// Nearest returns the candidate closer to zero: the principal value of Asin
// and Atan
func (p Pair) Nearest() fixed.Q64 {
	if p.First.SaturatingAbs() <= p.Second.SaturatingAbs() {
		return p.First
	}
	return p.Second
}

// --- Rotation mode ---

// reduce maps theta to [-π/2, π/2] and returns the signed gain that restores the
// original quadrant: cos(θ) = -cos(θ-π), sin(θ) = -sin(θ-π)
func reduce(theta fixed.Q64) (fixed.Q64, fixed.Q64) {
	factor := Gain()

	a := theta.Rem(fixed.TwoPi)
	if a < 0 {
		a += fixed.TwoPi
	}
	if a > fixed.FracPi2 && a < fixed.ThreeFracPi2 {
		factor = -factor
		if a < fixed.Pi {
			a += fixed.Pi
		} else {
			a -= fixed.Pi
		}
	}
	if a >= fixed.ThreeFracPi2 {
		a -= fixed.TwoPi
	}
	return a, factor
}

// SinCos returns sin(theta) and cos(theta), theta in radians
func SinCos(theta fixed.Q64) (sin, cos fixed.Q64) {
	remain, factor := reduce(theta)

	x, y := fixed.One, fixed.Zero
	for k := 0; k < Iterations; k++ {
		s := uint(k)
		if remain > 0 {
			// Counter-clockwise
			x, y = x-y.Shr(s), x.Shr(s)+y
			remain -= Angle(k)
		} else {
			// Clockwise
			x, y = x+y.Shr(s), y-x.Shr(s)
			remain += Angle(k)
		}
	}

	// Gain correction deferred to a single multiplication
	return y.Mul(factor), x.Mul(factor)
}

func Sin(theta fixed.Q64) fixed.Q64 {
	s, _ := SinCos(theta)
	return s
}

func Cos(theta fixed.Q64) fixed.Q64 {
	_, c := SinCos(theta)
	return c
}

// Tan returns sin/cos, saturating to Max or Min when |cos| <= Eps.
// The saturated sign follows the quotient: approaching π/2 from below gives Max,
// from above gives Min. This differs from taking the sign of sin alone, which
// would saturate both sides of -π/2 to Min.
func Tan(theta fixed.Q64) fixed.Q64 {
	s, c := SinCos(theta)
	if c.Abs() <= fixed.Eps {
		if (s > 0) == (c >= 0) {
			return fixed.Max
		}
		return fixed.Min
	}
	return s.SaturatingDiv(c)
}

// --- Vectoring mode ---

// Asin returns both angles in [-π, π] whose sine is v.
// v outside [-1, 1] yields ErrDomain.
func Asin(v fixed.Q64) (Pair, error) {
	if v > fixed.One || v < fixed.NegOne {
		return Pair{}, errors.Wrapf(ErrDomain, "asin(%v): sine must be in [-1, 1]", v)
	}

	x, y, z := fixed.One, fixed.Zero, fixed.Zero
	for k := 0; k < Iterations; k++ {
		s := uint(k)
		var xv, yv fixed.Q64
		if (x > 0 && v > y) || (x < 0 && v < y) {
			xv, yv = x-y.Shr(s), x.Shr(s)+y
			z += Angle(k)
		} else {
			xv, yv = x+y.Shr(s), y-x.Shr(s)
			z -= Angle(k)
		}
		// Comparison uses absolute coordinates, so renormalize every step
		c := StepCos(k)
		x, y = xv.Mul(c), yv.Mul(c)
	}

	if z > 0 {
		return Pair{z, fixed.Pi - z}, nil
	}
	return Pair{-z - fixed.Pi, z}, nil
}

// Acos returns the angles ±acos(v).
// v outside [-1, 1] yields ErrDomain.
func Acos(v fixed.Q64) (Pair, error) {
	if v > fixed.One || v < fixed.NegOne {
		return Pair{}, errors.Wrapf(ErrDomain, "acos(%v): cosine must be in [-1, 1]", v)
	}

	x, y, z := fixed.Zero, fixed.One, fixed.FracPi2
	for k := 0; k < Iterations; k++ {
		s := uint(k)
		var xv, yv fixed.Q64
		if (y > 0 && v < x) || (y < 0 && v > x) {
			xv, yv = x-y.Shr(s), x.Shr(s)+y
			z += Angle(k)
		} else {
			xv, yv = x+y.Shr(s), y-x.Shr(s)
			z -= Angle(k)
		}
		c := StepCos(k)
		x, y = xv.Mul(c), yv.Mul(c)
	}

	// Near v = -1 the walk can overshoot π
	if z > fixed.Pi {
		z -= fixed.TwoPi
	}
	return Pair{-z, z}, nil
}

// Atan returns the two angles in [-π, π] whose tangent is v, one π apart
func Atan(v fixed.Q64) Pair {
	// The step condition only converges from the positive side;
	// atan is odd, so run on |v| and restore the sign
	neg := v < 0
	if neg {
		v = v.SaturatingNeg()
	}

	x, y, z := fixed.One, fixed.Zero, fixed.Zero
	for k := 0; k < Iterations; k++ {
		s := uint(k)
		var xv, yv fixed.Q64
		if x > 0 && v > y.SaturatingDiv(x) {
			xv, yv = x-y.Shr(s), x.Shr(s)+y
			z += Angle(k)
		} else {
			xv, yv = x+y.Shr(s), y-x.Shr(s)
			z -= Angle(k)
		}
		c := StepCos(k)
		x, y = xv.Mul(c), yv.Mul(c)
	}

	if neg {
		z = -z
	}
	if z > 0 {
		return Pair{z - fixed.Pi, z}
	}
	return Pair{z, z + fixed.Pi}
}

// Atan2 returns the angle of the vector (x, y) in [-π, π].
// The zero vector has no direction and yields ErrDomain.
func Atan2(y, x fixed.Q64) (fixed.Q64, error) {
	if y == 0 && x == 0 {
		return 0, errors.Wrap(ErrDomain, "atan2(0, 0): direction of zero vector")
	}
	ratio := fixed.Max
	if x != 0 {
		ratio = y.SaturatingDiv(x)
	}

	p := Atan(ratio)
	if ratio == 0 {
		// |y/x| below one ulp: the sign of y no longer picks the half-plane
		if x > 0 {
			return p.Nearest(), nil
		}
		if y < 0 {
			return fixed.NegPi, nil
		}
		return fixed.Pi, nil
	}
	if y < 0 {
		return p.First, nil
	}
	return p.Second, nil
}
