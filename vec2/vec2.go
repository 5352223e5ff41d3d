// Package vec2 provides a 2D vector over fixed.Q64.
//
// Methods prefixed Saturating clamp each component instead of wrapping; the
// metric helpers (Dot, Length, Distance, Lerp...) are saturating throughout so
// large coordinates degrade to Max rather than flip sign.
package vec2

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/cordic"
	"github.com/lixenwraith/qmath/fixed"
)

// Vec2 is a 2D vector in Q32.32 fixed-point
type Vec2 struct {
	X, Y fixed.Q64
}

var (
	Zero   = Splat(fixed.Zero)
	One    = Splat(fixed.One)
	NegOne = Splat(fixed.NegOne)
	Min    = Splat(fixed.Min)
	Max    = Splat(fixed.Max)

	// Unit axes
	AxisX    = Vec2{fixed.One, fixed.Zero}
	AxisY    = Vec2{fixed.Zero, fixed.One}
	NegAxisX = Vec2{fixed.NegOne, fixed.Zero}
	NegAxisY = Vec2{fixed.Zero, fixed.NegOne}

	Eps   = Splat(fixed.Eps)
	Delta = Splat(fixed.Delta)
)

func New(x, y fixed.Q64) Vec2 { return Vec2{x, y} }
func Splat(v fixed.Q64) Vec2   { return Vec2{v, v} }

// --- Wrapping component-wise ---

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X.Mul(o.X), v.Y.Mul(o.Y)} }
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X.Div(o.X), v.Y.Div(o.Y)} }
func (v Vec2) Neg() Vec2       { return Vec2{-v.X, -v.Y} }

// Scale multiplies both components by s
func (v Vec2) Scale(s fixed.Q64) Vec2 { return Vec2{v.X.Mul(s), v.Y.Mul(s)} }

// --- Saturating component-wise ---

func (v Vec2) SaturatingAdd(o Vec2) Vec2 {
	return Vec2{v.X.SaturatingAdd(o.X), v.Y.SaturatingAdd(o.Y)}
}

func (v Vec2) SaturatingSub(o Vec2) Vec2 {
	return Vec2{v.X.SaturatingSub(o.X), v.Y.SaturatingSub(o.Y)}
}

func (v Vec2) SaturatingMul(o Vec2) Vec2 {
	return Vec2{v.X.SaturatingMul(o.X), v.Y.SaturatingMul(o.Y)}
}

func (v Vec2) SaturatingDiv(o Vec2) Vec2 {
	return Vec2{v.X.SaturatingDiv(o.X), v.Y.SaturatingDiv(o.Y)}
}

func (v Vec2) SaturatingScale(s fixed.Q64) Vec2 {
	return Vec2{v.X.SaturatingMul(s), v.Y.SaturatingMul(s)}
}

func (v Vec2) SaturatingDivScalar(s fixed.Q64) Vec2 {
	return Vec2{v.X.SaturatingDiv(s), v.Y.SaturatingDiv(s)}
}

// --- Element-wise ---

func (v Vec2) Min(o Vec2) Vec2 { return Vec2{v.X.Min(o.X), v.Y.Min(o.Y)} }
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{v.X.Max(o.X), v.Y.Max(o.Y)} }

// Clamp limits each component to [lo, hi]; panics if any lo component exceeds hi
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	if lo.X > hi.X || lo.Y > hi.Y {
		panic(fmt.Sprintf("vec2: clamp bounds inverted: %v > %v", lo, hi))
	}
	return v.Max(lo).Min(hi)
}

func (v Vec2) MinElement() fixed.Q64 { return v.X.Min(v.Y) }
func (v Vec2) MaxElement() fixed.Q64 { return v.X.Max(v.Y) }

func (v Vec2) Abs() Vec2   { return Vec2{v.X.Abs(), v.Y.Abs()} }
func (v Vec2) Round() Vec2 { return Vec2{v.X.Round(), v.Y.Round()} }
func (v Vec2) Floor() Vec2 { return Vec2{v.X.Floor(), v.Y.Floor()} }
func (v Vec2) Ceil() Vec2  { return Vec2{v.X.Ceil(), v.Y.Ceil()} }
func (v Vec2) Trunc() Vec2 { return Vec2{v.X.Trunc(), v.Y.Trunc()} }
func (v Vec2) Frac() Vec2  { return v.Sub(v.Floor()) }

// --- Metric ---

// Dot returns x1*x2 + y1*y2, saturating once on the exact sum
func (v Vec2) Dot(o Vec2) fixed.Q64 {
	return v.X.SaturatingMulAdd(o.X, v.Y.SaturatingMul(o.Y))
}

// Cross returns the perpendicular dot product x1*y2 - y1*x2 (2D determinant)
func (v Vec2) Cross(o Vec2) fixed.Q64 {
	return v.X.SaturatingMul(o.Y).SaturatingSub(v.Y.SaturatingMul(o.X))
}

func (v Vec2) LengthSquared() fixed.Q64 { return v.Dot(v) }
func (v Vec2) Length() fixed.Q64        { return v.Dot(v).SaturatingSqrt() }

// LengthRecip returns 1/Length; Max for the zero vector
func (v Vec2) LengthRecip() fixed.Q64 { return v.Length().SaturatingRecip() }

func (v Vec2) Distance(o Vec2) fixed.Q64        { return v.SaturatingSub(o).Length() }
func (v Vec2) DistanceSquared(o Vec2) fixed.Q64 { return v.SaturatingSub(o).LengthSquared() }

// Normalize returns v scaled to unit length.
// The zero vector has no direction and saturates to Zero components.
func (v Vec2) Normalize() Vec2 {
	return v.SaturatingScale(v.LengthRecip())
}

// IsNormalized reports whether |v|² is within Eps of one
func (v Vec2) IsNormalized() bool {
	return v.LengthSquared().SaturatingSub(fixed.One).SaturatingAbs() <= fixed.Eps
}

// AbsDiffEq reports whether every component differs from o by at most tol
func (v Vec2) AbsDiffEq(o Vec2, tol fixed.Q64) bool {
	d := v.SaturatingSub(o)
	return d.X.SaturatingAbs() <= tol && d.Y.SaturatingAbs() <= tol
}

// Lerp interpolates from v (s = 0) to o (s = 1); s outside [0, 1] extrapolates
func (v Vec2) Lerp(o Vec2, s fixed.Q64) Vec2 {
	return v.SaturatingAdd(o.SaturatingSub(v).SaturatingScale(s))
}

func (v Vec2) Midpoint(o Vec2) Vec2 {
	return v.SaturatingAdd(o).SaturatingScale(fixed.Half)
}

// --- Angular ---

// FromAngle returns the unit vector (cos θ, sin θ)
func FromAngle(theta fixed.Q64) Vec2 {
	s, c := cordic.SinCos(theta)
	return Vec2{c, s}
}

// ToAngle returns the angle of v in [-π, π]; the zero vector yields cordic.ErrDomain
func (v Vec2) ToAngle() (fixed.Q64, error) {
	return cordic.Atan2(v.Y, v.X)
}

// AngleBetween returns the signed angle from v to o in [-π, π], positive
// counter-clockwise. Neither vector may be zero.
func (v Vec2) AngleBetween(o Vec2) (fixed.Q64, error) {
	hyp := v.LengthSquared().SaturatingMul(o.LengthSquared()).SaturatingSqrt()
	if hyp == 0 {
		return 0, errors.Wrapf(cordic.ErrDomain, "angle between %v and %v", v, o)
	}

	cos := v.Dot(o).SaturatingDiv(hyp).Clamp(fixed.NegOne, fixed.One)
	p, err := cordic.Acos(cos)
	if err != nil {
		return 0, err
	}

	// Candidate sign is not reliable near ±1; the cross product decides it.
	// Antiparallel vectors have zero cross and keep +π.
	angle := p.Second.Abs()
	if v.Cross(o) < 0 {
		angle = -angle
	}
	return angle, nil
}

// Perp returns v rotated 90° counter-clockwise
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Rotate returns o rotated by the angle of v. For unit v this is a pure
// rotation; otherwise o is also scaled by |v|.
func (v Vec2) Rotate(o Vec2) Vec2 {
	return Vec2{
		X: v.X.SaturatingMul(o.X).SaturatingSub(v.Y.SaturatingMul(o.Y)),
		Y: v.Y.SaturatingMul(o.X).SaturatingAdd(v.X.SaturatingMul(o.Y)),
	}
}

// RotateBy rotates v by theta radians
func (v Vec2) RotateBy(theta fixed.Q64) Vec2 {
	return FromAngle(theta).Rotate(v)
}

func (v Vec2) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
