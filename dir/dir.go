// Package dir models a 2D heading as an angle normalized to [0, 2π),
// counter-clockwise from the positive X axis.
package dir

import (
	"fmt"

	"github.com/lixenwraith/qmath/fixed"
	"github.com/lixenwraith/qmath/vec2"
)

// Dir is a direction; the zero value points along +X
type Dir struct {
	angle fixed.Q64
}

// New wraps an angle already in [0, 2π); panics otherwise.
// Use FromAngle for arbitrary input.
func New(angle fixed.Q64) Dir {
	if angle < 0 || angle >= fixed.TwoPi {
		panic(fmt.Sprintf("dir: angle %v outside [0, 2π)", angle))
	}
	return Dir{angle: angle}
}

// FromAngle normalizes any angle into [0, 2π)
func FromAngle(angle fixed.Q64) Dir {
	a := angle.Rem(fixed.TwoPi)
	if a < 0 {
		a += fixed.TwoPi
	}
	return New(a)
}

// FromVec returns the heading of v; the zero vector yields cordic.ErrDomain
func FromVec(v vec2.Vec2) (Dir, error) {
	a, err := v.ToAngle()
	if err != nil {
		return Dir{}, err
	}
	return FromAngle(a), nil
}

func (d Dir) Angle() fixed.Q64 { return d.angle }

// ToVec returns the unit vector of d
func (d Dir) ToVec() vec2.Vec2 { return vec2.FromAngle(d.angle) }

// Rotate returns d turned by angle radians
func (d Dir) Rotate(angle fixed.Q64) Dir {
	return FromAngle(d.angle + angle)
}

// RotateDir returns d turned by the angle of o
func (d Dir) RotateDir(o Dir) Dir {
	return FromAngle(d.angle + o.angle)
}

// RotateVec rotates v by the angle of d
func (d Dir) RotateVec(v vec2.Vec2) vec2.Vec2 {
	return d.ToVec().Rotate(v)
}

// ProjectionOf returns the signed length of v along d
func (d Dir) ProjectionOf(v vec2.Vec2) fixed.Q64 {
	return d.ToVec().Dot(v)
}

// Neg mirrors d across the X axis
func (d Dir) Neg() Dir { return FromAngle(-d.angle) }

// Opposite returns d turned by π
func (d Dir) Opposite() Dir { return FromAngle(d.angle + fixed.Pi) }

func (d Dir) String() string { return fmt.Sprintf("dir(%v)", d.angle) }

// MarshalText encodes the angle as a decimal string
func (d Dir) MarshalText() ([]byte, error) {
	return d.angle.MarshalText()
}

// UnmarshalText accepts any angle and normalizes it
func (d *Dir) UnmarshalText(text []byte) error {
	var a fixed.Q64
	if err := a.UnmarshalText(text); err != nil {
		return err
	}
	*d = FromAngle(a)
	return nil
}
