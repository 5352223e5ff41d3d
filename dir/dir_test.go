package dir

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/cordic"
	"github.com/lixenwraith/qmath/fixed"
	"github.com/lixenwraith/qmath/vec2"
)

func TestFromAngleNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   fixed.Q64
		want fixed.Q64
	}{
		{"zero", fixed.Zero, fixed.Zero},
		{"inside", fixed.Pi, fixed.Pi},
		{"full turn", fixed.TwoPi, fixed.Zero},
		{"negative quarter", -fixed.FracPi2, fixed.TwoPi - fixed.FracPi2},
		{"several turns", fixed.TwoPi.MulInt(3) + fixed.One, fixed.One},
		{"several negative turns", fixed.TwoPi.MulInt(-5) - fixed.Half, fixed.TwoPi - fixed.Half},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromAngle(tt.in)
			if d.Angle() != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, d.Angle())
			}
			if d.Angle() < 0 || d.Angle() >= fixed.TwoPi {
				t.Errorf("Angle %v outside [0, 2π)", d.Angle())
			}
		})
	}
}

func TestNewPanicsOutOfRange(t *testing.T) {
	for _, a := range []fixed.Q64{fixed.TwoPi, fixed.NegDelta, fixed.FromInt(10)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %v", a)
				}
			}()
			_ = New(a)
		}()
	}
}

func TestFromVec(t *testing.T) {
	tests := []struct {
		name string
		v    vec2.Vec2
		want fixed.Q64
	}{
		{"x", vec2.AxisX, fixed.Zero},
		{"y", vec2.AxisY, fixed.FracPi2},
		{"neg x", vec2.NegAxisX, fixed.Pi},
		{"neg y", vec2.NegAxisY, fixed.ThreeFracPi2},
		{"diagonal", vec2.New(fixed.FromInt(5), fixed.FromInt(5)), fixed.FracPi4},
		{"just above neg x", vec2.New(fixed.FromInt(-1000), fixed.Delta), fixed.Pi},
		{"just below x", vec2.New(fixed.FromInt(1000), -fixed.Delta), fixed.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromVec(tt.v)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.Angle().AbsDiff(tt.want) > fixed.Eps {
				t.Errorf("Expected %v, got %v", tt.want, d.Angle())
			}
		})
	}

	if _, err := FromVec(vec2.Zero); !errors.Is(err, cordic.ErrDomain) {
		t.Errorf("Expected ErrDomain for zero vector, got %v", err)
	}
}

func TestRotate(t *testing.T) {
	d := New(fixed.FracPi2)
	if got := d.Rotate(fixed.Pi); got.Angle() != fixed.FracPi2+fixed.Pi {
		t.Errorf("Expected 3π/2 (raw), got %v", got)
	}
	if got := d.Rotate(-fixed.Pi); got.Angle() != fixed.FracPi2-fixed.Pi+fixed.TwoPi {
		t.Errorf("Expected wrap to 3π/2 (raw), got %v", got)
	}

	a := New(fixed.ThreeFracPi2)
	if got := a.RotateDir(New(fixed.Pi)); got.Angle() != fixed.ThreeFracPi2+fixed.Pi-fixed.TwoPi {
		t.Errorf("Expected wrap past 2π, got %v", got)
	}
	if got := New(fixed.Zero).Opposite(); got.Angle() != fixed.Pi {
		t.Errorf("Expected π, got %v", got)
	}
}

func TestNeg(t *testing.T) {
	if got := New(fixed.FracPi2).Neg(); got.Angle() != fixed.TwoPi-fixed.FracPi2 {
		t.Errorf("Expected 2π - π/2, got %v", got)
	}
	if got := New(fixed.Zero).Neg(); got.Angle() != fixed.Zero {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestVectorOps(t *testing.T) {
	up := New(fixed.FracPi2)
	if got := up.ToVec(); !got.AbsDiffEq(vec2.AxisY, fixed.Eps) {
		t.Errorf("ToVec: expected %v, got %v", vec2.AxisY, got)
	}
	if got := up.RotateVec(vec2.AxisX); !got.AbsDiffEq(vec2.AxisY, fixed.Eps) {
		t.Errorf("RotateVec: expected %v, got %v", vec2.AxisY, got)
	}

	v := vec2.New(fixed.FromInt(3), fixed.FromInt(4))
	if got := New(fixed.Zero).ProjectionOf(v); got.AbsDiff(fixed.FromInt(3)) > fixed.Eps.MulInt(4) {
		t.Errorf("ProjectionOf along x: expected 3, got %v", got)
	}
	if got := up.ProjectionOf(v); got.AbsDiff(fixed.FromInt(4)) > fixed.Eps.MulInt(4) {
		t.Errorf("ProjectionOf along y: expected 4, got %v", got)
	}
}

func TestJSON(t *testing.T) {
	type heading struct {
		Heading Dir `json:"heading"`
	}

	out, err := json.Marshal(heading{New(fixed.Half)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"heading":"0.5"}` {
		t.Errorf("Expected {\"heading\":\"0.5\"}, got %s", out)
	}

	var h heading
	if err := json.Unmarshal([]byte(`{"heading":"-1"}`), &h); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if h.Heading.Angle() != fixed.TwoPi-fixed.One {
		t.Errorf("Expected normalized 2π - 1, got %v", h.Heading.Angle())
	}

	if err := json.Unmarshal([]byte(`{"heading":"north"}`), &h); !errors.Is(err, fixed.ErrSyntax) {
		t.Errorf("Expected ErrSyntax, got %v", err)
	}
}
