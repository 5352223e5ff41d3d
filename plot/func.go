// Package plot draws fixed-point function curves on a terminal grid.
package plot

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/cordic"
	"github.com/lixenwraith/qmath/fixed"
)

// ErrUnknownFunc reports a function name not in Funcs
var ErrUnknownFunc = errors.New("plot: unknown function")

// Func is a named real function evaluated with the cordic kernel
type Func struct {
	Name string
	// Eval returns false where the function is undefined
	Eval    func(x fixed.Q64) (fixed.Q64, bool)
	Default Viewport
}

// Funcs lists the plottable functions; index+1 is the viewer hotkey
var Funcs = []Func{
	{
		Name:    "sin",
		Eval:    func(x fixed.Q64) (fixed.Q64, bool) { return cordic.Sin(x), true },
		Default: Viewport{From: -fixed.TwoPi, To: fixed.TwoPi, Bottom: fixed.FromFloat(-1.5), Top: fixed.FromFloat(1.5)},
	},
	{
		Name:    "cos",
		Eval:    func(x fixed.Q64) (fixed.Q64, bool) { return cordic.Cos(x), true },
		Default: Viewport{From: -fixed.TwoPi, To: fixed.TwoPi, Bottom: fixed.FromFloat(-1.5), Top: fixed.FromFloat(1.5)},
	},
	{
		Name:    "tan",
		Eval:    func(x fixed.Q64) (fixed.Q64, bool) { return cordic.Tan(x), true },
		Default: Viewport{From: -fixed.Pi, To: fixed.Pi, Bottom: fixed.FromInt(-4), Top: fixed.FromInt(4)},
	},
	{
		Name: "asin",
		Eval: func(x fixed.Q64) (fixed.Q64, bool) {
			p, err := cordic.Asin(x)
			if err != nil {
				return 0, false
			}
			return p.Nearest(), true
		},
		Default: Viewport{From: fixed.FromFloat(-1.25), To: fixed.FromFloat(1.25), Bottom: fixed.NegTwo, Top: fixed.Two},
	},
	{
		Name: "acos",
		Eval: func(x fixed.Q64) (fixed.Q64, bool) {
			p, err := cordic.Acos(x)
			if err != nil {
				return 0, false
			}
			// Principal value is the non-negative candidate
			return p.Second.Abs(), true
		},
		Default: Viewport{From: fixed.FromFloat(-1.25), To: fixed.FromFloat(1.25), Bottom: fixed.NegHalf, Top: fixed.FromFloat(3.5)},
	},
	{
		Name:    "atan",
		Eval:    func(x fixed.Q64) (fixed.Q64, bool) { return cordic.Atan(x).Nearest(), true },
		Default: Viewport{From: fixed.FromInt(-10), To: fixed.FromInt(10), Bottom: fixed.NegTwo, Top: fixed.Two},
	},
}

// Lookup finds a function by name, case-insensitive
func Lookup(name string) (Func, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Funcs {
		if f.Name == n {
			return f, nil
		}
	}
	return Func{}, errors.Wrapf(ErrUnknownFunc, "%q", name)
}

// Index returns the position of name in Funcs, -1 if absent
func Index(name string) int {
	for i, f := range Funcs {
		if f.Name == name {
			return i
		}
	}
	return -1
}
