package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/lixenwraith/qmath/cordic"
	"github.com/lixenwraith/qmath/dir"
	"github.com/lixenwraith/qmath/fixed"
	"github.com/lixenwraith/qmath/rng"
	"github.com/lixenwraith/qmath/vec2"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type namedConst struct {
	name string
	q    fixed.Q64
}

var constTable = [][]namedConst{
	{
		{"Zero", fixed.Zero}, {"Half", fixed.Half}, {"One", fixed.One}, {"Two", fixed.Two},
		{"NegHalf", fixed.NegHalf}, {"NegOne", fixed.NegOne}, {"NegTwo", fixed.NegTwo},
		{"Delta", fixed.Delta}, {"NegDelta", fixed.NegDelta},
		{"Min", fixed.Min}, {"Max", fixed.Max}, {"Eps", fixed.Eps},
	},
	{
		{"Sqrt2", fixed.Sqrt2}, {"Sqrt3", fixed.Sqrt3}, {"Ln2", fixed.Ln2}, {"Ln10", fixed.Ln10},
		{"FracOneSqrt2", fixed.FracOneSqrt2}, {"E", fixed.E},
	},
	{
		{"Pi", fixed.Pi}, {"NegPi", fixed.NegPi}, {"TwoPi", fixed.TwoPi}, {"NegTwoPi", fixed.NegTwoPi},
		{"FracPi2", fixed.FracPi2}, {"FracPi3", fixed.FracPi3}, {"FracPi4", fixed.FracPi4},
		{"FracPi6", fixed.FracPi6}, {"FracPi8", fixed.FracPi8}, {"ThreeFracPi2", fixed.ThreeFracPi2},
	},
}

func main() {
	var (
		debug     = flag.Bool("debug", false, "Enable debug logging to stderr")
		rotations = flag.Int("rotations", 10000, "Steps in the error-accumulation demo")
		seed      = flag.Uint("seed", uint(rng.DefaultSeed), "Seed for the random sample")
	)
	flag.Parse()

	logger, err := setupLogging(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdout, logger, *rotations, uint32(*seed)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *zap.Logger, rotations int, seed uint32) error {
	if rotations < 0 {
		return fmt.Errorf("rotations must be non-negative, got %d", rotations)
	}

	printConstants(w)
	logger.Debug("constants printed")

	printKernel(w)
	logger.Debug("kernel samples printed")

	printInverse(w)
	printAccumulation(w, rotations)
	logger.Debug("accumulation demo done", zap.Int("rotations", rotations))

	printRandom(w, seed)
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render(title))
}

func printConstants(w io.Writer) {
	section(w, "Constants")
	fmt.Fprintf(w, "%-16s %-20s %s\n", "name", "raw", "value")
	for _, group := range constTable {
		for _, c := range group {
			fmt.Fprintf(w, "%-16s %#-20x %s\n", nameStyle.Render(c.name), uint64(c.q), c.q)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%-16s %d\n", "FracBits", fixed.FracBits)
	fmt.Fprintf(w, "%-16s %d\n", "IntBits", fixed.IntBits)
}

func printKernel(w io.Writer) {
	section(w, "CORDIC")
	fmt.Fprintf(w, "%-8s %-14s %-14s %-14s %s\n", "deg", "sin", "cos", "tan", "max err")

	for _, deg := range []int64{0, 30, -30, 45, 90, 180, -180, 270, 360, -360} {
		theta := fixed.Pi.MulInt(deg).DivInt(180)
		s, c := cordic.SinCos(theta)
		tan := cordic.Tan(theta)

		f := theta.Float()
		errS := math.Abs(s.Float() - math.Sin(f))
		errC := math.Abs(c.Float() - math.Cos(f))
		fmt.Fprintf(w, "%-8d %-14s %-14s %-14s %.2e\n", deg, s, c, tanLabel(tan), math.Max(errS, errC))
	}
}

func tanLabel(t fixed.Q64) string {
	switch t {
	case fixed.Max:
		return "+sat"
	case fixed.Min:
		return "-sat"
	}
	return t.String()
}

func printInverse(w io.Writer) {
	section(w, "Inverse")
	for _, v := range []fixed.Q64{fixed.Zero, fixed.Half, fixed.One, fixed.NegOne} {
		as, _ := cordic.Asin(v)
		ac, _ := cordic.Acos(v)
		fmt.Fprintf(w, "asin/acos %-4s: (%s, %s) (%s, %s)\n", v, as.First, as.Second, ac.First, ac.Second)
	}
	for _, v := range []fixed.Q64{fixed.One, fixed.Zero, fixed.NegOne} {
		at := cordic.Atan(v)
		fmt.Fprintf(w, "atan %-9s: (%s, %s)\n", v, at.First, at.Second)
	}

	points := [][2]fixed.Q64{
		{fixed.One, fixed.One}, {fixed.One, fixed.NegOne}, {fixed.NegOne, fixed.NegOne},
		{fixed.Zero, fixed.NegOne}, {fixed.NegOne, fixed.Zero},
	}
	for _, p := range points {
		a, _ := cordic.Atan2(p[0], p[1])
		fmt.Fprintf(w, "atan2(%s, %s) = %s\n", p[0], p[1], a)
	}

	// Domain errors are reported, never clamped
	if _, err := cordic.Asin(fixed.Two); err != nil {
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
	}
	if _, err := cordic.Atan2(fixed.Zero, fixed.Zero); err != nil {
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
	}
}

// printAccumulation rotates unit X repeatedly by π/6 and reports drift
func printAccumulation(w io.Writer, rotations int) {
	section(w, "Error accumulation")

	step := vec2.FromAngle(fixed.FracPi6)
	v := vec2.AxisX
	for i := 0; i < rotations; i++ {
		v = step.Rotate(v)
	}
	fmt.Fprintf(w, "unit X after %d rotations by π/6: %v, length %s\n", rotations, v, v.Length())

	d := dir.New(fixed.Zero)
	for i := 0; i < rotations; i++ {
		d = d.Rotate(fixed.FracPi6)
	}
	fmt.Fprintf(w, "heading after %d turns by π/6: %s\n", rotations, d.Angle())

	fx, fy := 1.0, 0.0
	sf, cf := math.Sincos(math.Pi / 6)
	for i := 0; i < rotations; i++ {
		fx, fy = cf*fx-sf*fy, sf*fx+cf*fy
	}
	fmt.Fprintf(w, "float64 reference: [%.10f, %.10f], length %.10f\n", fx, fy, math.Hypot(fx, fy))
}

func printRandom(w io.Writer, seed uint32) {
	section(w, "Random")
	r := rng.New(seed)
	for i := 0; i < 5; i++ {
		u := r.NextUnit()
		fmt.Fprintf(w, "unit %s  angle %s\n", u, r.Angle())
	}
}
