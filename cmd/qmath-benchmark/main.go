package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/lixenwraith/qmath/cordic"
	"github.com/lixenwraith/qmath/fixed"
	"github.com/lixenwraith/qmath/vec2"
)

const (
	rule     = "══════════════════════════════════════════════════════════════════════"
	thinRule = "──────────────────────────────────────────────────────────────────────"
)

// sink keeps results observable so loops are not elided
var (
	sinkQ fixed.Q64
	sinkF float64
)

// timing pairs a fixed-point loop body with its float64 counterpart
type timing struct {
	name  string
	fixed func(i int)
	float func(i int)
}

// accuracy compares a fixed-point function to its float64 reference over
// a sample of inputs in [lo, hi]
type accuracy struct {
	name   string
	lo, hi float64
	fixed  func(fixed.Q64) (fixed.Q64, bool)
	float  func(float64) float64
}

func main() {
	n := flag.Int("n", 1_000_000, "Iterations per timing")
	samples := flag.Int("samples", 20_001, "Inputs per accuracy sweep")
	flag.Parse()

	if *n <= 0 || *samples < 2 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive and -samples at least 2\n")
		os.Exit(1)
	}

	runTimings(os.Stdout, *n)
	runAccuracy(os.Stdout, *samples)
}

func timings() []timing {
	theta, thetaF := fixed.FromFloat(1.2345), 1.2345
	y, x := fixed.FromFloat(-0.75), fixed.FromFloat(0.4)
	v := vec2.New(fixed.FromFloat(123.456), fixed.FromFloat(78.9))
	half := fixed.FromFloat(0.4321)

	return []timing{
		{"SinCos",
			func(i int) { s, c := cordic.SinCos(theta + fixed.Q64(i)); sinkQ = s + c },
			func(i int) { s, c := math.Sincos(thetaF + float64(i)*1e-9); sinkF = s + c }},
		{"Tan",
			func(i int) { sinkQ = cordic.Tan(theta + fixed.Q64(i)) },
			func(i int) { sinkF = math.Tan(thetaF + float64(i)*1e-9) }},
		{"Asin",
			func(i int) { p, _ := cordic.Asin(half + fixed.Q64(i&0xff)); sinkQ = p.First },
			func(i int) { sinkF = math.Asin(0.4321 + float64(i&0xff)*1e-9) }},
		{"Atan",
			func(i int) { sinkQ = cordic.Atan(theta + fixed.Q64(i)).First },
			func(i int) { sinkF = math.Atan(thetaF + float64(i)*1e-9) }},
		{"Atan2",
			func(i int) { a, _ := cordic.Atan2(y+fixed.Q64(i), x); sinkQ = a },
			func(i int) { sinkF = math.Atan2(-0.75+float64(i)*1e-9, 0.4) }},
		{"Sqrt",
			func(i int) { sinkQ = (theta + fixed.Q64(i)).Sqrt() },
			func(i int) { sinkF = math.Sqrt(thetaF + float64(i)*1e-9) }},
		{"Vec2.Length",
			func(i int) { sinkQ = v.Length() + fixed.Q64(i) },
			func(i int) { sinkF = math.Hypot(123.456, 78.9+float64(i)*1e-9) }},
		{"Vec2.RotateBy",
			func(i int) { sinkQ = v.RotateBy(theta + fixed.Q64(i)).X },
			func(i int) {
				s, c := math.Sincos(thetaF + float64(i)*1e-9)
				sinkF = 123.456*c - 78.9*s
			}},
	}
}

func runTimings(w io.Writer, n int) {
	fmt.Fprintf(w, "CORDIC Benchmark (%d iterations)\n", n)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-28s %14s %14s %10s\n", "Operation", "Q32.32", "float64", "Ratio")
	fmt.Fprintln(w, thinRule)

	for _, tc := range timings() {
		start := time.Now()
		for i := 0; i < n; i++ {
			tc.fixed(i)
		}
		q32Time := time.Since(start)

		start = time.Now()
		for i := 0; i < n; i++ {
			tc.float(i)
		}
		floatTime := time.Since(start)

		printResult(w, tc.name, q32Time, floatTime)
	}
	fmt.Fprintln(w, rule)
}

func printResult(w io.Writer, name string, q32Time, floatTime time.Duration) {
	ratio := 0.0
	if floatTime > 0 {
		ratio = float64(q32Time) / float64(floatTime)
	}
	fmt.Fprintf(w, "%-28s %14s %14s %9.2fx\n", name, q32Time, floatTime, ratio)
}

func accuracies() []accuracy {
	first := func(p cordic.Pair, err error) (fixed.Q64, bool) { return p.Nearest(), err == nil }
	return []accuracy{
		{"sin", -4 * math.Pi, 4 * math.Pi,
			func(q fixed.Q64) (fixed.Q64, bool) { return cordic.Sin(q), true }, math.Sin},
		{"cos", -4 * math.Pi, 4 * math.Pi,
			func(q fixed.Q64) (fixed.Q64, bool) { return cordic.Cos(q), true }, math.Cos},
		{"asin |v|<=0.9", -0.9, 0.9,
			func(q fixed.Q64) (fixed.Q64, bool) { return first(cordic.Asin(q)) }, math.Asin},
		{"acos |v|<=0.9", -0.9, 0.9,
			func(q fixed.Q64) (fixed.Q64, bool) {
				p, err := cordic.Acos(q)
				return p.Second, err == nil
			}, math.Acos},
		{"atan", -40, 40,
			func(q fixed.Q64) (fixed.Q64, bool) { return cordic.Atan(q).Nearest(), true }, math.Atan},
	}
}

// sweepError returns the largest absolute error over samples evenly spaced inputs
func sweepError(a accuracy, samples int) (maxErr, worstAt float64) {
	step := (a.hi - a.lo) / float64(samples-1)
	for i := 0; i < samples; i++ {
		in := fixed.FromFloat(a.lo + float64(i)*step)
		got, ok := a.fixed(in)
		if !ok {
			continue
		}
		if e := math.Abs(got.Float() - a.float(in.Float())); e > maxErr {
			maxErr, worstAt = e, in.Float()
		}
	}
	return maxErr, worstAt
}

func runAccuracy(w io.Writer, samples int) {
	fmt.Fprintf(w, "\nAccuracy (%d samples, Eps = %.3e)\n", samples, fixed.Eps.Float())
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-28s %14s %14s %10s\n", "Function", "Max error", "Worst at", "Eps")
	fmt.Fprintln(w, thinRule)

	for _, a := range accuracies() {
		maxErr, at := sweepError(a, samples)
		fmt.Fprintf(w, "%-28s %14.3e %14.6f %9.2fx\n", a.name, maxErr, at, maxErr/fixed.Eps.Float())
	}
	fmt.Fprintln(w, rule)
}
