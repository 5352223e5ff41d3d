package audio

import (
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/cordic"
	"github.com/lixenwraith/qmath/fixed"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

var waveNames = map[WaveType]string{
	WaveSine:     "sine",
	WaveSquare:   "square",
	WaveTriangle: "triangle",
}

func (w WaveType) String() string {
	if name, ok := waveNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseWave maps a wave name to its WaveType, case-insensitive
func ParseWave(s string) (WaveType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for w, n := range waveNames {
		if n == name {
			return w, nil
		}
	}
	return WaveSine, errors.Wrapf(ErrConfig, "unknown wave %q", s)
}

// oscillator generates raw audio waves from a fixed-point phase accumulator.
// The phase runs over [0, 2π) in radians so the sine voice feeds cordic.Sin
// directly; identical settings produce identical sample streams.
type oscillator struct {
	step     fixed.Q64
	phase    fixed.Q64
	duration int
	position int
	wave     WaveType
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq fixed.Q64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		step:     PhaseStep(freq, rate),
		duration: rate.N(duration),
		wave:     wave,
	}
}

// PhaseStep returns the per-sample phase advance 2π·freq/rate
func PhaseStep(freq fixed.Q64, rate beep.SampleRate) fixed.Q64 {
	if rate <= 0 {
		return 0
	}
	return fixed.TwoPi.SaturatingMul(freq).DivInt(int64(rate))
}

// Sample returns the waveform value at phase, in [-1, 1]
func Sample(wave WaveType, phase fixed.Q64) fixed.Q64 {
	var v fixed.Q64
	switch wave {
	case WaveSquare:
		v = fixed.One
		if phase >= fixed.Pi {
			v = fixed.NegOne
		}
	case WaveTriangle:
		// -1 at 0, +1 at π, back to -1 at 2π
		t := phase.Div(fixed.Pi)
		v = fixed.One - (t - fixed.One).Abs().Shl(1)
	default:
		v = cordic.Sin(phase)
	}
	// Kernel output can exceed unit magnitude by a few ulps
	return v.Clamp(fixed.NegOne, fixed.One)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := Sample(o.wave, o.phase).Float()
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, keep in [0, 2π)
		o.phase += o.step
		for o.phase >= fixed.TwoPi {
			o.phase -= fixed.TwoPi
		}
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

// gain returns the envelope level at the current position
func (e *envelope) gain() fixed.Q64 {
	if e.position < e.attackSamples {
		return fixed.FromInt(int64(e.position)).Div(fixed.FromInt(int64(e.attackSamples)))
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if e.position >= releaseStart && e.releaseSamples > 0 {
		remaining := e.totalSamples - e.position
		if remaining <= 0 {
			return fixed.Zero
		}
		return fixed.FromInt(int64(remaining)).Div(fixed.FromInt(int64(e.releaseSamples))).Min(fixed.One)
	}
	return fixed.One
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := e.gain().Float()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a beep volume effect.
// math.Log2(0) is -Inf, so zero volume becomes silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
