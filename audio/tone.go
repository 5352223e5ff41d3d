// Package audio renders fixed-point oscillator tones through beep.
//
// Waveforms are computed from a Q32.32 phase accumulator with the cordic
// kernel, so a given ToneConfig always yields the same samples. Float64
// appears only at the beep boundary.
package audio

import (
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Format returns the stereo 16-bit format used for rendering cfg
func Format(cfg *ToneConfig) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// NewTone builds the oscillator, envelope and volume chain for cfg
func NewTone(cfg *ToneConfig) (beep.Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(cfg.Frequency, cfg.Duration, cfg.Wave, rate)
	shaped := NewEnvelope(osc, cfg.Duration, cfg.Attack, cfg.Release, rate)
	return newVolume(shaped, cfg.Volume), nil
}

// Render encodes the tone described by cfg as WAV into w
func Render(w io.WriteSeeker, cfg *ToneConfig) error {
	s, err := NewTone(cfg)
	if err != nil {
		return err
	}

	if err := wav.Encode(w, s, Format(cfg)); err != nil {
		return errors.Wrap(err, "encode wav")
	}

	Logger().Debug("rendered tone",
		zap.Stringer("freq", cfg.Frequency),
		zap.Stringer("wave", cfg.Wave),
		zap.Int("samples", beep.SampleRate(cfg.SampleRate).N(cfg.Duration)))
	return nil
}

// Samples renders the tone into memory, one stereo frame per sample
func Samples(cfg *ToneConfig) ([][2]float64, error) {
	s, err := NewTone(cfg)
	if err != nil {
		return nil, err
	}

	out := make([][2]float64, 0, beep.SampleRate(cfg.SampleRate).N(cfg.Duration))
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "stream tone")
	}
	return out, nil
}
