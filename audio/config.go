package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/qmath/fixed"
)

// Environment variables read by LoadToneConfig
const (
	EnvFrequency  = "QMATH_TONE_FREQ"
	EnvSampleRate = "QMATH_TONE_SAMPLE_RATE"
	EnvVolume     = "QMATH_TONE_VOLUME"
	EnvDuration   = "QMATH_TONE_DURATION_MS"
	EnvWave       = "QMATH_TONE_WAVE"
)

// ErrConfig reports an unusable tone setting
var ErrConfig = errors.New("audio: invalid tone config")

// ToneConfig describes a single rendered tone
type ToneConfig struct {
	Frequency  fixed.Q64 // Hz, fractional allowed
	SampleRate int
	Volume     float64 // 0.0-1.0
	Duration   time.Duration
	Attack     time.Duration
	Release    time.Duration
	Wave       WaveType
}

// DefaultToneConfig returns an A4 sine at half volume
func DefaultToneConfig() *ToneConfig {
	return &ToneConfig{
		Frequency:  fixed.FromInt(440),
		SampleRate: 44100,
		Volume:     0.5,
		Duration:   time.Second,
		Attack:     10 * time.Millisecond,
		Release:    50 * time.Millisecond,
		Wave:       WaveSine,
	}
}

// Validate checks the config can be rendered
func (c *ToneConfig) Validate() error {
	switch {
	case c.Frequency <= 0:
		return errors.Wrapf(ErrConfig, "frequency %v must be positive", c.Frequency)
	case c.SampleRate <= 0:
		return errors.Wrapf(ErrConfig, "sample rate %d must be positive", c.SampleRate)
	case c.Frequency.Int() >= int64(c.SampleRate)/2:
		return errors.Wrapf(ErrConfig, "frequency %v at or above Nyquist for rate %d", c.Frequency, c.SampleRate)
	case c.Duration <= 0:
		return errors.Wrapf(ErrConfig, "duration %v must be positive", c.Duration)
	case c.Volume < 0 || c.Volume > 1:
		return errors.Wrapf(ErrConfig, "volume %f outside [0, 1]", c.Volume)
	}
	return nil
}

// LoadToneConfig loads tone configuration from environment variables.
// Invalid values are logged and the default is kept.
func LoadToneConfig() *ToneConfig {
	cfg := DefaultToneConfig()

	if freq := os.Getenv(EnvFrequency); freq != "" {
		if val, err := fixed.Parse(freq); err != nil {
			warnInvalid(EnvFrequency, freq, err)
		} else if val <= 0 {
			warnInvalid(EnvFrequency, freq, errors.New("must be positive"))
		} else {
			cfg.Frequency = val
		}
	}

	if rate := os.Getenv(EnvSampleRate); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		} else {
			warnInvalid(EnvSampleRate, rate, err)
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		} else {
			warnInvalid(EnvVolume, volume, err)
		}
	}

	if ms := os.Getenv(EnvDuration); ms != "" {
		if val, err := strconv.Atoi(ms); err == nil && val > 0 {
			cfg.Duration = time.Duration(val) * time.Millisecond
		} else {
			warnInvalid(EnvDuration, ms, err)
		}
	}

	if wave := os.Getenv(EnvWave); wave != "" {
		if val, err := ParseWave(wave); err == nil {
			cfg.Wave = val
		} else {
			warnInvalid(EnvWave, wave, err)
		}
	}

	return cfg
}

func warnInvalid(name, value string, err error) {
	fields := []zap.Field{zap.String("var", name), zap.String("value", value)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	Logger().Warn("ignoring invalid tone setting", fields...)
}
