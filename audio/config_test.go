package audio

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/qmath/fixed"
)

// observeLogs routes the package logger into an observer for the test duration
func observeLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })
	return logs
}

func clearToneEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvFrequency, EnvSampleRate, EnvVolume, EnvDuration, EnvWave} {
		t.Setenv(name, "")
	}
}

// TestDefaultToneConfig verifies default configuration
func TestDefaultToneConfig(t *testing.T) {
	cfg := DefaultToneConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if cfg.Frequency != fixed.FromInt(440) {
		t.Errorf("Expected default frequency 440, got %v", cfg.Frequency)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Expected default volume 0.5, got %f", cfg.Volume)
	}
	if cfg.Duration != time.Second {
		t.Errorf("Expected default duration 1s, got %v", cfg.Duration)
	}
	if cfg.Wave != WaveSine {
		t.Errorf("Expected default wave sine, got %v", cfg.Wave)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

// TestLoadToneConfigDefaults verifies loading with no env vars
func TestLoadToneConfigDefaults(t *testing.T) {
	clearToneEnv(t)

	cfg := LoadToneConfig()
	def := DefaultToneConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadToneConfigValues(t *testing.T) {
	clearToneEnv(t)
	t.Setenv(EnvFrequency, "261.63")
	t.Setenv(EnvSampleRate, "48000")
	t.Setenv(EnvDuration, "250")
	t.Setenv(EnvWave, "triangle")
	t.Setenv(EnvVolume, "80")

	cfg := LoadToneConfig()

	if cfg.Frequency != fixed.MustParse("261.63") {
		t.Errorf("Expected frequency 261.63, got %v", cfg.Frequency)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.Duration != 250*time.Millisecond {
		t.Errorf("Expected duration 250ms, got %v", cfg.Duration)
	}
	if cfg.Wave != WaveTriangle {
		t.Errorf("Expected triangle, got %v", cfg.Wave)
	}
	if cfg.Volume != 0.8 {
		t.Errorf("Expected volume 0.8, got %f", cfg.Volume)
	}
}

// TestLoadToneConfigVolumeClamping verifies volume is clamped to [0, 1]
func TestLoadToneConfigVolumeClamping(t *testing.T) {
	tests := []struct {
		env  string
		want float64
	}{
		{"150", 1.0},
		{"-20", 0.0},
		{"0", 0.0},
		{"100", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearToneEnv(t)
			t.Setenv(EnvVolume, tt.env)
			if got := LoadToneConfig().Volume; got != tt.want {
				t.Errorf("Expected volume %f, got %f", tt.want, got)
			}
		})
	}
}

// TestLoadToneConfigInvalid verifies bad values keep defaults and are logged
func TestLoadToneConfigInvalid(t *testing.T) {
	clearToneEnv(t)
	logs := observeLogs(t, zapcore.WarnLevel)

	t.Setenv(EnvFrequency, "abc")
	t.Setenv(EnvSampleRate, "-5")
	t.Setenv(EnvWave, "saw")
	t.Setenv(EnvDuration, "soon")

	cfg := LoadToneConfig()
	def := DefaultToneConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}

	if logs.Len() != 4 {
		t.Fatalf("Expected 4 warnings, got %d", logs.Len())
	}
	vars := map[string]bool{}
	for _, entry := range logs.All() {
		if entry.Message != "ignoring invalid tone setting" {
			t.Errorf("Unexpected log message %q", entry.Message)
		}
		if name, ok := entry.ContextMap()["var"].(string); ok {
			vars[name] = true
		}
	}
	for _, name := range []string{EnvFrequency, EnvSampleRate, EnvWave, EnvDuration} {
		if !vars[name] {
			t.Errorf("Expected warning for %s", name)
		}
	}
}

func TestLoadToneConfigNonPositiveFrequency(t *testing.T) {
	clearToneEnv(t)
	logs := observeLogs(t, zapcore.WarnLevel)
	t.Setenv(EnvFrequency, "-440")

	if got := LoadToneConfig().Frequency; got != fixed.FromInt(440) {
		t.Errorf("Expected default frequency, got %v", got)
	}
	if logs.Len() != 1 {
		t.Errorf("Expected 1 warning, got %d", logs.Len())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ToneConfig)
	}{
		{"zero frequency", func(c *ToneConfig) { c.Frequency = 0 }},
		{"zero rate", func(c *ToneConfig) { c.SampleRate = 0 }},
		{"above nyquist", func(c *ToneConfig) { c.Frequency = fixed.FromInt(30000) }},
		{"zero duration", func(c *ToneConfig) { c.Duration = 0 }},
		{"loud", func(c *ToneConfig) { c.Volume = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultToneConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrConfig) {
				t.Errorf("Expected ErrConfig, got %v", err)
			}
		})
	}
}
