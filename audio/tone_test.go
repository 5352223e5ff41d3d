package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

func shortTone() *ToneConfig {
	cfg := DefaultToneConfig()
	cfg.Duration = 100 * time.Millisecond
	return cfg
}

func TestSamples(t *testing.T) {
	cfg := shortTone()

	out, err := Samples(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(out) != 4410 {
		t.Fatalf("Expected 4410 frames, got %d", len(out))
	}

	peak := 0.0
	for _, f := range out {
		peak = math.Max(peak, math.Abs(f[0]))
	}
	if peak > cfg.Volume+1e-9 {
		t.Errorf("Expected peak at most %f, got %f", cfg.Volume, peak)
	}
	if peak < cfg.Volume*0.99 {
		t.Errorf("Expected tone to reach near %f, got %f", cfg.Volume, peak)
	}

	again, _ := Samples(cfg)
	for i := range out {
		if out[i] != again[i] {
			t.Fatalf("Frame %d differs between renders", i)
		}
	}
}

func TestSamplesInvalidConfig(t *testing.T) {
	cfg := shortTone()
	cfg.SampleRate = 0
	if _, err := Samples(cfg); !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig, got %v", err)
	}
}

// TestRenderWAV encodes a tone and decodes it back
func TestRenderWAV(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)
	cfg := shortTone()
	cfg.Wave = WaveSquare

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := Render(f, cfg); err != nil {
		f.Close()
		t.Fatalf("Render failed: %v", err)
	}
	f.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer in.Close()

	s, format, err := wav.Decode(in)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer s.Close()

	if format.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", format.SampleRate)
	}
	if format.NumChannels != 2 || format.Precision != 2 {
		t.Errorf("Expected 16-bit stereo, got %d channels, %d bytes", format.NumChannels, format.Precision)
	}
	if s.Len() != 4410 {
		t.Errorf("Expected 4410 frames, got %d", s.Len())
	}

	if logs.FilterMessage("rendered tone").Len() != 1 {
		t.Errorf("Expected one render debug entry, got %d", logs.FilterMessage("rendered tone").Len())
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	cfg := shortTone()
	cfg.Frequency = 0

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	if err := Render(f, cfg); !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig, got %v", err)
	}
}
