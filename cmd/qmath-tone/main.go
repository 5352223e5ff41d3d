package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/qmath/audio"
	"github.com/lixenwraith/qmath/fixed"
)

// overrides holds flag values that replace environment settings when set
type overrides struct {
	freq     string
	wave     string
	duration time.Duration
}

func main() {
	var (
		out   = flag.String("o", "", "Write the tone to this WAV file")
		play  = flag.Bool("play", false, "Play the tone on the default audio device")
		debug = flag.Bool("debug", false, "Enable debug logging to stderr")
		ov    overrides
	)
	flag.StringVar(&ov.freq, "freq", "", "Frequency in Hz (fixed-point literal)")
	flag.StringVar(&ov.wave, "wave", "", "Waveform: sine, square, triangle")
	flag.DurationVar(&ov.duration, "d", 0, "Tone duration")
	flag.Parse()

	logger, err := setupLogging(*debug)
	if err != nil {
		fail(err)
	}
	defer logger.Sync()
	audio.SetLogger(logger)

	cfg := audio.LoadToneConfig()
	if err := ov.apply(cfg); err != nil {
		fail(err)
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	if *out == "" && !*play {
		fail(errors.New("nothing to do: pass -o file.wav and/or -play"))
	}

	if *out != "" {
		if err := writeFile(*out, cfg); err != nil {
			fail(err)
		}
		logger.Info("wrote tone", zap.String("path", *out))
	}

	if *play {
		if err := playTone(cfg); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func (o overrides) apply(cfg *audio.ToneConfig) error {
	if o.freq != "" {
		f, err := fixed.Parse(o.freq)
		if err != nil {
			return errors.Wrap(err, "-freq")
		}
		cfg.Frequency = f
	}
	if o.wave != "" {
		w, err := audio.ParseWave(o.wave)
		if err != nil {
			return errors.Wrap(err, "-wave")
		}
		cfg.Wave = w
	}
	if o.duration != 0 {
		cfg.Duration = o.duration
	}
	return nil
}

func writeFile(path string, cfg *audio.ToneConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := audio.Render(f, cfg); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close output")
}

// playTone blocks until the tone has drained through the speaker
func playTone(cfg *audio.ToneConfig) error {
	s, err := audio.NewTone(cfg)
	if err != nil {
		return err
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
