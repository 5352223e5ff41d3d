package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/qmath/fixed"
	"github.com/lixenwraith/qmath/plot"
)

func main() {
	var (
		fnName   = flag.String("fn", "sin", "Function to plot: sin, cos, tan, asin, acos, atan")
		from     = flag.String("from", "", "Left edge of the x range (fixed-point literal)")
		to       = flag.String("to", "", "Right edge of the x range (fixed-point literal)")
		logPath  = flag.String("debug", "", "Write debug log to this file")
		width    = flag.Int("width", 80, "Columns for non-interactive output")
		height   = flag.Int("height", 24, "Rows for non-interactive output")
		forceTxt = flag.Bool("ascii", false, "Write plain text even on a terminal")
	)
	flag.Parse()

	f, err := plot.Lookup(*fnName)
	if err != nil {
		fail(err)
	}
	view, err := viewFor(f, *from, *to)
	if err != nil {
		fail(err)
	}

	logger, err := setupLogging(*logPath)
	if err != nil {
		fail(err)
	}
	defer logger.Sync()

	if *forceTxt || !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Debug("writing ascii plot", zap.String("fn", f.Name), zap.Int("width", *width), zap.Int("height", *height))
		if err := plot.WriteASCII(os.Stdout, f, view, *width, *height); err != nil {
			fail(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fail(err)
	}
	if err := screen.Init(); err != nil {
		fail(err)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mQMATH-PLOT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	v := newViewer(screen, f, view, logger)
	v.run()
	screen.Fini()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// viewFor applies optional x-range overrides to the function's default viewport
func viewFor(f plot.Func, from, to string) (plot.Viewport, error) {
	v := f.Default
	if from != "" {
		q, err := fixed.Parse(from)
		if err != nil {
			return v, errors.Wrap(err, "-from")
		}
		v.From = q
	}
	if to != "" {
		q, err := fixed.Parse(to)
		if err != nil {
			return v, errors.Wrap(err, "-to")
		}
		v.To = q
	}
	return v, v.Validate()
}
