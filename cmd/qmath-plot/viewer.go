package main

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/qmath/fixed"
	"github.com/lixenwraith/qmath/plot"
)

var (
	panStep = fixed.FromFloat(0.25)
	zoomIn  = fixed.Half
	zoomOut = fixed.Two
)

// viewer holds the interactive plot state
type viewer struct {
	screen   tcell.Screen
	renderer *plot.TerminalRenderer
	logger   *zap.Logger

	fn   plot.Func
	view plot.Viewport
}

func newViewer(screen tcell.Screen, f plot.Func, v plot.Viewport, logger *zap.Logger) *viewer {
	return &viewer{
		screen:   screen,
		renderer: plot.NewTerminalRenderer(screen),
		logger:   logger,
		fn:       f,
		view:     v,
	}
}

func (v *viewer) draw() {
	v.renderer.RenderFrame(v.fn, v.view)
}

// handleInput applies one event; returns false to quit
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r >= '1' && r <= '9':
			idx := int(r - '1')
			if idx < len(plot.Funcs) {
				v.fn = plot.Funcs[idx]
				v.view = v.fn.Default
				v.logger.Debug("switched function", zap.String("fn", v.fn.Name))
			}
		case r == 'h':
			v.view = v.view.Pan(-panStep)
		case r == 'l':
			v.view = v.view.Pan(panStep)
		case r == 'j':
			v.view = v.view.Zoom(zoomOut)
		case r == 'k':
			v.view = v.view.Zoom(zoomIn)
		case r == '0':
			v.view = v.fn.Default
		default:
			return true
		}
		v.logger.Debug("viewport",
			zap.Stringer("from", v.view.From), zap.Stringer("to", v.view.To))

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || !v.handleInput(ev) {
			return
		}
		v.draw()
	}
}
