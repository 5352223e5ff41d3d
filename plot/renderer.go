package plot

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Cell glyphs shared by the terminal and ASCII renderers
const (
	glyphCurve = '•'
	glyphHoriz = '─'
	glyphVert  = '│'
	glyphCross = '┼'
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbAxis       = tcell.NewRGBColor(90, 90, 110)   // Muted gray-blue
	RgbCurve      = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(60, 100, 200)  // Dark blue
)

// TerminalRenderer draws a function plot onto a tcell screen.
// The bottom row holds the status bar; the rest is plot area.
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws f over v and shows the frame
func (r *TerminalRenderer) RenderFrame(f Func, v Viewport) {
	width, height := r.screen.Size()
	plotHeight := height - 1

	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(width, height, defaultStyle)

	if plotHeight > 0 {
		r.drawAxes(v, width, plotHeight, defaultStyle.Foreground(RgbAxis))
		r.drawCurve(f, v, width, plotHeight, defaultStyle.Foreground(RgbCurve))
	}
	r.drawStatusBar(f, v, width, height-1, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) fill(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawAxes(v Viewport, width, height int, style tcell.Style) {
	axisRow := v.Row(0, height)
	axisCol := v.Column(0, width)

	if axisRow >= 0 {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, axisRow, glyphHoriz, nil, style)
		}
	}
	if axisCol >= 0 {
		for y := 0; y < height; y++ {
			ch := glyphVert
			if y == axisRow {
				ch = glyphCross
			}
			r.screen.SetContent(axisCol, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawCurve(f Func, v Viewport, width, height int, style tcell.Style) {
	rows := Trace(f, v, width, height)
	for x, row := range rows {
		if row < 0 {
			continue
		}
		r.screen.SetContent(x, row, glyphCurve, nil, style)

		// Bridge steep segments, skipping jumps across asymptotes
		if x > 0 && rows[x-1] >= 0 {
			lo, hi := span(rows[x-1], row)
			if hi-lo < height/2 {
				for y := lo + 1; y < hi; y++ {
					r.screen.SetContent(x, y, glyphCurve, nil, style)
				}
			}
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(f Func, v Viewport, width, statusY int, defaultStyle tcell.Style) {
	if statusY < 0 {
		return
	}

	nameText := fmt.Sprintf(" %s ", f.Name)
	nameStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbStatusBg)
	x := 0
	for _, ch := range nameText {
		if x < width {
			r.screen.SetContent(x, statusY, ch, nil, nameStyle)
		}
		x++
	}

	info := fmt.Sprintf(" x:[%s, %s] y:[%s, %s]  1-6 fn  h/l pan  j/k zoom  q quit",
		short(v.From), short(v.To), short(v.Bottom), short(v.Top))
	for _, ch := range info {
		if x < width {
			r.screen.SetContent(x, statusY, ch, nil, defaultStyle)
		}
		x++
	}
}

func span(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
