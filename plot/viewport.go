package plot

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/fixed"
)

// ErrViewport reports an empty or inverted range
var ErrViewport = errors.New("plot: invalid viewport")

// Viewport is the plotted region: x in [From, To], y in [Bottom, Top]
type Viewport struct {
	From, To    fixed.Q64
	Bottom, Top fixed.Q64
}

func (v Viewport) Validate() error {
	if v.To <= v.From {
		return errors.Wrapf(ErrViewport, "x range [%v, %v]", v.From, v.To)
	}
	if v.Top <= v.Bottom {
		return errors.Wrapf(ErrViewport, "y range [%v, %v]", v.Bottom, v.Top)
	}
	return nil
}

// Pan shifts the x range by frac of its width; negative moves left
func (v Viewport) Pan(frac fixed.Q64) Viewport {
	d := v.To.SaturatingSub(v.From).SaturatingMul(frac)
	v.From = v.From.SaturatingAdd(d)
	v.To = v.To.SaturatingAdd(d)
	return v
}

// Zoom scales the x range about its center; factor < 1 zooms in
func (v Viewport) Zoom(factor fixed.Q64) Viewport {
	center := v.From.SaturatingAdd(v.To).Shr(1)
	half := v.To.SaturatingSub(v.From).Shr(1).SaturatingMul(factor)
	if half <= 0 {
		half = fixed.Delta
	}
	v.From = center.SaturatingSub(half)
	v.To = center.SaturatingAdd(half)
	return v
}

// ColumnX returns the x value sampled at column c of width columns
func (v Viewport) ColumnX(c, width int) fixed.Q64 {
	if width <= 1 {
		return v.From
	}
	span := v.To.SaturatingSub(v.From)
	return v.From + span.Mul(fixed.FromInt(int64(c)).Div(fixed.FromInt(int64(width-1))))
}

// Row maps y to a row of height rows, row 0 at Top; -1 when off-range
func (v Viewport) Row(y fixed.Q64, height int) int {
	if y > v.Top || y < v.Bottom || height <= 0 {
		return -1
	}
	if height == 1 {
		return 0
	}
	frac := v.Top.SaturatingSub(y).SaturatingDiv(v.Top.SaturatingSub(v.Bottom))
	return int(frac.Mul(fixed.FromInt(int64(height - 1))).Round().Int())
}

// Column maps x to its nearest column of width columns; -1 when off-range
func (v Viewport) Column(x fixed.Q64, width int) int {
	if x < v.From || x > v.To || width <= 0 {
		return -1
	}
	if width == 1 {
		return 0
	}
	frac := x.SaturatingSub(v.From).SaturatingDiv(v.To.SaturatingSub(v.From))
	return int(frac.Mul(fixed.FromInt(int64(width - 1))).Round().Int())
}

// Trace returns the curve row for each column, -1 where undefined or off-range
func Trace(f Func, v Viewport, width, height int) []int {
	rows := make([]int, width)
	for c := range rows {
		y, ok := f.Eval(v.ColumnX(c, width))
		if !ok {
			rows[c] = -1
			continue
		}
		rows[c] = v.Row(y, height)
	}
	return rows
}
