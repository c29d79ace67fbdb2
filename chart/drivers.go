package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/etnz/corrmap"
)

// Drivers draws the correlation drivers of a symbol as horizontal bars,
// highest on top, red when positive and blue otherwise.
func Drivers(w io.Writer, d corrmap.DriverList, o Options) error {
	c, err := newCanvas(o)
	if err != nil {
		return err
	}
	bars := d.Combined()

	const margin = 36.0
	c.font(o.FontSize, "")
	c.textColor(black)
	c.centered(o.Width/2, margin+o.FontSize, fmt.Sprintf("Top Correlation Drivers for %s (%s)", d.Target, o.Period))

	labelW := 0.1 * o.Width
	left, top := margin+labelW, margin+2*o.FontSize
	right, bottom := o.Width-margin, o.Height-margin-2.5*o.FontSize
	lo, hi := axisBounds(bars)
	x := func(v float64) float64 { return left + (v-lo)/(hi-lo)*(right-left) }

	// frame and ticks
	step := tickStep(hi - lo)
	c.stroke(grey, 0.5)
	c.font(o.FontSize*0.7, "")
	for k := math.Ceil(lo / step); k*step <= hi; k++ {
		v := k * step
		if v == 0 {
			v = 0 // no "-0.00"
		}
		c.pdf.Line(x(v), top, x(v), bottom)
		c.centered(x(v), bottom+o.FontSize*0.9, fmt.Sprintf("%.2f", v))
	}
	c.stroke(darkGrey, 0.8)
	c.pdf.Rect(left, top, right-left, bottom-top, "D")
	c.font(o.FontSize*0.8, "")
	c.centered((left+right)/2, bottom+2.2*o.FontSize, "Correlation Coefficient")

	if len(bars) > 0 {
		slot := (bottom - top) / float64(len(bars))
		c.font(labelSize(slot, o.FontSize*0.7), "")
		for i, b := range bars {
			col := Negative
			if b.Correlation > 0 {
				col = Positive
			}
			y := top + float64(i)*slot
			x0, x1 := x(math.Min(0, b.Correlation)), x(math.Max(0, b.Correlation))
			c.fill(col)
			c.pdf.Rect(x0, y+slot*0.1, x1-x0, slot*0.8, "F")
			c.right(left-6, y+slot/2+slot*0.2, b.Symbol.String())
		}
	}

	// zero line
	c.pdf.SetAlpha(0.7, "Normal")
	c.stroke(black, 1)
	c.pdf.SetDashPattern([]float64{6, 4}, 0)
	c.pdf.Line(x(0), top, x(0), bottom)
	c.pdf.SetDashPattern(nil, 0)
	c.pdf.SetAlpha(1, "Normal")
	return c.flush(w)
}

// axisBounds returns a padded value range that always contains 0.
func axisBounds(bars []corrmap.Driver) (lo, hi float64) {
	for _, b := range bars {
		lo, hi = math.Min(lo, b.Correlation), math.Max(hi, b.Correlation)
	}
	if hi-lo == 0 {
		return -1, 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// tickStep returns a round step giving about 5 to 10 ticks over span.
func tickStep(span float64) float64 {
	for _, s := range []float64{0.05, 0.1, 0.2, 0.25, 0.5} {
		if span/s <= 10 {
			return s
		}
	}
	return 1
}
