package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/etnz/corrmap"
)

// Heatmap draws the correlation matrix m with every coefficient printed in
// its cell, separated by black grid lines.
func Heatmap(w io.Writer, m *corrmap.Matrix, o Options) error {
	c, err := newCanvas(o)
	if err != nil {
		return err
	}
	n := m.Len()

	const margin = 36.0
	c.font(o.FontSize, "")
	c.textColor(black)
	c.centered(o.Width/2, margin+o.FontSize, "Sector vs. Sector Correlation Matrix")
	if n == 0 {
		return c.flush(w)
	}

	labelW := 0.18 * o.Width
	barW := 0.1 * o.Width
	left, top := margin+labelW, margin+2*o.FontSize
	cell := math.Min((o.Width-left-margin-barW)/float64(n), (o.Height-top-margin-labelW)/float64(n))

	c.stroke(black, 1)
	valueSize := labelSize(cell/2.5, 14)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			col := o.Palette.At(v)
			x, y := left+float64(j)*cell, top+float64(i)*cell
			c.fill(col)
			c.pdf.Rect(x, y, cell, cell, "FD")
			if math.IsNaN(v) {
				continue
			}
			if col.luminance() < 0.5 {
				c.textColor(white)
			} else {
				c.textColor(black)
			}
			c.font(valueSize, "")
			c.centered(x+cell/2, y+cell/2+valueSize/3, fmt.Sprintf("%.2f", v))
		}
	}

	c.font(labelSize(cell/2, 12), "")
	c.textColor(black)
	for i, l := range m.Labels() {
		center := float64(i)*cell + cell/2
		c.right(left-6, top+center+4, l)
		c.vertical(left+center+4, top+float64(n)*cell+6, l)
	}

	c.colorBar(left+float64(n)*cell+0.03*o.Width, top, 0.025*o.Width, float64(n)*cell, o.Palette)
	return c.flush(w)
}
