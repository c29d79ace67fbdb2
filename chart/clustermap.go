package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/etnz/corrmap"
)

// ClusterMap draws the correlation matrix m reordered by the clustering d,
// with the dendrogram above the columns and left of the rows.
func ClusterMap(w io.Writer, m *corrmap.Matrix, d *corrmap.Dendrogram, o Options) error {
	if m.Len() != d.Leaves {
		return fmt.Errorf("clustering of %d leaves for a %dx%d matrix", d.Leaves, m.Len(), m.Len())
	}
	c, err := newCanvas(o)
	if err != nil {
		return err
	}
	order := d.Order()
	r := m.Reorder(order)
	n := r.Len()

	const margin = 36.0
	titleH := 3 * o.FontSize
	dendroW, dendroH := 0.1*o.Width, 0.15*o.Height
	left, top := margin+dendroW, margin+titleH+dendroH
	labelW := 0.08 * o.Width

	c.font(o.FontSize, "")
	c.textColor(black)
	c.centered(o.Width/2, margin+o.FontSize, fmt.Sprintf("Diversified Asset Cluster Map (%s)", o.Period))
	c.centered(o.Width/2, margin+2.2*o.FontSize, "Hierarchical Clustering")

	if n == 0 {
		return c.flush(w)
	}
	cell := math.Min((o.Width-left-margin-labelW)/float64(n), (o.Height-top-margin-labelW)/float64(n))

	// cells
	c.stroke(white, 0.2)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.fill(o.Palette.At(r.At(i, j)))
			c.pdf.Rect(left+float64(j)*cell, top+float64(i)*cell, cell, cell, "FD")
		}
	}

	// labels: rows on the right, columns below
	c.font(labelSize(cell, 12), "")
	c.textColor(black)
	for i, l := range r.Labels() {
		center := float64(i)*cell + cell/2
		c.pdf.Text(left+float64(n)*cell+4, top+center+cell*0.25, l)
		c.vertical(left+center+cell*0.25, top+float64(n)*cell+4, l)
	}

	// dendrograms: leaf k sits at the center of the k-th row or column
	pos := make(map[int]float64, n)
	for k, leaf := range order {
		pos[leaf] = float64(k)*cell + cell/2
	}
	scale := 0.0
	if h := d.MaxHeight(); h > 0 {
		scale = 0.9 / h
	}
	c.stroke(darkGrey, 0.8)
	for k, mg := range d.Merges {
		node := d.Leaves + k
		pos[node] = (pos[mg.Left] + pos[mg.Right]) / 2
		hl, hr, h := d.Height(mg.Left)*scale, d.Height(mg.Right)*scale, mg.Height*scale

		// above the columns, the root at the top
		base := top - 4
		c.pdf.Line(left+pos[mg.Left], base-hl*dendroH, left+pos[mg.Left], base-h*dendroH)
		c.pdf.Line(left+pos[mg.Left], base-h*dendroH, left+pos[mg.Right], base-h*dendroH)
		c.pdf.Line(left+pos[mg.Right], base-h*dendroH, left+pos[mg.Right], base-hr*dendroH)

		// left of the rows, the root on the left
		base = left - 4
		c.pdf.Line(base-hl*dendroW, top+pos[mg.Left], base-h*dendroW, top+pos[mg.Left])
		c.pdf.Line(base-h*dendroW, top+pos[mg.Left], base-h*dendroW, top+pos[mg.Right])
		c.pdf.Line(base-h*dendroW, top+pos[mg.Right], base-hr*dendroW, top+pos[mg.Right])
	}

	// color bar in the top left corner, next to both dendrograms
	c.colorBar(margin, margin+titleH, 0.02*o.Width, 0.9*dendroH, o.Palette)
	return c.flush(w)
}
