// Package chart draws the correlation figures as PDF documents.
//
// Every figure is drawn in its own document, created and released within
// the call: there is no shared drawing state between figures.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
)

// Options configures a figure. All sizes are in points.
type Options struct {
	Width, Height float64
	Font          string // a PDF core font family
	FontSize      float64
	Palette       Palette
	Period        string // period label shown in titles, like "2022-2024"
}

// ClusterMapOptions are the defaults for ClusterMap.
func ClusterMapOptions(period string) Options {
	return Options{Width: 1296, Height: 1296, Font: "Helvetica", FontSize: 20, Palette: Vlag, Period: period}
}

// HeatmapOptions are the defaults for Heatmap.
func HeatmapOptions() Options {
	return Options{Width: 864, Height: 720, Font: "Helvetica", FontSize: 16, Palette: Coolwarm}
}

// DriversOptions are the defaults for Drivers.
func DriversOptions(period string) Options {
	return Options{Width: 864, Height: 576, Font: "Helvetica", FontSize: 16, Period: period}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid figure size %vx%v", o.Width, o.Height)
	}
	if o.FontSize <= 0 {
		return fmt.Errorf("invalid font size %v", o.FontSize)
	}
	return nil
}

// canvas is the drawing context of a single figure.
type canvas struct {
	pdf *fpdf.Fpdf
	o   Options
}

func newCanvas(o Options) (*canvas, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Font == "" {
		o.Font = "Helvetica"
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: o.Width, Ht: o.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(o.Font, "", o.FontSize)
	return &canvas{pdf: pdf, o: o}, nil
}

// flush writes the document to w and releases it.
func (c *canvas) flush(w io.Writer) error {
	return c.pdf.Output(w)
}

func (c *canvas) font(size float64, style string) {
	c.pdf.SetFont(c.o.Font, style, size)
}

func (c *canvas) fill(col Color) { c.pdf.SetFillColor(col.R, col.G, col.B) }

func (c *canvas) stroke(col Color, width float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
}

func (c *canvas) textColor(col Color) { c.pdf.SetTextColor(col.R, col.G, col.B) }

// centered draws s centered on x with its baseline at y.
func (c *canvas) centered(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, y, s)
}

// right draws s ending at x.
func (c *canvas) right(x, y float64, s string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(s), y, s)
}

// vertical draws s bottom to top, ending at (x, y).
func (c *canvas) vertical(x, y float64, s string) {
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(90, x, y)
	c.pdf.Text(x-c.pdf.GetStringWidth(s), y, s)
	c.pdf.TransformEnd()
}

// labelSize returns a font size that fits labels in cells of the given extent.
func labelSize(cell, limit float64) float64 {
	return math.Max(4, math.Min(limit, cell*0.7))
}

// colorBar draws a vertical color scale for [-1, 1] in the given box.
func (c *canvas) colorBar(x, y, w, h float64, p Palette) {
	const steps = 100
	step := h / steps
	for i := 0; i < steps; i++ {
		v := 1 - 2*(float64(i)+0.5)/steps
		c.fill(p.At(v))
		// slight overlap avoids hairlines between steps
		c.pdf.Rect(x, y+float64(i)*step, w, step+0.5, "F")
	}
	c.stroke(darkGrey, 0.5)
	c.pdf.Rect(x, y, w, h, "D")
	c.font(math.Max(6, math.Min(12, w*0.6)), "")
	c.textColor(black)
	for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
		ty := y + (1-v)/2*h
		c.pdf.Line(x+w, ty, x+w+3, ty)
		c.pdf.Text(x+w+5, ty+3, fmt.Sprintf("%g", v))
	}
}
