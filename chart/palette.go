package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGB color with 0-255 components.
type Color struct{ R, G, B int }

// Hex parses a "#rrggbb" color.
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, nil
}

// MustHex is like Hex but panics on error.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// luminance is the perceived brightness in [0, 1].
func (c Color) luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

var (
	black    = Color{0, 0, 0}
	white    = Color{255, 255, 255}
	grey     = Color{200, 200, 200}
	darkGrey = Color{60, 60, 60}

	// Positive and Negative are the bar colors of the drivers chart.
	Positive = MustHex("#cc3333")
	Negative = MustHex("#3366cc")
)

// Palette is a diverging color scale: its stops are evenly spread over
// [-1, 1], so the middle stop is the color of 0.
type Palette []Color

var (
	// Vlag goes from blue to red through a light center.
	Vlag = Palette{
		MustHex("#2369bd"), MustHex("#a5b8d6"), MustHex("#f5f1f0"), MustHex("#d79b93"), MustHex("#a9373b"),
	}
	// Coolwarm goes from blue to red through a light grey.
	Coolwarm = Palette{
		MustHex("#3b4cc0"), MustHex("#8db0fe"), MustHex("#dddddd"), MustHex("#f49a7b"), MustHex("#b40426"),
	}
)

// ParsePalette returns a palette by name.
func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vlag":
		return Vlag, nil
	case "coolwarm":
		return Coolwarm, nil
	}
	return nil, fmt.Errorf("unknown palette %q, want vlag or coolwarm", name)
}

// At returns the color of v, clamped to [-1, 1]. Undefined values are grey.
func (p Palette) At(v float64) Color {
	if math.IsNaN(v) || len(p) == 0 {
		return grey
	}
	if len(p) == 1 {
		return p[0]
	}
	v = math.Max(-1, math.Min(1, v))
	pos := (v + 1) / 2 * float64(len(p)-1)
	i := int(math.Floor(pos))
	if i >= len(p)-1 {
		return p[len(p)-1]
	}
	f := pos - float64(i)
	a, b := p[i], p[i+1]
	mix := func(x, y int) int { return int(math.Round(float64(x) + f*float64(y-x))) }
	return Color{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}
