package color

import (
	"fmt"
	"math"
)

// RGB holds 8-bit channel values as produced by gamma-encoded sRGB.
type RGB struct {
	R, G, B int
}

// OKLCH holds a color in OKLCH polar form. L is 0-1, C is unbounded
// chroma (>= 0), H is degrees in [0, 360).
type OKLCH struct {
	L, C, H float64
}

// HSL holds hue in degrees [0, 360) with saturation and lightness as
// percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// ParsedColor is an immutable color carrying every representation we
// derive from a single source string.
type ParsedColor struct {
	OKLCH OKLCH
	RGB   RGB
	Hex   string
	HSL   HSL
	Alpha float64
}

// FromOklch builds a ParsedColor from OKLCH components, the canonical
// authoring format for theme colors.
func FromOklch(l, c, h float64) *ParsedColor {
	l = math.Max(0, math.Min(1, l))
	c = math.Max(0, c)
	h = normalizeHue(h)

	rgb := OklchToRGB(l, c, h)
	return &ParsedColor{
		OKLCH: OKLCH{L: l, C: c, H: h},
		RGB:   rgb,
		Hex:   rgb.Hex(),
		HSL:   RGBToHSL(rgb),
		Alpha: 1.0,
	}
}

// FromRGB builds a ParsedColor from 8-bit channel values.
func FromRGB(r, g, b int) *ParsedColor {
	rgb := RGB{R: clamp255(r), G: clamp255(g), B: clamp255(b)}
	return &ParsedColor{
		OKLCH: RGBToOklch(rgb),
		RGB:   rgb,
		Hex:   rgb.Hex(),
		HSL:   RGBToHSL(rgb),
		Alpha: 1.0,
	}
}

// Hex renders the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

// RGBToHSL converts 8-bit RGB to HSL with hue in degrees and
// saturation/lightness as percentages.
func RGBToHSL(c RGB) HSL {
	r := float64(clamp255(c.R)) / 255.0
	g := float64(clamp255(c.G)) / 255.0
	b := float64(clamp255(c.B)) / 255.0

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min
	l := (max + min) / 2.0

	var h, s float64
	if delta != 0 {
		if l < 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2.0 - max - min)
		}

		switch max {
		case r:
			h = math.Mod((g-b)/delta, 6.0)
		case g:
			h = (b-r)/delta + 2.0
		default:
			h = (r-g)/delta + 4.0
		}
		h *= 60.0
		if h < 0 {
			h += 360.0
		}
	}

	return HSL{H: h, S: s * 100.0, L: l * 100.0}
}

// HSLToRGB converts HSL (degrees, percentages) back to 8-bit RGB.
func HSLToRGB(hsl HSL) RGB {
	h := normalizeHue(hsl.H)
	s := math.Max(0, math.Min(100, hsl.S)) / 100.0
	l := math.Max(0, math.Min(100, hsl.L)) / 100.0

	c := (1.0 - math.Abs(2.0*l-1.0)) * s
	x := c * (1.0 - math.Abs(math.Mod(h/60.0, 2.0)-1.0))
	m := l - c/2.0

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: int(math.Round((r + m) * 255.0)),
		G: int(math.Round((g + m) * 255.0)),
		B: int(math.Round((b + m) * 255.0)),
	}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
