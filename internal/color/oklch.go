package color

import "math"

// OKLab reference matrices from Björn Ottosson's derivation. The
// coefficients are fixed and must not be re-derived at runtime.

// OklchToRGB converts OKLCH (l 0-1, c >= 0, h degrees) to 8-bit sRGB.
// Out-of-gamut channels are clamped, not gamut-mapped.
func OklchToRGB(l, c, h float64) RGB {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)
	return oklabToRGB(l, a, b)
}

func oklabToRGB(l, a, b float64) RGB {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	// Cube to invert the cube-root nonlinearity applied in the forward
	// direction, yielding cone responses.
	lms1 := lp * lp * lp
	lms2 := mp * mp * mp
	lms3 := sp * sp * sp

	r := +4.0767416621*lms1 - 3.3077115913*lms2 + 0.2309699292*lms3
	g := -1.2684380046*lms1 + 2.6097574011*lms2 - 0.3413193965*lms3
	bb := -0.0041960863*lms1 - 0.7034186147*lms2 + 1.7076147010*lms3

	return RGB{
		R: int(math.Round(gammaEncode(r) * 255.0)),
		G: int(math.Round(gammaEncode(g) * 255.0)),
		B: int(math.Round(gammaEncode(bb) * 255.0)),
	}
}

// RGBToOklch is the approximate inverse of OklchToRGB. Lossy through
// 8-bit rounding, but close enough for round-trip verification and
// deriving OKLCH from hex-authored colors.
func RGBToOklch(c RGB) OKLCH {
	r := gammaDecode(float64(clamp255(c.R)) / 255.0)
	g := gammaDecode(float64(clamp255(c.G)) / 255.0)
	b := gammaDecode(float64(clamp255(c.B)) / 255.0)

	lms1 := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	lms2 := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	lms3 := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(lms1)
	mp := math.Cbrt(lms2)
	sp := math.Cbrt(lms3)

	l := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	chroma := math.Hypot(a, bb)
	hue := 0.0
	// Hue is meaningless at zero chroma; report 0 like CSS does.
	if chroma > 1e-7 {
		hue = normalizeHue(math.Atan2(bb, a) * 180.0 / math.Pi)
	} else {
		chroma = 0
	}

	return OKLCH{L: math.Max(0, math.Min(1, l)), C: chroma, H: hue}
}

func gammaEncode(v float64) float64 {
	v = math.Max(0, math.Min(1, v))
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return 12.92 * v
}

func gammaDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
