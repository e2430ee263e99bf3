package blindness

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AvengeMedia/themekit/internal/color"
	"github.com/AvengeMedia/themekit/internal/cssvars"
)

// Type is a simulated color vision deficiency.
type Type string

const (
	Protanopia    Type = "protanopia"
	Deuteranopia  Type = "deuteranopia"
	Tritanopia    Type = "tritanopia"
	Achromatopsia Type = "achromatopsia"
)

// Types lists the supported deficiencies in display order.
func Types() []Type {
	return []Type{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// Valid reports whether t names a supported deficiency.
func (t Type) Valid() bool {
	switch t {
	case Protanopia, Deuteranopia, Tritanopia, Achromatopsia:
		return true
	}
	return false
}

// JNDThreshold is the CIELAB delta-E just-noticeable-difference cutoff
// used to call two colors distinguishable. 2.3 is the commonly cited
// value (Mahy et al. 1994).
const JNDThreshold = 2.3

// Result is one advisory row: how a color shifts under a simulated
// deficiency and whether the shift stays perceptible.
type Result struct {
	Variable        cssvars.Variable   `json:"variable"`
	Original        *color.ParsedColor `json:"original"`
	Simulated       *color.ParsedColor `json:"simulated"`
	DeltaE          float64            `json:"deltaE"`
	Distinguishable bool               `json:"distinguishable"`
}

// Simplified deficiency matrices applied in linear RGB. These are the
// reduced single-matrix forms, not full Brettel projections; good
// enough for an advisory report.
var matrices = map[Type][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	Tritanopia: {
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
}

// Apply transforms a single color through the deficiency matrix for t.
func Apply(c *color.ParsedColor, t Type) *color.ParsedColor {
	m, ok := matrices[t]
	if !ok {
		return c
	}

	r := linearize(float64(c.RGB.R) / 255.0)
	g := linearize(float64(c.RGB.G) / 255.0)
	b := linearize(float64(c.RGB.B) / 255.0)

	sr := m[0][0]*r + m[0][1]*g + m[0][2]*b
	sg := m[1][0]*r + m[1][1]*g + m[1][2]*b
	sb := m[2][0]*r + m[2][1]*g + m[2][2]*b

	return color.FromRGB(
		int(math.Round(delinearize(sr)*255.0)),
		int(math.Round(delinearize(sg)*255.0)),
		int(math.Round(delinearize(sb)*255.0)),
	)
}

// Simulate runs every color variable through the deficiency transform
// and measures the perceptual shift. Variables without a parsed color
// are skipped.
func Simulate(vars []cssvars.Variable, t Type) []Result {
	results := make([]Result, 0, len(vars))
	for _, v := range vars {
		if v.Color == nil {
			continue
		}

		sim := Apply(v.Color, t)
		de := DeltaE(v.Color, sim)
		results = append(results, Result{
			Variable:        v,
			Original:        v.Color,
			Simulated:       sim,
			DeltaE:          de,
			Distinguishable: de > JNDThreshold,
		})
	}
	return results
}

// DeltaE computes the CIELAB color difference between two colors.
// go-colorful scales L to 0-1, so the distance is multiplied by 100 to
// land on the conventional delta-E scale.
func DeltaE(a, b *color.ParsedColor) float64 {
	ca := colorful.Color{R: float64(a.RGB.R) / 255.0, G: float64(a.RGB.G) / 255.0, B: float64(a.RGB.B) / 255.0}
	cb := colorful.Color{R: float64(b.RGB.R) / 255.0, G: float64(b.RGB.G) / 255.0, B: float64(b.RGB.B) / 255.0}
	return ca.DistanceLab(cb) * 100.0
}

func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func delinearize(v float64) float64 {
	v = math.Max(0, math.Min(1, v))
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return 12.92 * v
}
