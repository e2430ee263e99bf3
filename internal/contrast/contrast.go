package contrast

import (
	"math"

	"github.com/AvengeMedia/themekit/internal/color"
	"github.com/AvengeMedia/themekit/internal/cssvars"
)

// Level is the highest WCAG tier a contrast ratio meets.
type Level string

const (
	LevelAAA     Level = "aaa"
	LevelAA      Level = "aa"
	LevelAALarge Level = "aa-large"
	LevelFail    Level = "fail"
)

// WCAG thresholds for normal and large text.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// WCAG holds the grading of a single contrast ratio.
type WCAG struct {
	AA    bool  `json:"aa"`
	AAA   bool  `json:"aaa"`
	Level Level `json:"level"`
}

// Pair is the result of comparing one foreground variable against one
// background variable. Recomputed per analysis, never stored.
type Pair struct {
	Foreground cssvars.Variable `json:"foreground"`
	Background cssvars.Variable `json:"background"`
	Ratio      float64          `json:"ratio"`
	WCAG       WCAG             `json:"wcag"`
}

// Luminance computes WCAG relative luminance from 8-bit sRGB.
func Luminance(c color.RGB) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio computes the WCAG contrast ratio between two colors. Defined
// via the lighter/darker luminance, so it is symmetric and always >= 1.
func Ratio(fg, bg *color.ParsedColor) float64 {
	lumFg := Luminance(fg.RGB)
	lumBg := Luminance(bg.RGB)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

// Classify grades a contrast ratio against the WCAG tiers. Level is the
// highest tier met for normal text, with aa-large as the consolation
// tier before fail.
func Classify(ratio float64) WCAG {
	w := WCAG{
		AA:  ratio >= ThresholdAANormal,
		AAA: ratio >= ThresholdAAANormal,
	}

	switch {
	case w.AAA:
		w.Level = LevelAAA
	case w.AA:
		w.Level = LevelAA
	case ratio >= ThresholdAALarge:
		w.Level = LevelAALarge
	default:
		w.Level = LevelFail
	}
	return w
}

// AnalyzePairs compares every foreground-role variable against every
// background-role variable. Pairing is driven by the semantic tag, not
// an all-pairs cross product: spacing tokens or two backgrounds against
// each other say nothing about text readability.
func AnalyzePairs(vars []cssvars.Variable) []Pair {
	var fgs, bgs []cssvars.Variable
	for _, v := range vars {
		if v.Color == nil {
			continue
		}
		switch v.Semantic {
		case cssvars.SemanticForeground, cssvars.SemanticAccent:
			fgs = append(fgs, v)
		case cssvars.SemanticBackground:
			bgs = append(bgs, v)
		}
	}

	pairs := make([]Pair, 0, len(fgs)*len(bgs))
	for _, fg := range fgs {
		for _, bg := range bgs {
			ratio := Ratio(fg.Color, bg.Color)
			pairs = append(pairs, Pair{
				Foreground: fg,
				Background: bg,
				Ratio:      ratio,
				WCAG:       Classify(ratio),
			})
		}
	}
	return pairs
}
