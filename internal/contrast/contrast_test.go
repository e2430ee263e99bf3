package contrast

import (
	"math"
	"testing"

	"github.com/AvengeMedia/themekit/internal/color"
	"github.com/AvengeMedia/themekit/internal/cssvars"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name     string
		input    color.RGB
		expected float64
	}{
		{name: "black", input: color.RGB{R: 0, G: 0, B: 0}, expected: 0.0},
		{name: "white", input: color.RGB{R: 255, G: 255, B: 255}, expected: 1.0},
		{name: "red", input: color.RGB{R: 255, G: 0, B: 0}, expected: 0.2126},
		{name: "green", input: color.RGB{R: 0, G: 255, B: 0}, expected: 0.7152},
		{name: "blue", input: color.RGB{R: 0, G: 0, B: 255}, expected: 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Luminance(tt.input)
			if !floatEqual(result, tt.expected) {
				t.Errorf("Luminance(%v) = %f, expected %f", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	white := color.FromRGB(255, 255, 255)
	black := color.FromRGB(0, 0, 0)
	gray := color.FromRGB(128, 128, 128)

	tests := []struct {
		name     string
		fg, bg   *color.ParsedColor
		expected float64
	}{
		{name: "black on white", fg: black, bg: white, expected: 21.0},
		{name: "white on black", fg: white, bg: black, expected: 21.0},
		{name: "same color", fg: gray, bg: gray, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Ratio(tt.fg, tt.bg)
			if !floatEqual(result, tt.expected) {
				t.Errorf("Ratio = %f, expected %f", result, tt.expected)
			}
		})
	}
}

func TestRatioSymmetric(t *testing.T) {
	a := color.FromOklch(0.62, 0.2, 25)
	b := color.FromOklch(0.95, 0.02, 100)

	if !floatEqual(Ratio(a, b), Ratio(b, a)) {
		t.Errorf("Ratio is not symmetric: %f vs %f", Ratio(a, b), Ratio(b, a))
	}
	if Classify(Ratio(a, b)) != Classify(Ratio(b, a)) {
		t.Error("Classify over swapped arguments disagrees")
	}
}

func TestRatioAlwaysAtLeastOne(t *testing.T) {
	colors := []*color.ParsedColor{
		color.FromRGB(0, 0, 0),
		color.FromRGB(255, 255, 255),
		color.FromRGB(12, 200, 99),
		color.FromOklch(0.5, 0.1, 300),
	}
	for _, fg := range colors {
		for _, bg := range colors {
			if r := Ratio(fg, bg); r < 1.0 {
				t.Errorf("Ratio(%s, %s) = %f, expected >= 1", fg.Hex, bg.Hex, r)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected WCAG
	}{
		{
			name:     "maximum contrast",
			ratio:    21.0,
			expected: WCAG{AA: true, AAA: true, Level: LevelAAA},
		},
		{
			name:     "aaa boundary",
			ratio:    7.0,
			expected: WCAG{AA: true, AAA: true, Level: LevelAAA},
		},
		{
			name:     "aa only",
			ratio:    4.5,
			expected: WCAG{AA: true, AAA: false, Level: LevelAA},
		},
		{
			name:     "just below aa",
			ratio:    4.49,
			expected: WCAG{AA: false, AAA: false, Level: LevelAALarge},
		},
		{
			name:     "large text floor",
			ratio:    3.0,
			expected: WCAG{AA: false, AAA: false, Level: LevelAALarge},
		},
		{
			name:     "self contrast",
			ratio:    1.0,
			expected: WCAG{AA: false, AAA: false, Level: LevelFail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.ratio)
			if result != tt.expected {
				t.Errorf("Classify(%f) = %+v, expected %+v", tt.ratio, result, tt.expected)
			}
		})
	}
}

func TestAnalyzePairs(t *testing.T) {
	css := `:root {
		--background: #1a1a1a;
		--surface-bg: #222222;
		--foreground: #ffffff;
		--accent: oklch(0.7 0.15 250);
		--border: #333333;
		--spacing-md: 1rem;
	}`

	vars := cssvars.Parse(css)
	pairs := AnalyzePairs(vars)

	// 2 foreground-role (foreground, accent) x 2 background-role.
	if len(pairs) != 4 {
		t.Fatalf("got %d pairs, expected 4", len(pairs))
	}

	for _, p := range pairs {
		if p.Background.Semantic != cssvars.SemanticBackground {
			t.Errorf("pair background %s has semantic %q", p.Background.Name, p.Background.Semantic)
		}
		if p.Ratio < 1.0 {
			t.Errorf("pair %s/%s ratio %f < 1", p.Foreground.Name, p.Background.Name, p.Ratio)
		}
		if p.WCAG != Classify(p.Ratio) {
			t.Errorf("pair %s/%s wcag mismatch", p.Foreground.Name, p.Background.Name)
		}
	}

	// White on near-black must grade AAA.
	found := false
	for _, p := range pairs {
		if p.Foreground.Name == "--foreground" && p.Background.Name == "--background" {
			found = true
			if p.WCAG.Level != LevelAAA {
				t.Errorf("white on near-black graded %s, expected aaa", p.WCAG.Level)
			}
		}
	}
	if !found {
		t.Error("foreground/background pair missing")
	}
}

func TestAnalyzePairsNoRoles(t *testing.T) {
	vars := cssvars.Parse(`:root { --radius: 4px; --shadow-sm: 0 1px 2px black; }`)
	if pairs := AnalyzePairs(vars); len(pairs) != 0 {
		t.Errorf("got %d pairs from role-less variables, expected 0", len(pairs))
	}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
