package color

import (
	"math"
	"testing"
)

func TestOklchToRGB(t *testing.T) {
	tests := []struct {
		name     string
		l, c, h  float64
		expected RGB
	}{
		{
			name:     "white",
			l:        1.0,
			expected: RGB{R: 255, G: 255, B: 255},
		},
		{
			name:     "black",
			l:        0.0,
			expected: RGB{R: 0, G: 0, B: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OklchToRGB(tt.l, tt.c, tt.h)
			if result != tt.expected {
				t.Errorf("OklchToRGB(%v, %v, %v) = %v, expected %v", tt.l, tt.c, tt.h, result, tt.expected)
			}
		})
	}
}

func TestOklchToRGBNeutralAxis(t *testing.T) {
	// Zero chroma must produce equal channels regardless of hue.
	for _, h := range []float64{0, 90, 180, 270} {
		rgb := OklchToRGB(0.6, 0, h)
		if rgb.R != rgb.G || rgb.G != rgb.B {
			t.Errorf("OklchToRGB(0.6, 0, %v) = %v, expected gray", h, rgb)
		}
	}
}

func TestOklchToRGBClampsOutOfGamut(t *testing.T) {
	// Extreme chroma pushes linear values outside [0,1]; channels must
	// still land in [0,255].
	rgb := OklchToRGB(0.5, 0.5, 150)
	for _, v := range []int{rgb.R, rgb.G, rgb.B} {
		if v < 0 || v > 255 {
			t.Errorf("channel %d out of range in %v", v, rgb)
		}
	}
}

func TestRGBToOklchRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		l, c, h float64
	}{
		{name: "white", l: 1.0, c: 0, h: 0},
		{name: "black", l: 0.0, c: 0, h: 0},
		{name: "mid blue", l: 0.55, c: 0.15, h: 250},
		{name: "warm red", l: 0.62, c: 0.2, h: 25},
		{name: "green", l: 0.7, c: 0.14, h: 150},
		{name: "low chroma violet", l: 0.45, c: 0.05, h: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgb := OklchToRGB(tt.l, tt.c, tt.h)
			back := RGBToOklch(rgb)

			// Lossy through 8-bit rounding and gamma clamp.
			if math.Abs(back.L-tt.l) > 0.01 {
				t.Errorf("L round trip: got %v, expected %v", back.L, tt.l)
			}
			if math.Abs(back.C-tt.c) > 0.01 {
				t.Errorf("C round trip: got %v, expected %v", back.C, tt.c)
			}
			if tt.c > 0.01 {
				diff := math.Abs(back.H - tt.h)
				if diff > 180 {
					diff = 360 - diff
				}
				if diff > 2.0 {
					t.Errorf("H round trip: got %v, expected %v", back.H, tt.h)
				}
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name     string
		input    RGB
		expected HSL
	}{
		{
			name:     "black",
			input:    RGB{R: 0, G: 0, B: 0},
			expected: HSL{H: 0, S: 0, L: 0},
		},
		{
			name:     "white",
			input:    RGB{R: 255, G: 255, B: 255},
			expected: HSL{H: 0, S: 0, L: 100},
		},
		{
			name:     "red",
			input:    RGB{R: 255, G: 0, B: 0},
			expected: HSL{H: 0, S: 100, L: 50},
		},
		{
			name:     "green",
			input:    RGB{R: 0, G: 255, B: 0},
			expected: HSL{H: 120, S: 100, L: 50},
		},
		{
			name:     "blue",
			input:    RGB{R: 0, G: 0, B: 255},
			expected: HSL{H: 240, S: 100, L: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RGBToHSL(tt.input)
			if !floatEqual(result.H, tt.expected.H) || !floatEqual(result.S, tt.expected.S) || !floatEqual(result.L, tt.expected.L) {
				t.Errorf("RGBToHSL(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	testCases := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 98, G: 86, B: 144},
		{R: 128, G: 128, B: 128},
	}

	for _, rgb := range testCases {
		t.Run(rgb.Hex(), func(t *testing.T) {
			back := HSLToRGB(RGBToHSL(rgb))
			if abs(back.R-rgb.R) > 1 || abs(back.G-rgb.G) > 1 || abs(back.B-rgb.B) > 1 {
				t.Errorf("round trip %v -> %v failed", rgb, back)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name     string
		input    RGB
		expected string
	}{
		{name: "white", input: RGB{R: 255, G: 255, B: 255}, expected: "#ffffff"},
		{name: "black", input: RGB{R: 0, G: 0, B: 0}, expected: "#000000"},
		{name: "clamped above", input: RGB{R: 300, G: 128, B: 128}, expected: "#ff8080"},
		{name: "clamped below", input: RGB{R: -5, G: 128, B: 128}, expected: "#008080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Hex(); got != tt.expected {
				t.Errorf("Hex(%v) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
