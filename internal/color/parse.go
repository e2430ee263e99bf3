package color

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	oklchRe = regexp.MustCompile(`(?i)^oklch\(\s*([\d.]+%?)\s+([\d.]+)\s+([\d.]+)(?:deg)?\s*(?:/\s*([\d.]+%?))?\s*\)$`)
	hexRe   = regexp.MustCompile(`(?i)^#(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	rgbRe   = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*[, ]\s*(\d{1,3})\s*[, ]\s*(\d{1,3})\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
	hslRe   = regexp.MustCompile(`(?i)^hsla?\(\s*([\d.]+)(?:deg)?\s*[, ]\s*([\d.]+)%\s*[, ]\s*([\d.]+)%\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
)

// Parse converts a CSS color literal into a ParsedColor. It understands
// oklch(), #rgb/#rrggbb, rgb()/rgba() and hsl()/hsla(). Anything else
// (var() references, gradients, keywords) returns nil: callers must
// treat the value as non-convertible and pass it through verbatim.
func Parse(s string) *ParsedColor {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if l, c, h, alpha, ok := ParseOklch(s); ok {
		p := FromOklch(l, c, h)
		p.Alpha = alpha
		return p
	}
	if rgb, ok := parseHex(s); ok {
		return FromRGB(rgb.R, rgb.G, rgb.B)
	}
	if rgb, alpha, ok := parseRGBFunc(s); ok {
		p := FromRGB(rgb.R, rgb.G, rgb.B)
		p.Alpha = alpha
		return p
	}
	if hsl, alpha, ok := parseHSLFunc(s); ok {
		rgb := HSLToRGB(hsl)
		p := FromRGB(rgb.R, rgb.G, rgb.B)
		p.Alpha = alpha
		return p
	}

	return nil
}

// ParseOklch parses an oklch() literal. Lightness may be a number or a
// percentage, hue an optional deg suffix, alpha an optional /-separated
// number or percentage. A malformed string reports ok=false.
func ParseOklch(s string) (l, c, h, alpha float64, ok bool) {
	m := oklchRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, 0, 0, false
	}

	l, ok = parseNumberOrPercent(m[1])
	if !ok {
		return 0, 0, 0, 0, false
	}

	c, err := strconv.ParseFloat(m[2], 64)
	if err != nil || c < 0 {
		return 0, 0, 0, 0, false
	}

	h, err = strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, 0, 0, 0, false
	}

	alpha = 1.0
	if m[4] != "" {
		alpha, ok = parseNumberOrPercent(m[4])
		if !ok {
			return 0, 0, 0, 0, false
		}
	}

	if l < 0 || l > 1 {
		return 0, 0, 0, 0, false
	}
	return l, c, normalizeHue(h), alpha, true
}

func parseHex(s string) (RGB, bool) {
	if !hexRe.MatchString(s) {
		return RGB{}, false
	}

	hex := strings.ToLower(s[1:])
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

func parseRGBFunc(s string) (RGB, float64, bool) {
	m := rgbRe.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, 0, false
	}

	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])
	if r > 255 || g > 255 || b > 255 {
		return RGB{}, 0, false
	}

	alpha := 1.0
	if m[4] != "" {
		var ok bool
		alpha, ok = parseNumberOrPercent(m[4])
		if !ok {
			return RGB{}, 0, false
		}
	}
	return RGB{R: r, G: g, B: b}, alpha, true
}

func parseHSLFunc(s string) (HSL, float64, bool) {
	m := hslRe.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, 0, false
	}

	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)
	if sat > 100 || l > 100 {
		return HSL{}, 0, false
	}

	alpha := 1.0
	if m[4] != "" {
		var ok bool
		alpha, ok = parseNumberOrPercent(m[4])
		if !ok {
			return HSL{}, 0, false
		}
	}
	return HSL{H: normalizeHue(h), S: sat, L: l}, alpha, true
}

func parseNumberOrPercent(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return v / 100.0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
