package cssvars

import (
	"regexp"
	"strings"

	"github.com/AvengeMedia/themekit/internal/color"
)

// Category buckets a custom property by what it controls.
type Category string

const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryTypography Category = "typography"
	CategoryShadow     Category = "shadow"
	CategoryOther      Category = "other"
)

// Semantic roles inferred from variable names. Contrast analysis pairs
// foreground-role variables against background-role ones.
const (
	SemanticForeground = "foreground"
	SemanticBackground = "background"
	SemanticAccent     = "accent"
	SemanticBorder     = "border"
	SemanticMuted      = "muted"
)

// Variable is one parsed CSS custom-property declaration. Built once
// per analysis pass and never mutated.
type Variable struct {
	Name     string             `json:"name"`
	Value    string             `json:"value"`
	Color    *color.ParsedColor `json:"color,omitempty"`
	Category Category           `json:"category"`
	Semantic string             `json:"semantic,omitempty"`
}

var (
	commentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	declRe    = regexp.MustCompile(`--([a-zA-Z0-9_-]+)\s*:\s*([^;}]+)[;}]`)
)

// Parse extracts custom-property declarations from CSS text. It scans
// declarations anywhere they appear (:root, [data-theme=...], media
// blocks), strips comments first, and parses each value as a color
// where possible. Non-color values keep Color == nil and pass through
// verbatim.
func Parse(css string) []Variable {
	css = commentRe.ReplaceAllString(css, "")

	matches := declRe.FindAllStringSubmatch(css, -1)
	vars := make([]Variable, 0, len(matches))
	seen := make(map[string]int)

	for _, m := range matches {
		name := "--" + m[1]
		value := strings.TrimSpace(m[2])

		v := Variable{
			Name:     name,
			Value:    value,
			Color:    color.Parse(value),
			Semantic: semanticRole(name),
		}
		v.Category = categorize(v)

		// Later declarations win, matching the CSS cascade.
		if idx, ok := seen[name]; ok {
			vars[idx] = v
			continue
		}
		seen[name] = len(vars)
		vars = append(vars, v)
	}

	return vars
}

// Colors filters to variables that parsed as colors.
func Colors(vars []Variable) []Variable {
	out := make([]Variable, 0, len(vars))
	for _, v := range vars {
		if v.Color != nil {
			out = append(out, v)
		}
	}
	return out
}

func categorize(v Variable) Category {
	if v.Color != nil {
		return CategoryColor
	}

	name := strings.ToLower(v.Name)
	value := strings.ToLower(v.Value)

	switch {
	case strings.Contains(name, "shadow"):
		return CategoryShadow
	case containsAny(name, "font", "text-", "letter", "line-height", "leading", "tracking"):
		return CategoryTypography
	case containsAny(name, "spacing", "space", "gap", "margin", "padding", "radius", "size", "width", "height", "inset"):
		return CategorySpacing
	case containsAny(value, "rem", "em", "px", "vh", "vw", "%"):
		return CategorySpacing
	default:
		return CategoryOther
	}
}

func semanticRole(name string) string {
	n := strings.ToLower(strings.TrimPrefix(name, "--"))

	switch {
	case n == "fg":
		return SemanticForeground
	case n == "bg":
		return SemanticBackground
	case containsAny(n, "foreground", "-fg", "fg-", "text", "on-"):
		return SemanticForeground
	case containsAny(n, "background", "-bg", "bg-", "surface"):
		return SemanticBackground
	case containsAny(n, "muted", "subtle", "disabled"):
		return SemanticMuted
	case containsAny(n, "border", "outline", "ring", "divider"):
		return SemanticBorder
	case containsAny(n, "accent", "primary", "secondary", "brand", "link"):
		return SemanticAccent
	default:
		return ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
