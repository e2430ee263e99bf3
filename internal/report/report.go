package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/themekit/internal/blindness"
	"github.com/AvengeMedia/themekit/internal/color"
	"github.com/AvengeMedia/themekit/internal/contrast"
	"github.com/AvengeMedia/themekit/internal/cssvars"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Swatch renders a small colored block for terminal output.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// Variables renders the parsed variable listing.
func Variables(vars []cssvars.Variable) string {
	var b strings.Builder

	nameWidth := len("NAME")
	for _, v := range vars {
		if len(v.Name) > nameWidth {
			nameWidth = len(v.Name)
		}
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-10s  %-10s  %s", nameWidth, "NAME", "CATEGORY", "SEMANTIC", "VALUE")))
	b.WriteString("\n")

	for _, v := range vars {
		sem := v.Semantic
		if sem == "" {
			sem = "-"
		}
		line := fmt.Sprintf("%-*s  %-10s  %-10s  %s", nameWidth, v.Name, v.Category, sem, v.Value)
		if v.Color != nil {
			line += "  " + Swatch(v.Color.Hex)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// Contrast renders the WCAG pair analysis.
func Contrast(pairs []contrast.Pair) string {
	if len(pairs) == 0 {
		return subtleStyle.Render("No foreground/background pairs to analyze.") + "\n"
	}

	var b strings.Builder
	pairWidth := len("PAIR")
	for _, p := range pairs {
		if w := len(p.Foreground.Name) + len(p.Background.Name) + len(" on "); w > pairWidth {
			pairWidth = w
		}
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %7s  %-9s  %s", pairWidth, "PAIR", "RATIO", "LEVEL", "")))
	b.WriteString("\n")

	for _, p := range pairs {
		name := p.Foreground.Name + " on " + p.Background.Name
		level := levelStyle(p.WCAG.Level).Render(string(p.WCAG.Level))
		swatches := Swatch(p.Foreground.Color.Hex) + Swatch(p.Background.Color.Hex)
		b.WriteString(fmt.Sprintf("%-*s  %7.2f  %-9s  %s\n", pairWidth, name, p.Ratio, level, swatches))
	}

	return b.String()
}

// Simulation renders a color-vision-deficiency report.
func Simulation(results []blindness.Result, typ blindness.Type) string {
	if len(results) == 0 {
		return subtleStyle.Render("No color variables to simulate.") + "\n"
	}

	var b strings.Builder
	nameWidth := len("NAME")
	for _, r := range results {
		if len(r.Variable.Name) > nameWidth {
			nameWidth = len(r.Variable.Name)
		}
	}

	b.WriteString(headerStyle.Render(string(typ)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-9s  %-9s  %7s  %s", nameWidth, "NAME", "ORIGINAL", "SIMULATED", "DELTA-E", "DISTINCT")))
	b.WriteString("\n")

	for _, r := range results {
		distinct := passStyle.Render("yes")
		if !r.Distinguishable {
			distinct = warnStyle.Render("no")
		}
		b.WriteString(fmt.Sprintf("%-*s  %s %s  %s %s  %7.2f  %s\n",
			nameWidth, r.Variable.Name,
			r.Original.Hex, Swatch(r.Original.Hex),
			r.Simulated.Hex, Swatch(r.Simulated.Hex),
			r.DeltaE, distinct))
	}

	b.WriteString(subtleStyle.Render(fmt.Sprintf("distinct = delta-E above the %.1f noticeability cutoff; advisory only", blindness.JNDThreshold)))
	b.WriteString("\n")
	return b.String()
}

// Color renders every representation of a single parsed color.
func Color(c *color.ParsedColor) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", headerStyle.Render(c.Hex), Swatch(c.Hex)))
	b.WriteString(fmt.Sprintf("  oklch  oklch(%.4g %.4g %.4g)\n", c.OKLCH.L, c.OKLCH.C, c.OKLCH.H))
	b.WriteString(fmt.Sprintf("  rgb    rgb(%d, %d, %d)\n", c.RGB.R, c.RGB.G, c.RGB.B))
	b.WriteString(fmt.Sprintf("  hsl    hsl(%.0f, %.0f%%, %.0f%%)\n", c.HSL.H, c.HSL.S, c.HSL.L))
	if c.Alpha != 1.0 {
		b.WriteString(fmt.Sprintf("  alpha  %.2f\n", c.Alpha))
	}
	return b.String()
}

func levelStyle(l contrast.Level) lipgloss.Style {
	switch l {
	case contrast.LevelAAA, contrast.LevelAA:
		return passStyle
	case contrast.LevelAALarge:
		return warnStyle
	default:
		return failStyle
	}
}
