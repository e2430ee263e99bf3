package tui

import (
	"fmt"
	"strings"

	"github.com/AvengeMedia/themekit/internal/contrast"
	"github.com/AvengeMedia/themekit/internal/cssvars"
	"github.com/AvengeMedia/themekit/internal/report"
)

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("themekit preview"))
	b.WriteString("\n\n")

	if len(m.themes) == 0 {
		b.WriteString(m.styles.Subtle.Render("No themes found."))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range m.themes {
		cursor := "  "
		nameStyle := m.styles.Normal
		if i == m.cursor {
			cursor = "> "
			nameStyle = m.styles.Selected
		}

		label := t.Display
		if t.BuiltIn {
			label += m.styles.Subtle.Render(" (built-in)")
		}

		b.WriteString(cursor)
		b.WriteString(nameStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(m.swatchStrip(t.Name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewDetail() string {
	t := m.selected()
	if t == nil {
		return m.viewBrowse()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(t.Display))
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  %s variant", t.Variant)))
	b.WriteString("\n\n")

	vars, err := m.registry.Variables(t.Name)
	if err != nil {
		b.WriteString(m.styles.Error.Render(err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	for _, v := range cssvars.Colors(vars) {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", report.Swatch(v.Color.Hex), v.Color.Hex, m.styles.Subtle.Render(v.Name)))
	}

	pairs := contrast.AnalyzePairs(vars)
	if len(pairs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Title.Render("Contrast"))
		b.WriteString("\n")
		for _, p := range pairs {
			style := m.styles.Success
			if p.WCAG.Level == contrast.LevelFail {
				style = m.styles.Error
			} else if !p.WCAG.AA {
				style = m.styles.Warning
			}
			b.WriteString(fmt.Sprintf("  %s on %s  %.2f %s\n",
				p.Foreground.Name, p.Background.Name, p.Ratio, style.Render(string(p.WCAG.Level))))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) swatchStrip(themeName string) string {
	vars, err := m.registry.Variables(themeName)
	if err != nil {
		return ""
	}

	var b strings.Builder
	count := 0
	for _, v := range cssvars.Colors(vars) {
		b.WriteString(report.Swatch(v.Color.Hex))
		count++
		if count >= 8 {
			break
		}
	}
	return b.String()
}
