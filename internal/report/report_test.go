package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AvengeMedia/themekit/internal/blindness"
	"github.com/AvengeMedia/themekit/internal/color"
	"github.com/AvengeMedia/themekit/internal/contrast"
	"github.com/AvengeMedia/themekit/internal/cssvars"
)

const testCSS = `:root {
	--background: #1a1a1a;
	--foreground: #ffffff;
	--accent: oklch(0.7 0.15 250);
	--radius: 4px;
}`

func TestVariables(t *testing.T) {
	vars := cssvars.Parse(testCSS)
	out := Variables(vars)

	assert.Contains(t, out, "--background")
	assert.Contains(t, out, "--radius")
	assert.Contains(t, out, "color")
	assert.Contains(t, out, "NAME")
}

func TestContrast(t *testing.T) {
	pairs := contrast.AnalyzePairs(cssvars.Parse(testCSS))
	out := Contrast(pairs)

	// #ffffff on #1a1a1a: luminances 1.0 and ~0.0103, ratio 17.40.
	assert.Contains(t, out, "--foreground on --background")
	assert.Contains(t, out, "17.40")
	assert.Contains(t, out, "aaa")
}

func TestContrastEmpty(t *testing.T) {
	out := Contrast(nil)
	assert.Contains(t, out, "No foreground/background pairs")
}

func TestSimulation(t *testing.T) {
	results := blindness.Simulate(cssvars.Parse(testCSS), blindness.Protanopia)
	out := Simulation(results, blindness.Protanopia)

	assert.Contains(t, out, "protanopia")
	assert.Contains(t, out, "--accent")
	assert.Contains(t, out, "DELTA-E")
}

func TestColor(t *testing.T) {
	c := color.Parse("oklch(1 0 0)")
	out := Color(c)

	assert.Contains(t, out, "#ffffff")
	assert.Contains(t, out, "rgb(255, 255, 255)")
	assert.Contains(t, out, "oklch")
}
