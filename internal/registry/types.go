package registry

// Variant tells integrations whether a theme is designed for light or
// dark surroundings.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
)

// Theme is one registered CSS custom-property set.
type Theme struct {
	Name    string
	Display string
	Variant Variant
	Author  string
	BuiltIn bool
	CSS     string
}
