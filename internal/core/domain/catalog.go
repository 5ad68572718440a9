package domain

// DefaultBrandingMethod is used when the catalog has no methods for a category.
const DefaultBrandingMethod = "UV Print"

// ZoneTemplate is a predefined zone for a product category.
type ZoneTemplate struct {
	Label  string  `json:"label" yaml:"label"`
	Shape  Shape   `json:"shape,omitempty" yaml:"shape,omitempty"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Box returns the template's geometry.
func (t ZoneTemplate) Box() Box {
	return Box{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// FirstMethod returns the default branding method from an ordered list.
func FirstMethod(methods []string) string {
	for _, m := range methods {
		if m != "" {
			return m
		}
	}
	return DefaultBrandingMethod
}
