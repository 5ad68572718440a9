package domain

import "math"

// ============================================================================
// Geometry Model
// ============================================================================

// MinZoneSize is the smallest width or height a zone box may ever have.
const MinZoneSize = 50.0

// DefaultZoneSize is the side length of a freshly added zone.
const DefaultZoneSize = 100.0

// Shape is the outline of a branding zone.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
)

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s == ShapeRectangle || s == ShapeCircle
}

// Point is a position in image-pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box is the canonical axis-aligned placement of a zone, relative to the
// displayed base image. Circles are stored as their bounding square.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the visual center of the box.
func (b Box) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Radius returns the radius of the circle inscribed in the box.
func (b Box) Radius() float64 {
	return math.Min(b.Width, b.Height) / 2
}

// Transform is the result of folding an interactive handle's scale into a box.
// ResetHandle tells the editing widget to set its own scale back to 1, since
// scale is transient and never persisted.
type Transform struct {
	Box         Box  `json:"box"`
	ResetHandle bool `json:"reset_handle"`
}

// ApplyRectangleTransform multiplies width and height by the scale factors,
// keeps the position, and clamps both sides to MinZoneSize.
func ApplyRectangleTransform(box Box, scaleX, scaleY float64) Transform {
	box.Width = clampSize(box.Width * scaleX)
	box.Height = clampSize(box.Height * scaleY)
	return Transform{Box: box, ResetHandle: true}
}

// ApplyCircleTransform scales a circle uniformly around its center and
// returns its bounding square. The diameter is clamped to MinZoneSize and the
// square stays centered on the original center.
func ApplyCircleTransform(center Point, radius, scale float64) Transform {
	newRadius := radius * scale
	diameter := clampSize(2 * newRadius)
	newRadius = diameter / 2

	return Transform{
		Box: Box{
			X:      clampPosition(center.X-newRadius, 0),
			Y:      clampPosition(center.Y-newRadius, 0),
			Width:  diameter,
			Height: diameter,
		},
		ResetHandle: true,
	}
}

// UniformScale collapses two axis scales into the single factor used for
// circles, so a circle never becomes an ellipse.
func UniformScale(scaleX, scaleY float64) float64 {
	return math.Max(scaleX, scaleY)
}

// TransformBox dispatches to the shape-specific transform.
func TransformBox(shape Shape, box Box, scaleX, scaleY float64) Transform {
	if shape == ShapeCircle {
		return ApplyCircleTransform(box.Center(), box.Radius(), UniformScale(scaleX, scaleY))
	}
	return ApplyRectangleTransform(box, scaleX, scaleY)
}

// MoveBox translates a box without resizing it. Positions saturate at the
// largest finite value.
func MoveBox(box Box, dx, dy float64) Box {
	box.X = clampPosition(box.X+dx, box.X)
	box.Y = clampPosition(box.Y+dy, box.Y)
	return box
}

// NormalizeBox enforces the shape invariants on an arbitrary box: circles are
// squared on their larger side and every side is clamped to MinZoneSize.
func NormalizeBox(shape Shape, box Box) Box {
	if shape == ShapeCircle && box.Width != box.Height {
		side := math.Max(box.Width, box.Height)
		box.Width, box.Height = side, side
	}
	box.Width = clampSize(box.Width)
	box.Height = clampSize(box.Height)
	return box
}

// clampSize raises NaN and sub-minimum sizes to MinZoneSize and caps
// overflowed sizes at math.MaxFloat64.
func clampSize(v float64) float64 {
	switch {
	case !(v >= MinZoneSize):
		return MinZoneSize
	case math.IsInf(v, 1):
		return math.MaxFloat64
	}
	return v
}

// clampPosition saturates an overflowed coordinate and replaces NaN with
// fallback, so a box always stays JSON-encodable.
func clampPosition(v, fallback float64) float64 {
	switch {
	case math.IsNaN(v):
		return fallback
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
