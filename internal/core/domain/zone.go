package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ============================================================================
// Zone
// ============================================================================

// Zone is a branding placement region on the product image.
type Zone struct {
	ID     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Shape  Shape     `json:"shape"`
	Box    Box       `json:"box"`
	Method string    `json:"method"`
}

// NewZone creates a zone with a fresh id. The box is normalized for the shape.
func NewZone(label string, shape Shape, box Box, method string) (Zone, error) {
	if !shape.Valid() {
		return Zone{}, ErrInvalidShape
	}
	if strings.TrimSpace(method) == "" {
		return Zone{}, ErrInvalidMethod
	}

	return Zone{
		ID:     uuid.New(),
		Label:  label,
		Shape:  shape,
		Box:    NormalizeBox(shape, box),
		Method: method,
	}, nil
}

// DefaultZoneLabel returns the "Zone N" label for the n-th zone (1-based).
func DefaultZoneLabel(n int) string {
	return fmt.Sprintf("Zone %d", n)
}

// ZoneUpdate is a partial update; nil fields are left untouched.
type ZoneUpdate struct {
	Label  *string
	Shape  *Shape
	Method *string
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
}

// Apply merges u into a copy of z and re-validates the size invariant.
func (z Zone) Apply(u ZoneUpdate) (Zone, error) {
	if u.Label != nil {
		if strings.TrimSpace(*u.Label) == "" {
			return z, ErrInvalidLabel
		}
		z.Label = *u.Label
	}
	if u.Shape != nil {
		if !u.Shape.Valid() {
			return z, ErrInvalidShape
		}
		z.Shape = *u.Shape
	}
	if u.Method != nil {
		if strings.TrimSpace(*u.Method) == "" {
			return z, ErrInvalidMethod
		}
		z.Method = *u.Method
	}
	if u.X != nil {
		z.Box.X = clampPosition(*u.X, z.Box.X)
	}
	if u.Y != nil {
		z.Box.Y = clampPosition(*u.Y, z.Box.Y)
	}
	if u.Width != nil {
		z.Box.Width = *u.Width
	}
	if u.Height != nil {
		z.Box.Height = *u.Height
	}

	// a circle resized along one side keeps that side as its diameter
	if z.Shape == ShapeCircle {
		switch {
		case u.Width != nil && u.Height == nil:
			z.Box.Height = z.Box.Width
		case u.Height != nil && u.Width == nil:
			z.Box.Width = z.Box.Height
		}
	}

	z.Box = NormalizeBox(z.Shape, z.Box)
	return z, nil
}

// ============================================================================
// Logo
// ============================================================================

// Placement is where a logo sits, in the same coordinate space as zone boxes.
// Rotation is in degrees.
type Placement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// Logo is an image instance bound to at most one zone. ZoneID is uuid.Nil
// when the logo is not bound.
type Logo struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Placement Placement `json:"placement"`
	ZoneID    uuid.UUID `json:"zone_id"`
}

// Bound reports whether the logo belongs to a zone.
func (l Logo) Bound() bool {
	return l.ZoneID != uuid.Nil
}

// LogoUpdate is a partial placement update; nil fields are left untouched.
type LogoUpdate struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
}

// Apply merges u into a copy of l.
func (l Logo) Apply(u LogoUpdate) Logo {
	if u.X != nil {
		l.Placement.X = *u.X
	}
	if u.Y != nil {
		l.Placement.Y = *u.Y
	}
	if u.Width != nil && *u.Width > 0 {
		l.Placement.Width = *u.Width
	}
	if u.Height != nil && *u.Height > 0 {
		l.Placement.Height = *u.Height
	}
	if u.Rotation != nil {
		l.Placement.Rotation = *u.Rotation
	}
	return l
}
