package dto

import (
	"github.com/google/uuid"

	"branding-studio-service/internal/core/domain"
)

// ============================================================================
// Zone DTOs
// ============================================================================

// AddZoneRequest represents a request to add a zone centered in the canvas
type AddZoneRequest struct {
	Shape string `json:"shape" binding:"required,oneof=rectangle circle"`
}

// UpdateZoneRequest is a partial zone update
type UpdateZoneRequest struct {
	Label  *string  `json:"label"`
	Shape  *string  `json:"shape" binding:"omitempty,oneof=rectangle circle"`
	Method *string  `json:"method"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// ToZoneUpdate converts the request to a domain update
func (r UpdateZoneRequest) ToZoneUpdate() domain.ZoneUpdate {
	u := domain.ZoneUpdate{
		Label:  r.Label,
		Method: r.Method,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
	if r.Shape != nil {
		shape := domain.Shape(*r.Shape)
		u.Shape = &shape
	}
	return u
}

// TransformZoneRequest carries the interactive handle's scale factors
type TransformZoneRequest struct {
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`
}

// MoveZoneRequest carries a drag delta
type MoveZoneRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// DetectZonesRequest optionally overrides the workspace category
type DetectZonesRequest struct {
	Category string `json:"category"`
}

// ZoneResponse represents a zone
type ZoneResponse struct {
	ID     uuid.UUID    `json:"id"`
	Label  string       `json:"label"`
	Shape  domain.Shape `json:"shape"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Method string       `json:"method"`
}

// TransformZoneResponse is the resized zone plus the handle reset instruction
type TransformZoneResponse struct {
	Zone        ZoneResponse `json:"zone"`
	ResetHandle bool         `json:"reset_handle"`
}

// ListZonesResponse represents a zone collection
type ListZonesResponse struct {
	Items []ZoneResponse `json:"items"`
	Total int            `json:"total"`
}

// ToZoneResponse converts a domain zone to response DTO
func ToZoneResponse(z domain.Zone) ZoneResponse {
	return ZoneResponse{
		ID:     z.ID,
		Label:  z.Label,
		Shape:  z.Shape,
		X:      z.Box.X,
		Y:      z.Box.Y,
		Width:  z.Box.Width,
		Height: z.Box.Height,
		Method: z.Method,
	}
}

// ToZoneResponses converts a zone slice, never returning nil
func ToZoneResponses(zones []domain.Zone) []ZoneResponse {
	items := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		items = append(items, ToZoneResponse(z))
	}
	return items
}

// ============================================================================
// Logo DTOs
// ============================================================================

// AttachLogoRequest represents a request to place a logo on a zone
type AttachLogoRequest struct {
	URL string `json:"url" binding:"required"`
}

// UpdateLogoRequest is a partial placement update
type UpdateLogoRequest struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Rotation *float64 `json:"rotation"`
}

// ToLogoUpdate converts the request to a domain update
func (r UpdateLogoRequest) ToLogoUpdate() domain.LogoUpdate {
	return domain.LogoUpdate{
		X:        r.X,
		Y:        r.Y,
		Width:    r.Width,
		Height:   r.Height,
		Rotation: r.Rotation,
	}
}

// LogoResponse represents a placed logo
type LogoResponse struct {
	ID       uuid.UUID  `json:"id"`
	URL      string     `json:"url"`
	ZoneID   *uuid.UUID `json:"zone_id"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Rotation float64    `json:"rotation"`
}

// ToLogoResponse converts a domain logo to response DTO
func ToLogoResponse(l domain.Logo) LogoResponse {
	res := LogoResponse{
		ID:       l.ID,
		URL:      l.URL,
		X:        l.Placement.X,
		Y:        l.Placement.Y,
		Width:    l.Placement.Width,
		Height:   l.Placement.Height,
		Rotation: l.Placement.Rotation,
	}
	if l.Bound() {
		zoneID := l.ZoneID
		res.ZoneID = &zoneID
	}
	return res
}

// ToLogoResponses converts a logo slice, never returning nil
func ToLogoResponses(logos []domain.Logo) []LogoResponse {
	items := make([]LogoResponse, 0, len(logos))
	for _, l := range logos {
		items = append(items, ToLogoResponse(l))
	}
	return items
}
