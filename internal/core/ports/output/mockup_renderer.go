package ports

import "context"

// RenderZone is the zone geometry sent to the rendering service.
type RenderZone struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Label  string  `json:"label"`
}

// RenderRequest asks for one composite of a logo on the base image.
type RenderRequest struct {
	BaseImageURL string       `json:"base_image_url"`
	LogoURL      string       `json:"logo_url"`
	Zones        []RenderZone `json:"zones"`
	Method       string       `json:"method"`
}

// MockupRenderer is the external mockup rendering service.
type MockupRenderer interface {
	// RenderMockup returns the URL of the rendered composite. Timeouts are
	// the implementation's concern.
	RenderMockup(ctx context.Context, req RenderRequest) (string, error)
}
