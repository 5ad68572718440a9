package domain

import "github.com/google/uuid"

// MockupResult is one rendered composite returned by the rendering service.
// ImageURL is opaque to the engine.
type MockupResult struct {
	ZoneID    uuid.UUID `json:"zone_id"`
	ZoneLabel string    `json:"zone_label"`
	LogoID    uuid.UUID `json:"logo_id"`
	Method    string    `json:"method"`
	ImageURL  string    `json:"image_url"`
}

// MockupFailure records a render request that was dropped from the batch.
type MockupFailure struct {
	ZoneID    uuid.UUID `json:"zone_id"`
	ZoneLabel string    `json:"zone_label"`
	Error     string    `json:"error"`
}

// MockupBatch is the best-effort outcome of one generation run. Results are
// in zone declaration order.
type MockupBatch struct {
	Results  []MockupResult  `json:"results"`
	Count    int             `json:"count"`
	Failures []MockupFailure `json:"failures,omitempty"`
	Warning  string          `json:"warning,omitempty"`
}
