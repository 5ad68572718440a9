package dto

import (
	"time"

	"github.com/google/uuid"

	"branding-studio-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateWorkspaceRequest represents a request to open an editing workspace
type CreateWorkspaceRequest struct {
	Category     string  `json:"category" binding:"required"`
	BaseImageURL string  `json:"base_image_url" binding:"required"`
	CanvasWidth  float64 `json:"canvas_width" binding:"min=0"`
	CanvasHeight float64 `json:"canvas_height" binding:"min=0"`
	ABTesting    bool    `json:"ab_testing"`
}

// SetABTestingRequest toggles A/B testing
type SetABTestingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SelectionRequest focuses a zone or a logo; both empty clears the selection
type SelectionRequest struct {
	ZoneID *uuid.UUID `json:"zone_id"`
	LogoID *uuid.UUID `json:"logo_id"`
}

// ToSelection converts the request to a domain selection
func (r SelectionRequest) ToSelection() domain.Selection {
	var sel domain.Selection
	if r.ZoneID != nil {
		sel.ZoneID = *r.ZoneID
	}
	if r.LogoID != nil {
		sel.LogoID = *r.LogoID
	}
	return sel
}

// ============================================================================
// Response DTOs
// ============================================================================

// WorkspaceResponse represents a workspace with its working layout
type WorkspaceResponse struct {
	ID              uuid.UUID         `json:"id"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Category        string            `json:"category"`
	BaseImageURL    string            `json:"base_image_url"`
	Canvas          domain.Canvas     `json:"canvas"`
	Zones           []ZoneResponse    `json:"zones"`
	Logos           []LogoResponse    `json:"logos"`
	Selection       SelectionResponse `json:"selection"`
	ABTesting       bool              `json:"ab_testing"`
	ActiveVariantID uuid.UUID         `json:"active_variant_id"`
	Variants        []VariantSummary  `json:"variants"`
}

// SelectionResponse represents the focused element
type SelectionResponse struct {
	ZoneID *uuid.UUID `json:"zone_id,omitempty"`
	LogoID *uuid.UUID `json:"logo_id,omitempty"`
}

// ToWorkspaceResponse converts a domain workspace to response DTO
func ToWorkspaceResponse(ws *domain.Workspace) WorkspaceResponse {
	variants := make([]VariantSummary, 0, len(ws.Variants))
	for _, v := range ws.Variants {
		variants = append(variants, ToVariantSummary(v, ws.ActiveVariantID))
	}

	return WorkspaceResponse{
		ID:              ws.ID,
		CreatedAt:       ws.CreatedAt,
		UpdatedAt:       ws.UpdatedAt,
		Category:        ws.Category,
		BaseImageURL:    ws.BaseImageURL,
		Canvas:          ws.Canvas,
		Zones:           ToZoneResponses(ws.Layout.Zones),
		Logos:           ToLogoResponses(ws.Layout.Logos),
		Selection:       toSelectionResponse(ws.Selection),
		ABTesting:       ws.ABTesting,
		ActiveVariantID: ws.ActiveVariantID,
		Variants:        variants,
	}
}

func toSelectionResponse(sel domain.Selection) SelectionResponse {
	var out SelectionResponse
	if sel.ZoneID != uuid.Nil {
		id := sel.ZoneID
		out.ZoneID = &id
	}
	if sel.LogoID != uuid.Nil {
		id := sel.LogoID
		out.LogoID = &id
	}
	return out
}
