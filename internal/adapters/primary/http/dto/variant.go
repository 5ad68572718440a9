package dto

import (
	"time"

	"github.com/google/uuid"

	"branding-studio-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateVariantRequest creates an empty variant, or a copy of an existing one
// when FromVariantID is set
type CreateVariantRequest struct {
	Name          string     `json:"name" binding:"required"`
	FromVariantID *uuid.UUID `json:"from_variant_id"`
}

// RenameVariantRequest renames a variant
type RenameVariantRequest struct {
	Name string `json:"name" binding:"required"`
}

// PerformanceRequest is externally measured variant telemetry
type PerformanceRequest struct {
	Views  int64   `json:"views" binding:"min=0"`
	Clicks int64   `json:"clicks" binding:"min=0"`
	CTR    float64 `json:"ctr" binding:"min=0"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// VariantSummary is a variant without its layout
type VariantSummary struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Active      bool                `json:"active"`
	ZoneCount   int                 `json:"zone_count"`
	LogoCount   int                 `json:"logo_count"`
	Performance *domain.Performance `json:"performance,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// VariantResponse is a variant including its stored layout
type VariantResponse struct {
	VariantSummary
	Zones []ZoneResponse `json:"zones"`
	Logos []LogoResponse `json:"logos"`
}

// ListVariantsResponse represents the variant collection
type ListVariantsResponse struct {
	Items           []VariantResponse `json:"items"`
	Total           int               `json:"total"`
	ActiveVariantID uuid.UUID         `json:"active_variant_id"`
	ABTesting       bool              `json:"ab_testing"`
}

// ToVariantSummary converts a domain variant to a summary DTO
func ToVariantSummary(v domain.Variant, activeID uuid.UUID) VariantSummary {
	return VariantSummary{
		ID:          v.ID,
		Name:        v.Name,
		Active:      v.ID == activeID,
		ZoneCount:   len(v.Layout.Zones),
		LogoCount:   len(v.Layout.Logos),
		Performance: v.Performance,
		CreatedAt:   v.CreatedAt,
	}
}

// ToVariantResponse converts a domain variant to response DTO
func ToVariantResponse(v domain.Variant, activeID uuid.UUID) VariantResponse {
	return VariantResponse{
		VariantSummary: ToVariantSummary(v, activeID),
		Zones:          ToZoneResponses(v.Layout.Zones),
		Logos:          ToLogoResponses(v.Layout.Logos),
	}
}
