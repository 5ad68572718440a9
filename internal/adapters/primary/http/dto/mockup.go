package dto

import (
	"fmt"

	"branding-studio-service/internal/core/domain"
)

// MockupBatchResponse represents the outcome of one generation run
type MockupBatchResponse struct {
	Results  []domain.MockupResult  `json:"results"`
	Count    int                    `json:"count"`
	Message  string                 `json:"message"`
	Failures []domain.MockupFailure `json:"failures,omitempty"`
	Warning  string                 `json:"warning,omitempty"`
}

// ToMockupBatchResponse converts a mockup batch to response DTO
func ToMockupBatchResponse(b *domain.MockupBatch) MockupBatchResponse {
	results := b.Results
	if results == nil {
		results = []domain.MockupResult{}
	}
	return MockupBatchResponse{
		Results:  results,
		Count:    b.Count,
		Message:  fmt.Sprintf("%d mockups generated", b.Count),
		Failures: b.Failures,
		Warning:  b.Warning,
	}
}

// ============================================================================
// Catalog DTOs
// ============================================================================

// MethodsResponse lists the branding methods allowed for a category
type MethodsResponse struct {
	Category string   `json:"category"`
	Methods  []string `json:"methods"`
	Default  string   `json:"default"`
}

// TemplatesResponse lists the template zones of a category
type TemplatesResponse struct {
	Category string                `json:"category"`
	Items    []domain.ZoneTemplate `json:"items"`
	Total    int                   `json:"total"`
}

// CategoriesResponse lists every known category
type CategoriesResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}
