package services

import (
	"context"
	"fmt"

	"branding-studio-service/internal/core/domain"
	output "branding-studio-service/internal/core/ports/output"
)

// CatalogService exposes the category catalog read-only
type CatalogService struct {
	catalog output.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog output.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Categories lists every known product category
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return categories, nil
}

// Methods returns the allowed branding methods for a category. A category
// without configured methods gets the default method only.
func (s *CatalogService) Methods(ctx context.Context, category string) ([]string, error) {
	methods, err := s.catalog.Methods(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if len(methods) == 0 {
		return []string{domain.DefaultBrandingMethod}, nil
	}
	return methods, nil
}

// ZoneTemplates returns the template zones for a category
func (s *CatalogService) ZoneTemplates(ctx context.Context, category string) ([]domain.ZoneTemplate, error) {
	templates, err := s.catalog.ZoneTemplates(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if templates == nil {
		templates = []domain.ZoneTemplate{}
	}
	return templates, nil
}
