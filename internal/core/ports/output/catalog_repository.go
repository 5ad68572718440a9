package ports

import (
	"context"

	"branding-studio-service/internal/core/domain"
)

// ============================================================================
// Category Catalog
// ============================================================================

// CatalogRepository is the lookup for per-category zone templates and
// allowed branding methods.
type CatalogRepository interface {
	// ZoneTemplates returns the template zones for a category. An unknown
	// category yields an empty list, not an error.
	ZoneTemplates(ctx context.Context, category string) ([]domain.ZoneTemplate, error)

	// Methods returns the allowed branding methods for a category, most
	// preferred first.
	Methods(ctx context.Context, category string) ([]string, error)

	// Categories lists every category the catalog knows about.
	Categories(ctx context.Context) ([]string, error)
}
