package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

type catalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a catalog repository backed by the
// zone_template and branding_method tables
func NewCatalogRepository(pool *pgxpool.Pool) ports.CatalogRepository {
	return &catalogRepo{pool: pool}
}

// ============================================================================
// Zone Templates
// ============================================================================

func (r *catalogRepo) ZoneTemplates(ctx context.Context, category string) ([]domain.ZoneTemplate, error) {
	query := `
		SELECT label, shape, x, y, width, height
		FROM zone_template
		WHERE category = $1
		ORDER BY position, label
	`
	rows, err := r.pool.Query(ctx, query, normalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("list zone_template: %w", err)
	}

	templates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ZoneTemplate, error) {
		var t domain.ZoneTemplate
		var shape string
		if err := row.Scan(&t.Label, &shape, &t.X, &t.Y, &t.Width, &t.Height); err != nil {
			return t, err
		}
		t.Shape = domain.Shape(shape)
		return t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan zone_template: %w", err)
	}
	return templates, nil
}

// ============================================================================
// Branding Methods
// ============================================================================

func (r *catalogRepo) Methods(ctx context.Context, category string) ([]string, error) {
	query := `
		SELECT name
		FROM branding_method
		WHERE category = $1
		ORDER BY position, name
	`
	rows, err := r.pool.Query(ctx, query, normalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("list branding_method: %w", err)
	}

	methods, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan branding_method: %w", err)
	}
	return methods, nil
}

func (r *catalogRepo) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT category FROM zone_template
		UNION
		SELECT category FROM branding_method
		ORDER BY 1
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return categories, nil
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
