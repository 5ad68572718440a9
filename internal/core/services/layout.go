package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/core/domain"
	output "branding-studio-service/internal/core/ports/output"
)

// LayoutService is the authoritative mutator of a workspace's zones and logos
type LayoutService struct {
	repo    output.WorkspaceRepository
	catalog output.CatalogRepository
	images  output.ImageLoader
}

// NewLayoutService creates a new layout service
func NewLayoutService(
	repo output.WorkspaceRepository,
	catalog output.CatalogRepository,
	images output.ImageLoader,
) *LayoutService {
	return &LayoutService{
		repo:    repo,
		catalog: catalog,
		images:  images,
	}
}

// ============================================================================
// Zones
// ============================================================================

// AddZone creates a zone centered in the canvas with the category's default
// branding method and selects it
func (s *LayoutService) AddZone(ctx context.Context, workspaceID uuid.UUID, shape domain.Shape) (*domain.Zone, error) {
	if !shape.Valid() {
		return nil, domain.ErrInvalidShape
	}

	ws, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	method := s.defaultMethod(ctx, ws.Category)

	var zone domain.Zone
	_, err = s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		zone, err = ws.AddZone(shape, method)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// UpdateZone merges a partial update into a zone
func (s *LayoutService) UpdateZone(ctx context.Context, workspaceID, zoneID uuid.UUID, update domain.ZoneUpdate) (*domain.Zone, error) {
	var zone domain.Zone
	_, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		var err error
		zone, err = ws.UpdateZone(zoneID, update)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// TransformZoneResult is the zone after a resize plus the handle instruction
type TransformZoneResult struct {
	Zone      domain.Zone
	Transform domain.Transform
}

// TransformZone folds an interactive handle scale into a zone's box
func (s *LayoutService) TransformZone(ctx context.Context, workspaceID, zoneID uuid.UUID, scaleX, scaleY float64) (*TransformZoneResult, error) {
	var result TransformZoneResult
	_, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		var err error
		result.Zone, result.Transform, err = ws.TransformZone(zoneID, scaleX, scaleY)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MoveZone translates a zone
func (s *LayoutService) MoveZone(ctx context.Context, workspaceID, zoneID uuid.UUID, dx, dy float64) (*domain.Zone, error) {
	var zone domain.Zone
	_, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		var err error
		zone, err = ws.MoveZone(zoneID, dx, dy)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// RemoveZone deletes a zone and the logo bound to it
func (s *LayoutService) RemoveZone(ctx context.Context, workspaceID, zoneID uuid.UUID) error {
	_, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		return ws.RemoveZone(zoneID)
	})
	return err
}

// DetectZones replaces every zone with the category's template zones. An
// empty category falls back to the workspace's own. The workspace is left
// unchanged on any failure.
func (s *LayoutService) DetectZones(ctx context.Context, workspaceID uuid.UUID, category string) ([]domain.Zone, error) {
	ws, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(category) == "" {
		category = ws.Category
	}

	templates, err := s.catalog.ZoneTemplates(ctx, category)
	if err != nil {
		log.WithError(err).WithField("category", category).Warn("zone template lookup failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrDetectZonesFailed, err)
	}
	if len(templates) == 0 {
		return nil, domain.ErrNoZonesDetected
	}
	method := s.defaultMethod(ctx, category)

	var zones []domain.Zone
	_, err = s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		zones, err = ws.ReplaceZones(templates, method)
		return err
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// ============================================================================
// Logos
// ============================================================================

// AttachLogo loads the logo's natural size, fits it into the zone's current
// box and binds it to the zone, evicting any logo already there
func (s *LayoutService) AttachLogo(ctx context.Context, workspaceID, zoneID uuid.UUID, logoURL string) (*domain.Logo, error) {
	if strings.TrimSpace(logoURL) == "" {
		return nil, domain.ErrInvalidLogoURL
	}

	ws, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if _, ok := ws.Layout.Zone(zoneID); !ok {
		return nil, domain.ErrZoneNotFound
	}

	dims, err := s.images.LoadImageDimensions(ctx, logoURL)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"workspace_id": workspaceID,
			"zone_id":      zoneID,
		}).Warn("logo image load failed")
		if !errors.Is(err, domain.ErrInvalidImage) && !errors.Is(err, domain.ErrImageLoad) {
			err = fmt.Errorf("%w: %v", domain.ErrImageLoad, err)
		}
		return nil, err
	}

	// the zone may have been resized or deleted while the image was loading
	var logo domain.Logo
	_, err = s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		logo, err = ws.AttachLogo(zoneID, logoURL, dims)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

// UpdateLogo merges a partial placement update into a logo
func (s *LayoutService) UpdateLogo(ctx context.Context, workspaceID, logoID uuid.UUID, update domain.LogoUpdate) (*domain.Logo, error) {
	var logo domain.Logo
	_, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		var err error
		logo, err = ws.UpdateLogo(logoID, update)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

// RemoveLogo deletes a logo
func (s *LayoutService) RemoveLogo(ctx context.Context, workspaceID, logoID uuid.UUID) error {
	_, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		return ws.RemoveLogo(logoID)
	})
	return err
}

// ============================================================================
// Selection
// ============================================================================

// Select focuses a zone or a logo; an empty selection clears it
func (s *LayoutService) Select(ctx context.Context, workspaceID uuid.UUID, sel domain.Selection) (*domain.Workspace, error) {
	return s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		if sel == (domain.Selection{}) {
			ws.ClearSelection()
			return nil
		}
		return ws.Select(sel)
	})
}

func (s *LayoutService) defaultMethod(ctx context.Context, category string) string {
	methods, err := s.catalog.Methods(ctx, category)
	if err != nil {
		log.WithError(err).WithField("category", category).Warn("branding method lookup failed, using default")
	}
	return domain.FirstMethod(methods)
}
