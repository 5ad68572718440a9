package services

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/core/domain"
	output "branding-studio-service/internal/core/ports/output"
)

// VariantService manages the layout variants of a workspace
type VariantService struct {
	repo output.WorkspaceRepository
}

// NewVariantService creates a new variant service
func NewVariantService(repo output.WorkspaceRepository) *VariantService {
	return &VariantService{repo: repo}
}

// VariantList is the variant collection together with the active variant id
type VariantList struct {
	Variants        []domain.Variant
	ActiveVariantID uuid.UUID
	ABTesting       bool
}

// List returns every variant of a workspace
func (s *VariantService) List(ctx context.Context, workspaceID uuid.UUID) (*VariantList, error) {
	ws, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return &VariantList{
		Variants:        ws.Variants,
		ActiveVariantID: ws.ActiveVariantID,
		ABTesting:       ws.ABTesting,
	}, nil
}

// VariantResult is a variant together with the workspace's active variant id
type VariantResult struct {
	Variant         domain.Variant
	ActiveVariantID uuid.UUID
}

// Create appends an empty variant and makes it active
func (s *VariantService) Create(ctx context.Context, workspaceID uuid.UUID, name string) (*VariantResult, error) {
	return s.mutate(ctx, workspaceID, func(ws *domain.Workspace) (domain.Variant, error) {
		return ws.CreateVariant(name)
	})
}

// Fork copies an existing variant's layout into a new active variant
func (s *VariantService) Fork(ctx context.Context, workspaceID, sourceID uuid.UUID, name string) (*VariantResult, error) {
	return s.mutate(ctx, workspaceID, func(ws *domain.Workspace) (domain.Variant, error) {
		return ws.ForkVariant(sourceID, name)
	})
}

// Switch activates a variant and loads its layout into the working set
func (s *VariantService) Switch(ctx context.Context, workspaceID, variantID uuid.UUID) (*domain.Workspace, error) {
	ws, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		_, err := ws.SwitchVariant(variantID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"workspace_id": workspaceID,
		"variant_id":   variantID,
	}).Debug("variant switched")
	return ws, nil
}

// Delete removes a variant
func (s *VariantService) Delete(ctx context.Context, workspaceID, variantID uuid.UUID) (*domain.Workspace, error) {
	return s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		return ws.DeleteVariant(variantID)
	})
}

// Rename changes a variant's display name
func (s *VariantService) Rename(ctx context.Context, workspaceID, variantID uuid.UUID, name string) (*VariantResult, error) {
	return s.mutate(ctx, workspaceID, func(ws *domain.Workspace) (domain.Variant, error) {
		return ws.RenameVariant(variantID, name)
	})
}

// RecordPerformance stores externally supplied telemetry on a variant
func (s *VariantService) RecordPerformance(ctx context.Context, workspaceID, variantID uuid.UUID, perf domain.Performance) (*VariantResult, error) {
	return s.mutate(ctx, workspaceID, func(ws *domain.Workspace) (domain.Variant, error) {
		return ws.RecordPerformance(variantID, perf)
	})
}

func (s *VariantService) mutate(
	ctx context.Context,
	workspaceID uuid.UUID,
	fn func(ws *domain.Workspace) (domain.Variant, error),
) (*VariantResult, error) {
	var v domain.Variant
	ws, err := s.repo.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		var err error
		v, err = fn(ws)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &VariantResult{Variant: v.Clone(), ActiveVariantID: ws.ActiveVariantID}, nil
}
