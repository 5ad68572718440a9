package services

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/core/domain"
	output "branding-studio-service/internal/core/ports/output"
)

// WorkspaceService handles the lifecycle of editing workspaces
type WorkspaceService struct {
	repo          output.WorkspaceRepository
	defaultCanvas domain.Canvas
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(repo output.WorkspaceRepository, defaultCanvas domain.Canvas) *WorkspaceService {
	return &WorkspaceService{
		repo:          repo,
		defaultCanvas: defaultCanvas,
	}
}

// CreateWorkspaceRequest contains parameters for creating a workspace
type CreateWorkspaceRequest struct {
	Category     string
	BaseImageURL string
	Canvas       domain.Canvas
	ABTesting    bool
}

// Create creates a new workspace with a single empty variant
func (s *WorkspaceService) Create(ctx context.Context, req CreateWorkspaceRequest) (*domain.Workspace, error) {
	canvas := req.Canvas
	if canvas.Width == 0 {
		canvas.Width = s.defaultCanvas.Width
	}
	if canvas.Height == 0 {
		canvas.Height = s.defaultCanvas.Height
	}

	ws, err := domain.NewWorkspace(req.Category, req.BaseImageURL, canvas, req.ABTesting)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, ws); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"workspace_id": ws.ID,
		"category":     ws.Category,
		"ab_testing":   ws.ABTesting,
	}).Debug("workspace created")

	return s.repo.GetByID(ctx, ws.ID)
}

// Get retrieves a workspace
func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a workspace
func (s *WorkspaceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SetABTesting turns A/B testing on or off for a workspace
func (s *WorkspaceService) SetABTesting(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Workspace, error) {
	return s.repo.Update(ctx, id, func(ws *domain.Workspace) error {
		ws.SetABTesting(enabled)
		return nil
	})
}
