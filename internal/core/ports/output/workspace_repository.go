package ports

import (
	"context"

	"github.com/google/uuid"

	"branding-studio-service/internal/core/domain"
)

// WorkspaceRepository holds editing workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *domain.Workspace) error
	// GetByID returns a copy; changing it has no effect on the stored workspace.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	// Update runs fn against a copy of the workspace while holding the
	// workspace's lock and stores the copy only if fn returns nil.
	Update(ctx context.Context, id uuid.UUID, fn func(ws *domain.Workspace) error) (*domain.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
