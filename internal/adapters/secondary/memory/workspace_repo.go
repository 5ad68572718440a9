package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

// workspaceEntry serializes mutations of a single workspace
type workspaceEntry struct {
	mu      sync.Mutex
	ws      *domain.Workspace
	deleted bool
}

type workspaceRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*workspaceEntry
}

// NewWorkspaceRepository creates an in-process workspace repository.
// Workspaces are editing sessions and are not persisted.
func NewWorkspaceRepository() ports.WorkspaceRepository {
	return &workspaceRepo{entries: make(map[uuid.UUID]*workspaceEntry)}
}

func (r *workspaceRepo) Create(ctx context.Context, ws *domain.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[ws.ID]; exists {
		return domain.ErrWorkspaceIDConflict
	}
	r.entries[ws.ID] = &workspaceEntry{ws: ws.Clone()}
	return nil
}

func (r *workspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, domain.ErrWorkspaceNotFound
	}
	return e.ws.Clone(), nil
}

func (r *workspaceRepo) Update(ctx context.Context, id uuid.UUID, fn func(ws *domain.Workspace) error) (*domain.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, domain.ErrWorkspaceNotFound
	}

	draft := e.ws.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = time.Now()
	e.ws = draft
	return draft.Clone(), nil
}

func (r *workspaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return domain.ErrWorkspaceNotFound
	}
	delete(r.entries, id)
	r.mu.Unlock()

	// in-flight updates holding the entry must not resurrect it
	e.mu.Lock()
	e.deleted = true
	e.mu.Unlock()
	return nil
}

func (r *workspaceRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}

func (r *workspaceRepo) entry(id uuid.UUID) (*workspaceEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	return e, nil
}
