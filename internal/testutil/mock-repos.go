package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

// MockWorkspaceRepo is a mock of WorkspaceRepository.
type MockWorkspaceRepo struct {
	mock.Mock
}

func (m *MockWorkspaceRepo) Create(ctx context.Context, ws *domain.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

// Update applies fn to the workspace configured as the first return value
// when the call is expected to succeed.
func (m *MockWorkspaceRepo) Update(ctx context.Context, id uuid.UUID, fn func(ws *domain.Workspace) error) (*domain.Workspace, error) {
	args := m.Called(ctx, id, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	ws := args.Get(0).(*domain.Workspace).Clone()
	if err := fn(ws); err != nil {
		return nil, err
	}
	return ws, args.Error(1)
}

func (m *MockWorkspaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkspaceRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockCatalogRepo is a mock of CatalogRepository.
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ZoneTemplates(ctx context.Context, category string) ([]domain.ZoneTemplate, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZoneTemplate), args.Error(1)
}

func (m *MockCatalogRepo) Methods(ctx context.Context, category string) ([]string, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockImageLoader is a mock of ImageLoader.
type MockImageLoader struct {
	mock.Mock
}

func (m *MockImageLoader) LoadImageDimensions(ctx context.Context, url string) (domain.Dimensions, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(domain.Dimensions), args.Error(1)
}

// MockMockupRenderer is a mock of MockupRenderer.
type MockMockupRenderer struct {
	mock.Mock
}

func (m *MockMockupRenderer) RenderMockup(ctx context.Context, req ports.RenderRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
