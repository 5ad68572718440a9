package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"branding-studio-service/internal/core/domain"
	output "branding-studio-service/internal/core/ports/output"
)

const (
	warnNoPairs      = "no zone has a logo attached"
	warnAllFailed    = "every mockup render failed"
	warnSomeFailedFm = "%d of %d mockup renders failed"
)

// MockupService turns the active layout into rendered previews
type MockupService struct {
	repo           output.WorkspaceRepository
	renderer       output.MockupRenderer
	maxConcurrency int
}

// NewMockupService creates a new mockup service. maxConcurrency <= 0 dispatches
// every render at once.
func NewMockupService(repo output.WorkspaceRepository, renderer output.MockupRenderer, maxConcurrency int) *MockupService {
	return &MockupService{
		repo:           repo,
		renderer:       renderer,
		maxConcurrency: maxConcurrency,
	}
}

type renderOutcome struct {
	result *domain.MockupResult
	err    error
}

// Generate dispatches one render request per zone with a logo, all at once
// unless maxConcurrency caps them, and joins the outcomes. Individual failures
// are dropped from the results; the batch itself only fails when the layout
// has no zones or no logos.
func (s *MockupService) Generate(ctx context.Context, workspaceID uuid.UUID) (*domain.MockupBatch, error) {
	ws, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(ws.Layout.Zones) == 0 || len(ws.Layout.Logos) == 0 {
		return nil, domain.ErrCannotGenerateMockup
	}

	logger := log.WithField("workspace_id", workspaceID)

	pairs := ws.Layout.Pairs()
	if len(pairs) == 0 {
		logger.Warn("no zone has a logo attached, nothing to render")
		return &domain.MockupBatch{Results: []domain.MockupResult{}, Warning: warnNoPairs}, nil
	}

	// a dispatched batch runs to completion even if the caller goes away
	renderCtx := context.WithoutCancel(ctx)

	outcomes := make([]renderOutcome, len(pairs))
	var g errgroup.Group
	if s.maxConcurrency > 0 {
		g.SetLimit(s.maxConcurrency)
	}
	for i, pair := range pairs {
		g.Go(func() error {
			outcomes[i] = s.render(renderCtx, ws.BaseImageURL, pair)
			return nil
		})
	}
	_ = g.Wait()

	batch := &domain.MockupBatch{Results: make([]domain.MockupResult, 0, len(pairs))}
	for i, o := range outcomes {
		if o.err != nil {
			logger.WithError(o.err).WithFields(log.Fields{
				"zone_id":    pairs[i].Zone.ID,
				"zone_label": pairs[i].Zone.Label,
			}).Warn("mockup render failed, dropping zone from batch")
			batch.Failures = append(batch.Failures, domain.MockupFailure{
				ZoneID:    pairs[i].Zone.ID,
				ZoneLabel: pairs[i].Zone.Label,
				Error:     o.err.Error(),
			})
			continue
		}
		batch.Results = append(batch.Results, *o.result)
	}
	batch.Count = len(batch.Results)

	switch {
	case batch.Count == 0:
		batch.Warning = warnAllFailed
	case len(batch.Failures) > 0:
		batch.Warning = fmt.Sprintf(warnSomeFailedFm, len(batch.Failures), len(pairs))
	}

	logger.WithFields(log.Fields{
		"requested": len(pairs),
		"generated": batch.Count,
	}).Info("mockups generated")

	return batch, nil
}

func (s *MockupService) render(ctx context.Context, baseImageURL string, pair domain.ZonePair) renderOutcome {
	req := output.RenderRequest{
		BaseImageURL: baseImageURL,
		LogoURL:      pair.Logo.URL,
		Zones: []output.RenderZone{{
			X:      pair.Zone.Box.X,
			Y:      pair.Zone.Box.Y,
			Width:  pair.Zone.Box.Width,
			Height: pair.Zone.Box.Height,
			Label:  pair.Zone.Label,
		}},
		Method: pair.Zone.Method,
	}

	url, err := s.renderer.RenderMockup(ctx, req)
	if err != nil {
		return renderOutcome{err: err}
	}
	if url == "" {
		return renderOutcome{err: fmt.Errorf("%w: empty mockup url", domain.ErrRenderFailed)}
	}

	return renderOutcome{result: &domain.MockupResult{
		ZoneID:    pair.Zone.ID,
		ZoneLabel: pair.Zone.Label,
		LogoID:    pair.Logo.ID,
		Method:    pair.Zone.Method,
		ImageURL:  url,
	}}
}
