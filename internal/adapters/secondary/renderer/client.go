package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"branding-studio-service/internal/config"
	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

const (
	renderPath     = "/api/v1/mockups"
	maxErrorBody   = 512
	defaultTimeout = 60 * time.Second
)

type rendererClient struct {
	baseURL string
	client  *http.Client
}

// NewRendererClient creates a client for the mockup rendering service
func NewRendererClient(cfg *config.RendererConfig) ports.MockupRenderer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &rendererClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type renderResponse struct {
	MockupURL string `json:"mockup_url"`
	Error     string `json:"error,omitempty"`
}

func (c *rendererClient) RenderMockup(ctx context.Context, in ports.RenderRequest) (string, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", domain.ErrRenderFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+renderPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrRenderFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: renderer returned %d: %s", domain.ErrRenderFailed, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrRenderFailed, err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrRenderFailed, out.Error)
	}
	if out.MockupURL == "" {
		return "", fmt.Errorf("%w: empty mockup url", domain.ErrRenderFailed)
	}
	return out.MockupURL, nil
}
