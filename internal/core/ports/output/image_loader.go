package ports

import (
	"context"

	"branding-studio-service/internal/core/domain"
)

// ImageLoader resolves the natural size of a bitmap.
type ImageLoader interface {
	// LoadImageDimensions fails with domain.ErrInvalidImage when the payload
	// is not a decodable image and domain.ErrImageLoad when it can't be fetched.
	LoadImageDimensions(ctx context.Context, url string) (domain.Dimensions, error)
}
