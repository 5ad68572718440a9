// Package imagemeta resolves the natural pixel size of logo bitmaps from
// http(s), data: and s3:// references without decoding the full image.
package imagemeta

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "golang.org/x/image/webp"

	"branding-studio-service/internal/config"
	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 20 << 20
)

// ObjectGetter is the slice of the S3 API the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type loader struct {
	client   *http.Client
	maxBytes int64
	objects  ObjectGetter
}

// Option configures the loader.
type Option func(*loader)

// WithObjectStore enables s3://bucket/key references.
func WithObjectStore(objects ObjectGetter) Option {
	return func(l *loader) {
		l.objects = objects
	}
}

// WithHTTPClient replaces the default http client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *loader) {
		l.client = client
	}
}

// NewLoader creates an image dimension loader.
func NewLoader(cfg *config.ImageConfig, opts ...Option) ports.ImageLoader {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	l := &loader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *loader) LoadImageDimensions(ctx context.Context, ref string) (domain.Dimensions, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "data:"):
		return l.fromDataURI(ref)
	case strings.HasPrefix(ref, "s3://"):
		return l.fromObjectStore(ctx, ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fromHTTP(ctx, ref)
	default:
		return domain.Dimensions{}, fmt.Errorf("%w: unsupported image reference %q", domain.ErrImageLoad, truncate(ref))
	}
}

func (l *loader) fromHTTP(ctx context.Context, ref string) (domain.Dimensions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: build request: %v", domain.ErrImageLoad, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: %v", domain.ErrImageLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Dimensions{}, fmt.Errorf("%w: image server returned %d", domain.ErrImageLoad, resp.StatusCode)
	}
	return l.decode(resp.Body)
}

func (l *loader) fromObjectStore(ctx context.Context, ref string) (domain.Dimensions, error) {
	if l.objects == nil {
		return domain.Dimensions{}, fmt.Errorf("%w: object storage not configured", domain.ErrImageLoad)
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" || strings.Trim(u.Path, "/") == "" {
		return domain.Dimensions{}, fmt.Errorf("%w: malformed s3 reference %q", domain.ErrImageLoad, ref)
	}

	out, err := l.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(strings.TrimPrefix(u.Path, "/")),
	})
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: get object: %v", domain.ErrImageLoad, err)
	}
	defer out.Body.Close()

	return l.decode(out.Body)
}

func (l *loader) fromDataURI(ref string) (domain.Dimensions, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return domain.Dimensions{}, fmt.Errorf("%w: malformed data uri", domain.ErrInvalidImage)
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return domain.Dimensions{}, fmt.Errorf("%w: data uri: %v", domain.ErrInvalidImage, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return domain.Dimensions{}, fmt.Errorf("%w: data uri: %v", domain.ErrInvalidImage, err)
		}
		data = []byte(unescaped)
	}

	if int64(len(data)) > l.maxBytes {
		return domain.Dimensions{}, fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidImage, l.maxBytes)
	}
	return l.decode(bytes.NewReader(data))
}

// decode reads only the image header.
func (l *loader) decode(r io.Reader) (domain.Dimensions, error) {
	cfg, _, err := image.DecodeConfig(io.LimitReader(r, l.maxBytes))
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return domain.Dimensions{}, fmt.Errorf("%w: zero-sized image", domain.ErrInvalidImage)
	}
	return domain.Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}

func truncate(ref string) string {
	if len(ref) > 64 {
		return ref[:64] + "..."
	}
	return ref
}
