package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/config"
	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

const (
	keyPrefix  = "branding:image_dims:"
	defaultTTL = 24 * time.Hour
)

// Store is the subset of the redis client the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type cachedImageLoader struct {
	next  ports.ImageLoader
	store Store
	ttl   time.Duration
}

// NewClient connects to redis and verifies the connection
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

// NewImageLoader wraps next with a dimension cache. Cache errors never fail
// a lookup; they fall through to next.
func NewImageLoader(next ports.ImageLoader, store Store, ttl time.Duration) ports.ImageLoader {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &cachedImageLoader{next: next, store: store, ttl: ttl}
}

func (c *cachedImageLoader) LoadImageDimensions(ctx context.Context, url string) (domain.Dimensions, error) {
	key := cacheKey(url)

	data, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var dims domain.Dimensions
		if jsonErr := json.Unmarshal(data, &dims); jsonErr == nil {
			return dims, nil
		}
		log.WithField("key", key).Warn("corrupt image dimension cache entry")
	case !errors.Is(err, redis.Nil):
		log.WithError(err).Warn("image dimension cache read failed")
	}

	dims, err := c.next.LoadImageDimensions(ctx, url)
	if err != nil {
		return dims, err
	}

	payload, _ := json.Marshal(dims)
	if err := c.store.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("image dimension cache write failed")
	}
	return dims, nil
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return keyPrefix + hex.EncodeToString(sum[:])
}
