package rediscache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branding-studio-service/internal/core/domain"
	"branding-studio-service/internal/testutil"
)

type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return redis.NewStringResult("", s.readErr)
	}
	v, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (s *fakeStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = string(value.([]byte))
	s.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestCachedImageLoader_MissThenHit(t *testing.T) {
	next := new(testutil.MockImageLoader)
	store := newFakeStore()
	loader := NewImageLoader(next, store, time.Hour)
	ctx := context.Background()
	url := "https://cdn.example.com/logo.png"

	next.On("LoadImageDimensions", mock.Anything, url).
		Return(domain.Dimensions{Width: 200, Height: 100}, nil).Once()

	dims, err := loader.LoadImageDimensions(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{Width: 200, Height: 100}, dims)
	assert.Equal(t, time.Hour, store.ttls[cacheKey(url)])

	dims, err = loader.LoadImageDimensions(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{Width: 200, Height: 100}, dims)

	next.AssertNumberOfCalls(t, "LoadImageDimensions", 1)
}

func TestCachedImageLoader_ErrorsAreNotCached(t *testing.T) {
	next := new(testutil.MockImageLoader)
	store := newFakeStore()
	loader := NewImageLoader(next, store, 0)
	url := "https://cdn.example.com/broken.png"

	next.On("LoadImageDimensions", mock.Anything, url).
		Return(domain.Dimensions{}, domain.ErrInvalidImage)

	_, err := loader.LoadImageDimensions(context.Background(), url)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
	assert.Empty(t, store.data)
}

func TestCachedImageLoader_StoreFailureFallsThrough(t *testing.T) {
	next := new(testutil.MockImageLoader)
	store := newFakeStore()
	store.readErr = errors.New("connection refused")
	loader := NewImageLoader(next, store, time.Minute)
	url := "https://cdn.example.com/logo.png"

	next.On("LoadImageDimensions", mock.Anything, url).
		Return(domain.Dimensions{Width: 10, Height: 10}, nil)

	dims, err := loader.LoadImageDimensions(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, 10.0, dims.Width)
}

func TestCachedImageLoader_CorruptEntryIsReloaded(t *testing.T) {
	next := new(testutil.MockImageLoader)
	store := newFakeStore()
	url := "https://cdn.example.com/logo.png"
	store.data[cacheKey(url)] = "not json"
	loader := NewImageLoader(next, store, time.Minute)

	next.On("LoadImageDimensions", mock.Anything, url).
		Return(domain.Dimensions{Width: 30, Height: 15}, nil).Once()

	dims, err := loader.LoadImageDimensions(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{Width: 30, Height: 15}, dims)
	next.AssertExpectations(t)
}
