package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"helianthus/internal/core/ports/output"
)

// MockWikidataClient is a mock of WikidataClient.
type MockWikidataClient struct {
	mock.Mock
}

func (m *MockWikidataClient) IsPainter(ctx context.Context, qid string) (bool, error) {
	args := m.Called(ctx, qid)
	return args.Bool(0), args.Error(1)
}

func (m *MockWikidataClient) PaintingsByArtist(ctx context.Context, qid string, limit int) ([]ports.PaintingRecord, error) {
	args := m.Called(ctx, qid, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.PaintingRecord), args.Error(1)
}

// MockCache is a mock of Cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *MockCache) Clear(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
