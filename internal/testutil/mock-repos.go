package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
)

// MockArtistRepo is a mock of ArtistRepository.
type MockArtistRepo struct {
	mock.Mock
}

func (m *MockArtistRepo) Create(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Artist, error) {
	args := m.Called(ctx, qid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepo) Update(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepo) List(ctx context.Context, filter ports.ArtistListFilter) ([]*domain.Artist, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Artist), args.Int(1), args.Error(2)
}

// MockPaintingRepo is a mock of PaintingRepository.
type MockPaintingRepo struct {
	mock.Mock
}

func (m *MockPaintingRepo) Create(ctx context.Context, painting *domain.Painting) error {
	args := m.Called(ctx, painting)
	return args.Error(0)
}

func (m *MockPaintingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Painting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Painting), args.Error(1)
}

func (m *MockPaintingRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Painting, error) {
	args := m.Called(ctx, qid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Painting), args.Error(1)
}

func (m *MockPaintingRepo) Update(ctx context.Context, painting *domain.Painting) error {
	args := m.Called(ctx, painting)
	return args.Error(0)
}

func (m *MockPaintingRepo) List(ctx context.Context, filter ports.PaintingListFilter) ([]*domain.Painting, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Painting), args.Int(1), args.Error(2)
}

// MockLocationRepo is a mock of LocationRepository.
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) Create(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepo) GetByWikidataID(ctx context.Context, qid string) (*domain.Location, error) {
	args := m.Called(ctx, qid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepo) Update(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepo) List(ctx context.Context, filter ports.LocationListFilter) ([]*domain.Location, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Location), args.Int(1), args.Error(2)
}
