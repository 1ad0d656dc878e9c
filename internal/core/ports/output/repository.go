package ports

import (
	"context"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
)

type ArtistListFilter struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type PaintingListFilter struct {
	ArtistID   uuid.UUID
	LocationID uuid.UUID
	YearFrom   *int
	YearTo     *int
	Search     string
	SortBy     string
	Order      string
	Limit      int
	Offset     int
}

type LocationListFilter struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error)
	GetByWikidataID(ctx context.Context, qid string) (*domain.Artist, error)
	Update(ctx context.Context, artist *domain.Artist) error
	List(ctx context.Context, filter ArtistListFilter) ([]*domain.Artist, int, error)
}

type PaintingRepository interface {
	Create(ctx context.Context, painting *domain.Painting) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Painting, error)
	GetByWikidataID(ctx context.Context, qid string) (*domain.Painting, error)
	Update(ctx context.Context, painting *domain.Painting) error
	List(ctx context.Context, filter PaintingListFilter) ([]*domain.Painting, int, error)
}

type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	GetByWikidataID(ctx context.Context, qid string) (*domain.Location, error)
	Update(ctx context.Context, location *domain.Location) error
	List(ctx context.Context, filter LocationListFilter) ([]*domain.Location, int, error)
}
