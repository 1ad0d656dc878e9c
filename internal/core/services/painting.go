package services

import (
	"context"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
)

type PaintingService struct {
	repo       ports.PaintingRepository
	artistRepo ports.ArtistRepository
}

func NewPaintingService(repo ports.PaintingRepository, artistRepo ports.ArtistRepository) *PaintingService {
	return &PaintingService{repo: repo, artistRepo: artistRepo}
}

func (s *PaintingService) Get(ctx context.Context, id uuid.UUID) (*domain.Painting, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PaintingService) GetByQID(ctx context.Context, qid string) (*domain.Painting, error) {
	if !domain.ValidQID(qid) {
		return nil, domain.ErrInvalidQID
	}
	return s.repo.GetByWikidataID(ctx, qid)
}

func (s *PaintingService) List(ctx context.Context, filter ports.PaintingListFilter) ([]*domain.Painting, int, error) {
	if filter.YearFrom != nil && filter.YearTo != nil && *filter.YearFrom > *filter.YearTo {
		return nil, 0, domain.ErrInvalidYearRange
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

// ListByArtist lists an artist's paintings, failing with ErrArtistNotFound
// when the artist itself is unknown so the handler can distinguish an empty
// catalog from a bad ID.
func (s *PaintingService) ListByArtist(ctx context.Context, artistID uuid.UUID, filter ports.PaintingListFilter) ([]*domain.Painting, int, error) {
	if artistID == uuid.Nil {
		return nil, 0, domain.ErrInvalidArtistID
	}
	if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
		return nil, 0, err
	}
	filter.ArtistID = artistID
	return s.List(ctx, filter)
}
