package services

import (
	"context"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
)

type ArtistService struct {
	repo ports.ArtistRepository
}

func NewArtistService(repo ports.ArtistRepository) *ArtistService {
	return &ArtistService{repo: repo}
}

func (s *ArtistService) Get(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArtistService) GetByQID(ctx context.Context, qid string) (*domain.Artist, error) {
	if !domain.ValidQID(qid) {
		return nil, domain.ErrInvalidQID
	}
	return s.repo.GetByWikidataID(ctx, qid)
}

func (s *ArtistService) List(ctx context.Context, filter ports.ArtistListFilter) ([]*domain.Artist, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}
