package services

import (
	"context"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
)

type LocationService struct {
	repo         ports.LocationRepository
	paintingRepo ports.PaintingRepository
}

func NewLocationService(repo ports.LocationRepository, paintingRepo ports.PaintingRepository) *LocationService {
	return &LocationService{repo: repo, paintingRepo: paintingRepo}
}

func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) GetByQID(ctx context.Context, qid string) (*domain.Location, error) {
	if !domain.ValidQID(qid) {
		return nil, domain.ErrInvalidQID
	}
	return s.repo.GetByWikidataID(ctx, qid)
}

func (s *LocationService) List(ctx context.Context, filter ports.LocationListFilter) ([]*domain.Location, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

// ListPaintings lists the paintings held at a location.
func (s *LocationService) ListPaintings(ctx context.Context, locationID uuid.UUID, filter ports.PaintingListFilter) ([]*domain.Painting, int, error) {
	if _, err := s.repo.GetByID(ctx, locationID); err != nil {
		return nil, 0, err
	}
	filter.LocationID = locationID
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.paintingRepo.List(ctx, filter)
}
