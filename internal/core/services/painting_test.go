package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
	"helianthus/internal/testutil"
)

func intPtr(i int) *int { return &i }

func TestPaintingService_List(t *testing.T) {
	repo := new(testutil.MockPaintingRepo)
	svc := NewPaintingService(repo, new(testutil.MockArtistRepo))

	filter := ports.PaintingListFilter{Search: "sunflowers", Limit: 10}
	paintings := []*domain.Painting{{ID: uuid.New(), WikidataID: "Q12418"}}
	repo.On("List", mock.Anything, filter).Return(paintings, 1, nil)

	result, total, err := svc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, result, 1)
}

func TestPaintingService_List_InvalidYearRange(t *testing.T) {
	repo := new(testutil.MockPaintingRepo)
	svc := NewPaintingService(repo, new(testutil.MockArtistRepo))

	filter := ports.PaintingListFilter{YearFrom: intPtr(1900), YearTo: intPtr(1800)}
	_, _, err := svc.List(context.Background(), filter)
	assert.ErrorIs(t, err, domain.ErrInvalidYearRange)
}

func TestPaintingService_GetByQID_Invalid(t *testing.T) {
	repo := new(testutil.MockPaintingRepo)
	svc := NewPaintingService(repo, new(testutil.MockArtistRepo))

	_, err := svc.GetByQID(context.Background(), "12418")
	assert.ErrorIs(t, err, domain.ErrInvalidQID)
}

func TestPaintingService_ListByArtist(t *testing.T) {
	repo := new(testutil.MockPaintingRepo)
	artistRepo := new(testutil.MockArtistRepo)
	svc := NewPaintingService(repo, artistRepo)

	artistID := uuid.New()
	artistRepo.On("GetByID", mock.Anything, artistID).Return(&domain.Artist{ID: artistID}, nil)

	expectedFilter := ports.PaintingListFilter{ArtistID: artistID, Limit: 20}
	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.Painting{}, 0, nil)

	_, _, err := svc.ListByArtist(context.Background(), artistID, ports.PaintingListFilter{})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPaintingService_ListByArtist_UnknownArtist(t *testing.T) {
	repo := new(testutil.MockPaintingRepo)
	artistRepo := new(testutil.MockArtistRepo)
	svc := NewPaintingService(repo, artistRepo)

	artistID := uuid.New()
	artistRepo.On("GetByID", mock.Anything, artistID).Return(nil, domain.ErrArtistNotFound)

	_, _, err := svc.ListByArtist(context.Background(), artistID, ports.PaintingListFilter{})
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

func TestPaintingService_ListByArtist_NilID(t *testing.T) {
	repo := new(testutil.MockPaintingRepo)
	svc := NewPaintingService(repo, new(testutil.MockArtistRepo))

	_, _, err := svc.ListByArtist(context.Background(), uuid.Nil, ports.PaintingListFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidArtistID)
}
