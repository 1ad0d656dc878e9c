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

func strPtr(s string) *string { return &s }

func TestArtistService_Get(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	id := uuid.New()
	expected := &domain.Artist{ID: id, WikidataID: "Q5582", Name: strPtr("Vincent van Gogh")}
	repo.On("GetByID", mock.Anything, id).Return(expected, nil)

	artist, err := svc.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Q5582", artist.WikidataID)
}

func TestArtistService_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrArtistNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

func TestArtistService_GetByQID(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	expected := &domain.Artist{ID: uuid.New(), WikidataID: "Q5582"}
	repo.On("GetByWikidataID", mock.Anything, "Q5582").Return(expected, nil)

	artist, err := svc.GetByQID(context.Background(), "Q5582")
	assert.NoError(t, err)
	assert.Equal(t, "Q5582", artist.WikidataID)
}

func TestArtistService_GetByQID_Invalid(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	_, err := svc.GetByQID(context.Background(), "van-gogh")
	assert.ErrorIs(t, err, domain.ErrInvalidQID)
}

func TestArtistService_List(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	filter := ports.ArtistListFilter{Search: "gogh", Limit: 10}
	artists := []*domain.Artist{{ID: uuid.New(), WikidataID: "Q5582"}}
	repo.On("List", mock.Anything, filter).Return(artists, 1, nil)

	result, total, err := svc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, result, 1)
}

func TestArtistService_List_DefaultLimit(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	filter := ports.ArtistListFilter{Limit: 0}
	expectedFilter := filter
	expectedFilter.Limit = 20

	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.Artist{}, 0, nil)

	_, _, err := svc.List(context.Background(), filter)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestArtistService_List_CapsLimit(t *testing.T) {
	repo := new(testutil.MockArtistRepo)
	svc := NewArtistService(repo)

	filter := ports.ArtistListFilter{Limit: 500}
	expectedFilter := filter
	expectedFilter.Limit = 100

	repo.On("List", mock.Anything, expectedFilter).Return([]*domain.Artist{}, 0, nil)

	_, _, err := svc.List(context.Background(), filter)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
