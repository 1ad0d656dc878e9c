package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
)

func intPtr(i int) *int { return &i }

func TestListPaintings(t *testing.T) {
	m, r := setupRouter()

	paintings := []*domain.Painting{
		{
			ID: uuid.New(), WikidataID: "Q12418", Title: strPtr("Sunflowers"),
			Year: intPtr(1889), ArtistID: uuid.New(),
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		},
	}
	m.paintings.On("List", mock.Anything, mock.AnythingOfType("ports.PaintingListFilter")).Return(paintings, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings?search=sunflowers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestListPaintings_YearFilter(t *testing.T) {
	m, r := setupRouter()

	m.paintings.On("List", mock.Anything, mock.MatchedBy(func(f ports.PaintingListFilter) bool {
		return f.YearFrom != nil && *f.YearFrom == 1880 && f.YearTo != nil && *f.YearTo == 1890
	})).Return([]*domain.Painting{}, 0, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings?year_from=1880&year_to=1890", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.paintings.AssertExpectations(t)
}

func TestListPaintings_BadYear(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings?year_from=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPaintings_InvalidYearRange(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings?year_from=1900&year_to=1800", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPaintings_BadArtistID(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings?artist_id=not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPainting(t *testing.T) {
	m, r := setupRouter()

	id := uuid.New()
	painting := &domain.Painting{
		ID: id, WikidataID: "Q12418", Title: strPtr("Sunflowers"),
		ArtistID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.paintings.On("GetByID", mock.Anything, id).Return(painting, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Sunflowers", resp["title"])
}

func TestGetPainting_NotFound(t *testing.T) {
	m, r := setupRouter()

	id := uuid.New()
	m.paintings.On("GetByID", mock.Anything, id).Return(nil, domain.ErrPaintingNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/paintings/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPaintingByQID(t *testing.T) {
	m, r := setupRouter()

	painting := &domain.Painting{
		ID: uuid.New(), WikidataID: "Q12418", Title: strPtr("Sunflowers"),
		ArtistID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.paintings.On("GetByWikidataID", mock.Anything, "Q12418").Return(painting, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/painting?qid=Q12418", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
