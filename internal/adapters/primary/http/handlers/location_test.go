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
)

func floatPtr(f float64) *float64 { return &f }

func TestListLocations(t *testing.T) {
	m, r := setupRouter()

	locations := []*domain.Location{
		{
			ID: uuid.New(), WikidataID: "Q224124", Name: strPtr("Van Gogh Museum"),
			Latitude: floatPtr(52.358), Longitude: floatPtr(4.881),
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		},
	}
	m.locations.On("List", mock.Anything, mock.AnythingOfType("ports.LocationListFilter")).Return(locations, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/locations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestGetLocation(t *testing.T) {
	m, r := setupRouter()

	id := uuid.New()
	location := &domain.Location{
		ID: id, WikidataID: "Q224124", Name: strPtr("Van Gogh Museum"),
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.locations.On("GetByID", mock.Anything, id).Return(location, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/locations/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Q224124", resp["wikidata_id"])
}

func TestGetLocation_NotFound(t *testing.T) {
	m, r := setupRouter()

	id := uuid.New()
	m.locations.On("GetByID", mock.Anything, id).Return(nil, domain.ErrLocationNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/locations/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLocationByQID_Invalid(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/catalog/location?qid=louvre", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLocationPaintings(t *testing.T) {
	m, r := setupRouter()

	locationID := uuid.New()
	m.locations.On("GetByID", mock.Anything, locationID).Return(&domain.Location{ID: locationID, WikidataID: "Q224124"}, nil)

	paintings := []*domain.Painting{
		{
			ID: uuid.New(), WikidataID: "Q12418", Title: strPtr("Sunflowers"),
			ArtistID: uuid.New(), LocationID: &locationID,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		},
	}
	m.paintings.On("List", mock.Anything, mock.AnythingOfType("ports.PaintingListFilter")).Return(paintings, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/locations/"+locationID.String()+"/paintings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestListLocationPaintings_UnknownLocation(t *testing.T) {
	m, r := setupRouter()

	locationID := uuid.New()
	m.locations.On("GetByID", mock.Anything, locationID).Return(nil, domain.ErrLocationNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/locations/"+locationID.String()+"/paintings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
