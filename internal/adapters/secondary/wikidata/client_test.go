package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"helianthus/internal/config"
	"helianthus/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func clientFor(srv *httptest.Server) *client {
	cfg := &config.WikidataConfig{
		Endpoint:  srv.URL,
		UserAgent: "test-agent/1.0",
	}
	return NewClient(cfg).(*client)
}

func TestIsPainter_True(t *testing.T) {
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/sparql-results+json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		assert.Contains(t, r.URL.Query().Get("query"), "wd:Q5582 wdt:P106 wd:Q1028181")

		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(`{"head":{},"boolean":true}`))
	})

	c := clientFor(srv)
	ok, err := c.IsPainter(context.Background(), "Q5582")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestIsPainter_False(t *testing.T) {
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"head":{},"boolean":false}`))
	})

	c := clientFor(srv)
	ok, err := c.IsPainter(context.Background(), "Q937")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPainter_MissingBoolean(t *testing.T) {
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"head":{}}`))
	})

	c := clientFor(srv)
	_, err := c.IsPainter(context.Background(), "Q5582")
	assert.ErrorIs(t, err, domain.ErrWikidataBadResponse)
}

func TestIsPainter_ServerError(t *testing.T) {
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c := clientFor(srv)
	_, err := c.IsPainter(context.Background(), "Q5582")
	assert.ErrorIs(t, err, domain.ErrWikidataUnavailable)
}

func TestPaintingsByArtist(t *testing.T) {
	body := `{
	  "head": {"vars": ["painting", "paintingLabel", "creatorLabel", "location", "locationLabel", "coords", "date"]},
	  "results": {"bindings": [
	    {
	      "painting": {"type": "uri", "value": "http://www.wikidata.org/entity/Q12418"},
	      "paintingLabel": {"type": "literal", "value": "Sunflowers"},
	      "creatorLabel": {"type": "literal", "value": "Vincent van Gogh"},
	      "location": {"type": "uri", "value": "http://www.wikidata.org/entity/Q224124"},
	      "locationLabel": {"type": "literal", "value": "Van Gogh Museum"},
	      "coords": {"type": "literal", "value": "Point(4.881 52.358)"},
	      "date": {"type": "literal", "value": "+1889-01-01T00:00:00Z"}
	    },
	    {
	      "painting": {"type": "uri", "value": "http://www.wikidata.org/entity/Q29530"},
	      "paintingLabel": {"type": "literal", "value": "The Starry Night"}
	    }
	  ]}
	}`

	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		assert.Contains(t, query, "wdt:P31 wd:Q3305213")
		assert.Contains(t, query, "VALUES ?creator { wd:Q5582 }")
		assert.Contains(t, query, "wdt:P170 ?creator")
		assert.NotContains(t, query, "wdt:P170 wd:Q5582")
		assert.Contains(t, query, "LIMIT 50")
		w.Write([]byte(body))
	})

	c := clientFor(srv)
	records, err := c.PaintingsByArtist(context.Background(), "Q5582", 50)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Q12418", first.QID)
	assert.Equal(t, "Sunflowers", *first.Title)
	assert.Equal(t, "Vincent van Gogh", *first.CreatorLabel)
	assert.Equal(t, "Q224124", *first.LocationQID)
	assert.Equal(t, "Van Gogh Museum", *first.LocationLabel)
	assert.InDelta(t, 52.358, *first.Latitude, 1e-9)
	assert.InDelta(t, 4.881, *first.Longitude, 1e-9)
	assert.Equal(t, 1889, *first.Year)

	second := records[1]
	assert.Equal(t, "Q29530", second.QID)
	assert.Nil(t, second.LocationQID)
	assert.Nil(t, second.Latitude)
	assert.Nil(t, second.Year)
}

func TestPaintingsByArtist_CreatorIsBoundVariable(t *testing.T) {
	// The label service only produces ?creatorLabel when ?creator is a
	// bound variable; a constant wd: term would leave every artist unnamed.
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		assert.Contains(t, query, "?creatorLabel")
		assert.Contains(t, query, "VALUES ?creator { wd:Q5582 }")
		assert.Contains(t, query, "?painting wdt:P170 ?creator")
		w.Write([]byte(`{"results":{"bindings":[]}}`))
	})

	c := clientFor(srv)
	_, err := c.PaintingsByArtist(context.Background(), "Q5582", 10)
	assert.NoError(t, err)
}

func TestPaintingsByArtist_SkipsEmptyPaintingBinding(t *testing.T) {
	body := `{"results":{"bindings":[{"paintingLabel":{"type":"literal","value":"orphan"}}]}}`
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	c := clientFor(srv)
	records, err := c.PaintingsByArtist(context.Background(), "Q5582", 10)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestPaintingsByArtist_MissingResults(t *testing.T) {
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"head":{}}`))
	})

	c := clientFor(srv)
	_, err := c.PaintingsByArtist(context.Background(), "Q5582", 10)
	assert.ErrorIs(t, err, domain.ErrWikidataBadResponse)
}

func TestPaintingsByArtist_MalformedJSON(t *testing.T) {
	srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":`))
	})

	c := clientFor(srv)
	_, err := c.PaintingsByArtist(context.Background(), "Q5582", 10)
	assert.ErrorIs(t, err, domain.ErrWikidataBadResponse)
}

func TestQIDFromURI(t *testing.T) {
	assert.Equal(t, "Q12418", qidFromURI("http://www.wikidata.org/entity/Q12418"))
	assert.Equal(t, "Q12418", qidFromURI("Q12418"))
}

func TestParsePoint(t *testing.T) {
	lat, lon := parsePoint("Point(4.881 52.358)")
	assert.InDelta(t, 52.358, *lat, 1e-9)
	assert.InDelta(t, 4.881, *lon, 1e-9)

	lat, lon = parsePoint("not a point")
	assert.Nil(t, lat)
	assert.Nil(t, lon)
}

func TestParseYear(t *testing.T) {
	year := parseYear("+1503-01-01T00:00:00Z")
	assert.Equal(t, 1503, *year)

	assert.Nil(t, parseYear("unknown"))
}
