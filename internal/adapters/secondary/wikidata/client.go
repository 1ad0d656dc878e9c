// Package wikidata implements the SPARQL client for the Wikidata query
// service. Queries are rate limited client-side to stay within the query
// service's usage policy.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"helianthus/internal/config"
	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
	"helianthus/internal/metrics"
)

const (
	qidPainter  = "Q1028181" // occupation: painter
	qidPainting = "Q3305213" // instance of: painting
)

type client struct {
	endpoint  string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a SPARQL client against the configured endpoint.
func NewClient(cfg *config.WikidataConfig) ports.WikidataClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	limit := rate.Limit(cfg.RateLimit)
	if limit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &client{
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, burst),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// SPARQL JSON results structures

type sparqlResponse struct {
	Boolean *bool      `json:"boolean,omitempty"`
	Results *sparqlSet `json:"results,omitempty"`
}

type sparqlSet struct {
	Bindings []map[string]sparqlValue `json:"bindings"`
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (c *client) IsPainter(ctx context.Context, qid string) (bool, error) {
	query := fmt.Sprintf(`ASK { wd:%s wdt:P106 wd:%s . }`, qid, qidPainter)

	resp, err := c.query(ctx, "ask", query)
	if err != nil {
		return false, err
	}
	if resp.Boolean == nil {
		return false, fmt.Errorf("%w: ASK result missing boolean", domain.ErrWikidataBadResponse)
	}
	return *resp.Boolean, nil
}

func (c *client) PaintingsByArtist(ctx context.Context, qid string, limit int) ([]ports.PaintingRecord, error) {
	// The creator must be a bound variable: the label service only emits
	// ?xLabel for variables, never for constants.
	query := fmt.Sprintf(`
		SELECT ?painting ?paintingLabel ?creatorLabel ?location ?locationLabel ?coords ?date WHERE {
		  VALUES ?creator { wd:%s }
		  ?painting wdt:P31 wd:%s .
		  ?painting wdt:P170 ?creator .
		  OPTIONAL {
		    ?painting wdt:P276 ?location .
		    OPTIONAL { ?location wdt:P625 ?coords . }
		  }
		  OPTIONAL { ?painting wdt:P571 ?date . }
		  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
		}
		LIMIT %d
	`, qid, qidPainting, limit)

	resp, err := c.query(ctx, "select", query)
	if err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: SELECT result missing bindings", domain.ErrWikidataBadResponse)
	}

	records := make([]ports.PaintingRecord, 0, len(resp.Results.Bindings))
	for _, binding := range resp.Results.Bindings {
		paintingURI, ok := binding["painting"]
		if !ok || paintingURI.Value == "" {
			continue
		}

		rec := ports.PaintingRecord{
			QID:          qidFromURI(paintingURI.Value),
			Title:        bindingString(binding, "paintingLabel"),
			CreatorLabel: bindingString(binding, "creatorLabel"),
		}

		if loc, ok := binding["location"]; ok && loc.Value != "" {
			locQID := qidFromURI(loc.Value)
			rec.LocationQID = &locQID
			rec.LocationLabel = bindingString(binding, "locationLabel")
		}
		if coords, ok := binding["coords"]; ok {
			rec.Latitude, rec.Longitude = parsePoint(coords.Value)
		}
		if date, ok := binding["date"]; ok {
			rec.Year = parseYear(date.Value)
		}

		records = append(records, rec)
	}
	return records, nil
}

func (c *client) query(ctx context.Context, kind, sparql string) (*sparqlResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", sparql)

	reqURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.SPARQLRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrWikidataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.SPARQLRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("%w: status %d", domain.ErrWikidataUnavailable, resp.StatusCode)
	}

	var parsed sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.SPARQLRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrWikidataBadResponse, err)
	}

	metrics.SPARQLRequests.WithLabelValues(kind, "ok").Inc()
	return &parsed, nil
}

// qidFromURI extracts the entity ID from a concept URI such as
// http://www.wikidata.org/entity/Q12418.
func qidFromURI(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

func bindingString(binding map[string]sparqlValue, key string) *string {
	if v, ok := binding[key]; ok && v.Value != "" {
		s := v.Value
		return &s
	}
	return nil
}

// parsePoint reads a WKT literal of the form "Point(lon lat)". Unparsable
// values yield nil coordinates rather than an error.
func parsePoint(s string) (lat, lon *float64) {
	s = strings.TrimPrefix(s, "Point(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, nil
	}
	lonVal, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, nil
	}
	latVal, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, nil
	}
	return &latVal, &lonVal
}

// parseYear extracts the year from a Wikidata inception timestamp such as
// "+1503-01-01T00:00:00Z". Unparsable values yield a nil year.
func parseYear(s string) *int {
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSuffix(s, "Z")
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return nil
	}
	year := t.Year()
	return &year
}
