package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"helianthus/internal/core/domain"
	"helianthus/internal/core/ports/output"
	"helianthus/internal/metrics"
)

// DefaultIngestLimit caps a single ingestion run when the caller does not
// ask for a specific limit.
const DefaultIngestLimit = 200

// IngestResult summarizes a completed ingestion run.
type IngestResult struct {
	ArtistQID        string
	Fetched          int
	Inserted         int
	Updated          int
	LocationsCreated int
}

type IngestService struct {
	artists   ports.ArtistRepository
	paintings ports.PaintingRepository
	locations ports.LocationRepository
	wikidata  ports.WikidataClient
	cache     ports.Cache // optional; flushed after a successful run
}

func NewIngestService(
	artists ports.ArtistRepository,
	paintings ports.PaintingRepository,
	locations ports.LocationRepository,
	wikidata ports.WikidataClient,
	cache ports.Cache,
) *IngestService {
	return &IngestService{
		artists:   artists,
		paintings: paintings,
		locations: locations,
		wikidata:  wikidata,
		cache:     cache,
	}
}

// Run ingests paintings for one artist: it validates that the QID is a
// painter, fetches painting rows from the query service, and upserts
// artist, location, and painting records keyed by their Wikidata IDs.
func (s *IngestService) Run(ctx context.Context, artistQID string, limit int) (*IngestResult, error) {
	if !domain.ValidQID(artistQID) {
		return nil, domain.ErrInvalidQID
	}
	if limit <= 0 {
		limit = DefaultIngestLimit
	}

	start := time.Now()

	isPainter, err := s.wikidata.IsPainter(ctx, artistQID)
	if err != nil {
		metrics.IngestRuns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("validate painter: %w", err)
	}
	if !isPainter {
		metrics.IngestRuns.WithLabelValues("error").Inc()
		return nil, domain.ErrArtistNotPainter
	}

	rows, err := s.wikidata.PaintingsByArtist(ctx, artistQID, limit)
	if err != nil {
		metrics.IngestRuns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch paintings: %w", err)
	}

	artist, err := s.ensureArtist(ctx, artistQID, rows)
	if err != nil {
		metrics.IngestRuns.WithLabelValues("error").Inc()
		return nil, err
	}

	result := &IngestResult{ArtistQID: artistQID, Fetched: len(rows)}

	for _, row := range rows {
		location, created, err := s.ensureLocation(ctx, row)
		if err != nil {
			metrics.IngestRuns.WithLabelValues("error").Inc()
			return nil, err
		}
		if created {
			result.LocationsCreated++
		}

		inserted, err := s.upsertPainting(ctx, row, artist, location)
		if err != nil {
			metrics.IngestRuns.WithLabelValues("error").Inc()
			return nil, err
		}
		if inserted {
			result.Inserted++
			metrics.PaintingsIngested.WithLabelValues("inserted").Inc()
		} else {
			result.Updated++
			metrics.PaintingsIngested.WithLabelValues("updated").Inc()
		}
	}

	if s.cache != nil {
		s.cache.Clear(ctx)
	}

	metrics.IngestRuns.WithLabelValues("ok").Inc()
	metrics.IngestDuration.Observe(time.Since(start).Seconds())

	log.WithFields(log.Fields{
		"artist_qid": artistQID,
		"fetched":    result.Fetched,
		"inserted":   result.Inserted,
		"updated":    result.Updated,
		"locations":  result.LocationsCreated,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Info("ingest complete")

	return result, nil
}

// ensureArtist returns the stored artist for the QID, creating it on first
// sight. The display name comes from the first row carrying a creator label;
// a stored artist without a name gets the label backfilled.
func (s *IngestService) ensureArtist(ctx context.Context, qid string, rows []ports.PaintingRecord) (*domain.Artist, error) {
	var label *string
	for _, row := range rows {
		if row.CreatorLabel != nil {
			label = row.CreatorLabel
			break
		}
	}

	artist, err := s.artists.GetByWikidataID(ctx, qid)
	if err == nil {
		if artist.Name == nil && label != nil {
			artist.Name = label
			if err := s.artists.Update(ctx, artist); err != nil {
				return nil, fmt.Errorf("backfill artist name: %w", err)
			}
		}
		return artist, nil
	}
	if !errors.Is(err, domain.ErrArtistNotFound) {
		return nil, fmt.Errorf("lookup artist: %w", err)
	}

	now := time.Now()
	artist = &domain.Artist{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		WikidataID: qid,
		Name:       label,
	}
	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return artist, nil
}

// ensureLocation resolves the row's location, creating it when unknown and
// backfilling coordinates that are missing on the stored record. Coordinates
// already present are never overwritten.
func (s *IngestService) ensureLocation(ctx context.Context, row ports.PaintingRecord) (*domain.Location, bool, error) {
	if row.LocationQID == nil {
		return nil, false, nil
	}

	location, err := s.locations.GetByWikidataID(ctx, *row.LocationQID)
	if err == nil {
		changed := false
		if location.Latitude == nil && row.Latitude != nil {
			location.Latitude = row.Latitude
			changed = true
		}
		if location.Longitude == nil && row.Longitude != nil {
			location.Longitude = row.Longitude
			changed = true
		}
		if changed {
			if err := s.locations.Update(ctx, location); err != nil {
				return nil, false, fmt.Errorf("backfill location coordinates: %w", err)
			}
		}
		return location, false, nil
	}
	if !errors.Is(err, domain.ErrLocationNotFound) {
		return nil, false, fmt.Errorf("lookup location: %w", err)
	}

	now := time.Now()
	location = &domain.Location{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		WikidataID: *row.LocationQID,
		Name:       row.LocationLabel,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, false, fmt.Errorf("create location: %w", err)
	}
	return location, true, nil
}

// upsertPainting inserts a new painting or refreshes a stored one. Present
// incoming values win; absent ones never clobber what is already stored.
func (s *IngestService) upsertPainting(ctx context.Context, row ports.PaintingRecord, artist *domain.Artist, location *domain.Location) (bool, error) {
	painting, err := s.paintings.GetByWikidataID(ctx, row.QID)
	if err == nil {
		if row.Title != nil {
			painting.Title = row.Title
		}
		if row.Year != nil {
			painting.Year = row.Year
		}
		painting.ArtistID = artist.ID
		if location != nil {
			id := location.ID
			painting.LocationID = &id
		}
		if err := s.paintings.Update(ctx, painting); err != nil {
			return false, fmt.Errorf("update painting: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, domain.ErrPaintingNotFound) {
		return false, fmt.Errorf("lookup painting: %w", err)
	}

	now := time.Now()
	painting = &domain.Painting{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		WikidataID: row.QID,
		Title:      row.Title,
		Year:       row.Year,
		ArtistID:   artist.ID,
	}
	if location != nil {
		id := location.ID
		painting.LocationID = &id
	}
	if err := s.paintings.Create(ctx, painting); err != nil {
		return false, fmt.Errorf("create painting: %w", err)
	}
	return true, nil
}
