package domain

import "errors"

// ============================================================================
// Catalog Errors
// ============================================================================

// Not found errors
var (
	ErrArtistNotFound   = errors.New("artist not found")
	ErrPaintingNotFound = errors.New("painting not found")
	ErrLocationNotFound = errors.New("location not found")
)

// Conflict errors
var (
	ErrArtistQIDConflict   = errors.New("artist with this wikidata id already exists")
	ErrPaintingQIDConflict = errors.New("painting with this wikidata id already exists")
	ErrLocationQIDConflict = errors.New("location with this wikidata id already exists")
)

// Validation errors
var (
	ErrInvalidQID       = errors.New("wikidata id must match Q followed by digits")
	ErrInvalidArtistID  = errors.New("artist ID is required")
	ErrInvalidYearRange = errors.New("year_from cannot be greater than year_to")
)

// ============================================================================
// Ingestion Errors
// ============================================================================

var (
	ErrArtistNotPainter    = errors.New("wikidata entity is not a painter")
	ErrWikidataUnavailable = errors.New("wikidata query service unavailable")
	ErrWikidataBadResponse = errors.New("wikidata query service returned a malformed response")
)
