package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var qidPattern = regexp.MustCompile(`^Q[0-9]+$`)

// ValidQID reports whether s is a well-formed Wikidata entity ID (e.g. Q5582).
func ValidQID(s string) bool {
	return qidPattern.MatchString(s)
}

// Artist is a painter sourced from Wikidata. The QID is the natural key;
// re-ingesting the same QID refreshes the row instead of duplicating it.
type Artist struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	WikidataID string
	Name       *string
}
