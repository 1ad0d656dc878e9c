package domain

import (
	"time"

	"github.com/google/uuid"
)

// Painting is a single catalog entry. A painting always belongs to an artist;
// the location is optional because Wikidata frequently lacks P276 statements.
type Painting struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	WikidataID string
	Title      *string
	Year       *int

	ArtistID   uuid.UUID
	LocationID *uuid.UUID
}
