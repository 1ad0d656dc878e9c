package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a museum or institution holding paintings. Coordinates are
// filled in lazily: once set they are never overwritten by absent values.
type Location struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	WikidataID string
	Name       *string
	Latitude   *float64
	Longitude  *float64
}
