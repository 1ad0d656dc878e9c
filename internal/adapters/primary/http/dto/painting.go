package dto

import (
	"time"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
)

type PaintingResponse struct {
	ID         uuid.UUID  `json:"id"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
	WikidataID string     `json:"wikidata_id"`
	Title      *string    `json:"title"`
	Year       *int       `json:"year"`
	ArtistID   uuid.UUID  `json:"artist_id"`
	LocationID *uuid.UUID `json:"location_id"`
}

type ListPaintingsResponse struct {
	Items      []PaintingResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

func ToPaintingResponse(p *domain.Painting) PaintingResponse {
	return PaintingResponse{
		ID:         p.ID,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
		WikidataID: p.WikidataID,
		Title:      p.Title,
		Year:       p.Year,
		ArtistID:   p.ArtistID,
		LocationID: p.LocationID,
	}
}
