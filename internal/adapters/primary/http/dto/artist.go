package dto

import (
	"time"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
)

type ArtistResponse struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
	WikidataID string    `json:"wikidata_id"`
	Name       *string   `json:"name"`
}

type ListArtistsResponse struct {
	Items      []ArtistResponse `json:"items"`
	Total      int              `json:"total"`
	PageSize   int              `json:"page_size"`
	NextOffset int              `json:"next_offset"`
}

func ToArtistResponse(a *domain.Artist) ArtistResponse {
	return ArtistResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
		WikidataID: a.WikidataID,
		Name:       a.Name,
	}
}
