package dto

import (
	"time"

	"github.com/google/uuid"

	"helianthus/internal/core/domain"
)

type LocationResponse struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
	WikidataID string    `json:"wikidata_id"`
	Name       *string   `json:"name"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
}

type ListLocationsResponse struct {
	Items      []LocationResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:         l.ID,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
		WikidataID: l.WikidataID,
		Name:       l.Name,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
	}
}
