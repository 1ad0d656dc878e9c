package dto

import "helianthus/internal/core/services"

type IngestRequest struct {
	ArtistQID string `json:"artist_qid" binding:"required"`
	Limit     int    `json:"limit"`
}

type IngestResponse struct {
	ArtistQID        string `json:"artist_qid"`
	Fetched          int    `json:"fetched"`
	Inserted         int    `json:"inserted"`
	Updated          int    `json:"updated"`
	LocationsCreated int    `json:"locations_created"`
}

func ToIngestResponse(r *services.IngestResult) IngestResponse {
	return IngestResponse{
		ArtistQID:        r.ArtistQID,
		Fetched:          r.Fetched,
		Inserted:         r.Inserted,
		Updated:          r.Updated,
		LocationsCreated: r.LocationsCreated,
	}
}
