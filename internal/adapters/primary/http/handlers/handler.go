package handlers

import (
	"strconv"

	"helianthus/internal/core/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Handler struct {
	artistSvc   *services.ArtistService
	paintingSvc *services.PaintingService
	locationSvc *services.LocationService
	ingestSvc   *services.IngestService
}

func New(
	artistSvc *services.ArtistService,
	paintingSvc *services.PaintingService,
	locationSvc *services.LocationService,
	ingestSvc *services.IngestService,
) *Handler {
	return &Handler{
		artistSvc:   artistSvc,
		paintingSvc: paintingSvc,
		locationSvc: locationSvc,
		ingestSvc:   ingestSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Artists
	r.GET("/artists", h.ListArtists)
	r.GET("/artists/:id", h.GetArtist)
	r.GET("/artist", h.GetArtistByQID)
	r.GET("/artists/:id/paintings", h.ListArtistPaintings)

	// Paintings
	r.GET("/paintings", h.ListPaintings)
	r.GET("/paintings/:id", h.GetPainting)
	r.GET("/painting", h.GetPaintingByQID)

	// Locations
	r.GET("/locations", h.ListLocations)
	r.GET("/locations/:id", h.GetLocation)
	r.GET("/location", h.GetLocationByQID)
	r.GET("/locations/:id/paintings", h.ListLocationPaintings)

	// Ingestion trigger. The catalog surface itself is read-only.
	r.POST("/ingest", h.Ingest)
}

// listParams reads limit and offset with the default and cap already
// applied, so page_size in list responses reports the page actually served.
func listParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
