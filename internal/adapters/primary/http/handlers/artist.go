package handlers

import (
	"net/http"

	"helianthus/internal/adapters/primary/http/dto"
	"helianthus/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListArtists(c *gin.Context) {
	limit, offset := listParams(c)

	filter := ports.ArtistListFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	artists, total, err := h.artistSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list artists failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtistResponse, 0, len(artists))
	for _, a := range artists {
		items = append(items, dto.ToArtistResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListArtistsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artist id"})
		return
	}

	artist, err := h.artistSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

func (h *Handler) GetArtistByQID(c *gin.Context) {
	artist, err := h.artistSvc.GetByQID(c.Request.Context(), c.Query("qid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

func (h *Handler) ListArtistPaintings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artist id"})
		return
	}

	filter, ok := paintingFilterFromQuery(c)
	if !ok {
		return
	}

	paintings, total, err := h.paintingSvc.ListByArtist(c.Request.Context(), id, filter)
	if err != nil {
		log.WithError(err).Error("list artist paintings failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PaintingResponse, 0, len(paintings))
	for _, p := range paintings {
		items = append(items, dto.ToPaintingResponse(p))
	}

	c.JSON(http.StatusOK, dto.ListPaintingsResponse{
		Items:      items,
		Total:      total,
		PageSize:   filter.Limit,
		NextOffset: filter.Offset + len(items),
	})
}
