package handlers

import (
	"net/http"

	"helianthus/internal/adapters/primary/http/dto"
	"helianthus/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListLocations(c *gin.Context) {
	limit, offset := listParams(c)

	filter := ports.LocationListFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	locations, total, err := h.locationSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list locations failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		items = append(items, dto.ToLocationResponse(l))
	}

	c.JSON(http.StatusOK, dto.ListLocationsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	location, err := h.locationSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

func (h *Handler) GetLocationByQID(c *gin.Context) {
	location, err := h.locationSvc.GetByQID(c.Request.Context(), c.Query("qid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

func (h *Handler) ListLocationPaintings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	filter, ok := paintingFilterFromQuery(c)
	if !ok {
		return
	}

	paintings, total, err := h.locationSvc.ListPaintings(c.Request.Context(), id, filter)
	if err != nil {
		log.WithError(err).Error("list location paintings failed")
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
