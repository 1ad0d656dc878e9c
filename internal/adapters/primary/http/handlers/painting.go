package handlers

import (
	"net/http"
	"strconv"

	"helianthus/internal/adapters/primary/http/dto"
	"helianthus/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListPaintings(c *gin.Context) {
	filter, ok := paintingFilterFromQuery(c)
	if !ok {
		return
	}

	if qid := c.Query("artist_id"); qid != "" {
		id, err := uuid.Parse(qid)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artist_id"})
			return
		}
		filter.ArtistID = id
	}
	if qid := c.Query("location_id"); qid != "" {
		id, err := uuid.Parse(qid)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_id"})
			return
		}
		filter.LocationID = id
	}

	paintings, total, err := h.paintingSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list paintings failed")
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

func (h *Handler) GetPainting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid painting id"})
		return
	}

	painting, err := h.paintingSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaintingResponse(painting))
}

func (h *Handler) GetPaintingByQID(c *gin.Context) {
	painting, err := h.paintingSvc.GetByQID(c.Request.Context(), c.Query("qid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaintingResponse(painting))
}

// paintingFilterFromQuery reads the shared painting list parameters. On a
// malformed year it writes the 400 response itself and reports !ok.
func paintingFilterFromQuery(c *gin.Context) (ports.PaintingListFilter, bool) {
	limit, offset := listParams(c)

	filter := ports.PaintingListFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	if v := c.Query("year_from"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year_from"})
			return filter, false
		}
		filter.YearFrom = &year
	}
	if v := c.Query("year_to"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year_to"})
			return filter, false
		}
		filter.YearTo = &year
	}

	return filter, true
}
