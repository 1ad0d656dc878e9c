package handlers

import (
	"net/http"

	"helianthus/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Ingest runs a synchronous ingestion for one artist. Runs are bounded by
// the request limit (default 200), so a run completes well within normal
// request deadlines.
func (h *Handler) Ingest(c *gin.Context) {
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ingestSvc.Run(c.Request.Context(), req.ArtistQID, req.Limit)
	if err != nil {
		log.WithError(err).WithField("artist_qid", req.ArtistQID).Error("ingest failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIngestResponse(result))
}
