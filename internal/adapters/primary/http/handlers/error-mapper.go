package handlers

import (
	"errors"
	"net/http"

	"helianthus/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrPaintingNotFound),
		errors.Is(err, domain.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrArtistQIDConflict),
		errors.Is(err, domain.ErrPaintingQIDConflict),
		errors.Is(err, domain.ErrLocationQIDConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidQID),
		errors.Is(err, domain.ErrInvalidArtistID),
		errors.Is(err, domain.ErrInvalidYearRange),
		errors.Is(err, domain.ErrArtistNotPainter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, domain.ErrWikidataUnavailable),
		errors.Is(err, domain.ErrWikidataBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
