package handlers

import (
	"errors"
	"net/http"

	"branding-studio-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrWorkspaceNotFound),
		errors.Is(err, domain.ErrZoneNotFound),
		errors.Is(err, domain.ErrLogoNotFound),
		errors.Is(err, domain.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrCannotDeleteLastVariant),
		errors.Is(err, domain.ErrABTestingDisabled),
		errors.Is(err, domain.ErrWorkspaceIDConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingBaseImage),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidCanvas),
		errors.Is(err, domain.ErrNothingSelected),
		errors.Is(err, domain.ErrInvalidShape),
		errors.Is(err, domain.ErrInvalidLogoURL),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrInvalidLabel),
		errors.Is(err, domain.ErrInvalidVariantName),
		errors.Is(err, domain.ErrInvalidPerformance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Unprocessable: the request was valid but the content can't be used
	case errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrNoZonesDetected),
		errors.Is(err, domain.ErrCannotGenerateMockup):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, domain.ErrImageLoad),
		errors.Is(err, domain.ErrDetectZonesFailed),
		errors.Is(err, domain.ErrCatalogUnavailable),
		errors.Is(err, domain.ErrRenderFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
