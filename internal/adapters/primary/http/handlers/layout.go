package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/adapters/primary/http/dto"
	"branding-studio-service/internal/core/domain"
)

// ============================================================================
// Zones
// ============================================================================

func (h *Handler) ListZones(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ws, err := h.workspaceSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := dto.ToZoneResponses(ws.Layout.Zones)
	c.JSON(http.StatusOK, dto.ListZonesResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) AddZone(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone, err := h.layoutSvc.AddZone(c.Request.Context(), id, domain.Shape(req.Shape))
	if err != nil {
		log.WithError(err).Error("add zone failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToZoneResponse(*zone))
}

func (h *Handler) UpdateZone(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	zoneID, ok := uuidParam(c, "zone_id")
	if !ok {
		return
	}

	var req dto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone, err := h.layoutSvc.UpdateZone(c.Request.Context(), id, zoneID, req.ToZoneUpdate())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToZoneResponse(*zone))
}

func (h *Handler) RemoveZone(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	zoneID, ok := uuidParam(c, "zone_id")
	if !ok {
		return
	}

	if err := h.layoutSvc.RemoveZone(c.Request.Context(), id, zoneID); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) TransformZone(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	zoneID, ok := uuidParam(c, "zone_id")
	if !ok {
		return
	}

	var req dto.TransformZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.layoutSvc.TransformZone(c.Request.Context(), id, zoneID, req.ScaleX, req.ScaleY)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransformZoneResponse{
		Zone:        dto.ToZoneResponse(result.Zone),
		ResetHandle: result.Transform.ResetHandle,
	})
}

func (h *Handler) MoveZone(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	zoneID, ok := uuidParam(c, "zone_id")
	if !ok {
		return
	}

	var req dto.MoveZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone, err := h.layoutSvc.MoveZone(c.Request.Context(), id, zoneID, req.DX, req.DY)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToZoneResponse(*zone))
}

func (h *Handler) DetectZones(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	// the body is optional
	var req dto.DetectZonesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	zones, err := h.layoutSvc.DetectZones(c.Request.Context(), id, req.Category)
	if err != nil {
		log.WithError(err).WithField("workspace_id", id).Error("detect zones failed")
		mapDomainError(c, err)
		return
	}

	items := dto.ToZoneResponses(zones)
	c.JSON(http.StatusOK, dto.ListZonesResponse{
		Items: items,
		Total: len(items),
	})
}

// ============================================================================
// Logos
// ============================================================================

func (h *Handler) AttachLogo(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	zoneID, ok := uuidParam(c, "zone_id")
	if !ok {
		return
	}

	var req dto.AttachLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logo, err := h.layoutSvc.AttachLogo(c.Request.Context(), id, zoneID, req.URL)
	if err != nil {
		log.WithError(err).WithField("workspace_id", id).Error("attach logo failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLogoResponse(*logo))
}

func (h *Handler) UpdateLogo(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	logoID, ok := uuidParam(c, "logo_id")
	if !ok {
		return
	}

	var req dto.UpdateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logo, err := h.layoutSvc.UpdateLogo(c.Request.Context(), id, logoID, req.ToLogoUpdate())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLogoResponse(*logo))
}

func (h *Handler) RemoveLogo(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	logoID, ok := uuidParam(c, "logo_id")
	if !ok {
		return
	}

	if err := h.layoutSvc.RemoveLogo(c.Request.Context(), id, logoID); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
