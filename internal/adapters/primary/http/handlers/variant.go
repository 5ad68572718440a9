package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/adapters/primary/http/dto"
	"branding-studio-service/internal/core/domain"
	"branding-studio-service/internal/core/services"
)

// ============================================================================
// Variants
// ============================================================================

func (h *Handler) ListVariants(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	list, err := h.variantSvc.List(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.VariantResponse, 0, len(list.Variants))
	for _, v := range list.Variants {
		items = append(items, dto.ToVariantResponse(v, list.ActiveVariantID))
	}

	c.JSON(http.StatusOK, dto.ListVariantsResponse{
		Items:           items,
		Total:           len(items),
		ActiveVariantID: list.ActiveVariantID,
		ABTesting:       list.ABTesting,
	})
}

func (h *Handler) CreateVariant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		res *services.VariantResult
		err error
	)
	if req.FromVariantID != nil {
		res, err = h.variantSvc.Fork(c.Request.Context(), id, *req.FromVariantID, req.Name)
	} else {
		res, err = h.variantSvc.Create(c.Request.Context(), id, req.Name)
	}
	if err != nil {
		log.WithError(err).Error("create variant failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVariantResponse(res.Variant, res.ActiveVariantID))
}

func (h *Handler) RenameVariant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	variantID, ok := uuidParam(c, "variant_id")
	if !ok {
		return
	}

	var req dto.RenameVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.variantSvc.Rename(c.Request.Context(), id, variantID, req.Name)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVariantSummary(res.Variant, res.ActiveVariantID))
}

func (h *Handler) DeleteVariant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	variantID, ok := uuidParam(c, "variant_id")
	if !ok {
		return
	}

	ws, err := h.variantSvc.Delete(c.Request.Context(), id, variantID)
	if err != nil {
		log.WithError(err).Error("delete variant failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *Handler) SwitchVariant(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	variantID, ok := uuidParam(c, "variant_id")
	if !ok {
		return
	}

	ws, err := h.variantSvc.Switch(c.Request.Context(), id, variantID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *Handler) RecordPerformance(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	variantID, ok := uuidParam(c, "variant_id")
	if !ok {
		return
	}

	var req dto.PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.variantSvc.RecordPerformance(c.Request.Context(), id, variantID, domain.Performance{
		Views:  req.Views,
		Clicks: req.Clicks,
		CTR:    req.CTR,
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVariantSummary(res.Variant, res.ActiveVariantID))
}
