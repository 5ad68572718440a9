package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/adapters/primary/http/dto"
	"branding-studio-service/internal/core/domain"
)

// ============================================================================
// Mockups
// ============================================================================

func (h *Handler) GenerateMockups(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	batch, err := h.mockupSvc.Generate(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).WithField("workspace_id", id).Error("generate mockups failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMockupBatchResponse(batch))
}

// ============================================================================
// Catalog
// ============================================================================

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list categories failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Items: categories,
		Total: len(categories),
	})
}

func (h *Handler) ListMethods(c *gin.Context) {
	category, ok := categoryQuery(c)
	if !ok {
		return
	}

	methods, err := h.catalogSvc.Methods(c.Request.Context(), category)
	if err != nil {
		log.WithError(err).Error("list branding methods failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MethodsResponse{
		Category: category,
		Methods:  methods,
		Default:  domain.FirstMethod(methods),
	})
}

func (h *Handler) ListTemplates(c *gin.Context) {
	category, ok := categoryQuery(c)
	if !ok {
		return
	}

	templates, err := h.catalogSvc.ZoneTemplates(c.Request.Context(), category)
	if err != nil {
		log.WithError(err).Error("list zone templates failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TemplatesResponse{
		Category: category,
		Items:    templates,
		Total:    len(templates),
	})
}

func categoryQuery(c *gin.Context) (string, bool) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidCategory.Error()})
		return "", false
	}
	return category, true
}
