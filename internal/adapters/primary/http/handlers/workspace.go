package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"branding-studio-service/internal/adapters/primary/http/dto"
	"branding-studio-service/internal/core/domain"
	"branding-studio-service/internal/core/services"
)

// ============================================================================
// Workspace Lifecycle
// ============================================================================

func (h *Handler) CreateWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaceSvc.Create(c.Request.Context(), services.CreateWorkspaceRequest{
		Category:     req.Category,
		BaseImageURL: req.BaseImageURL,
		Canvas:       domain.Canvas{Width: req.CanvasWidth, Height: req.CanvasHeight},
		ABTesting:    req.ABTesting,
	})
	if err != nil {
		log.WithError(err).Error("create workspace failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

func (h *Handler) GetWorkspace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ws, err := h.workspaceSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *Handler) DeleteWorkspace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) SetABTesting(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetABTestingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaceSvc.SetABTesting(c.Request.Context(), id, *req.Enabled)
	if err != nil {
		log.WithError(err).Error("toggle a/b testing failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *Handler) SetSelection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.layoutSvc.Select(c.Request.Context(), id, req.ToSelection())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

// uuidParam parses a path parameter, writing a 400 response when malformed
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return uuid.Nil, false
	}
	return id, true
}
