package handlers

import (
	"branding-studio-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	workspaceSvc *services.WorkspaceService
	layoutSvc    *services.LayoutService
	variantSvc   *services.VariantService
	mockupSvc    *services.MockupService
	catalogSvc   *services.CatalogService
}

func New(
	workspaceSvc *services.WorkspaceService,
	layoutSvc *services.LayoutService,
	variantSvc *services.VariantService,
	mockupSvc *services.MockupService,
	catalogSvc *services.CatalogService,
) *Handler {
	return &Handler{
		workspaceSvc: workspaceSvc,
		layoutSvc:    layoutSvc,
		variantSvc:   variantSvc,
		mockupSvc:    mockupSvc,
		catalogSvc:   catalogSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Workspaces
	r.POST("/workspaces", h.CreateWorkspace)
	r.GET("/workspaces/:id", h.GetWorkspace)
	r.DELETE("/workspaces/:id", h.DeleteWorkspace)
	r.PUT("/workspaces/:id/ab_testing", h.SetABTesting)
	r.PUT("/workspaces/:id/selection", h.SetSelection)

	// Zones
	r.GET("/workspaces/:id/zones", h.ListZones)
	r.POST("/workspaces/:id/zones", h.AddZone)
	r.POST("/workspaces/:id/zones/detect", h.DetectZones)
	r.PATCH("/workspaces/:id/zones/:zone_id", h.UpdateZone)
	r.DELETE("/workspaces/:id/zones/:zone_id", h.RemoveZone)
	r.POST("/workspaces/:id/zones/:zone_id/transform", h.TransformZone)
	r.POST("/workspaces/:id/zones/:zone_id/move", h.MoveZone)
	r.POST("/workspaces/:id/zones/:zone_id/logo", h.AttachLogo)

	// Logos
	r.PATCH("/workspaces/:id/logos/:logo_id", h.UpdateLogo)
	r.DELETE("/workspaces/:id/logos/:logo_id", h.RemoveLogo)

	// Variants
	r.GET("/workspaces/:id/variants", h.ListVariants)
	r.POST("/workspaces/:id/variants", h.CreateVariant)
	r.PATCH("/workspaces/:id/variants/:variant_id", h.RenameVariant)
	r.DELETE("/workspaces/:id/variants/:variant_id", h.DeleteVariant)
	r.POST("/workspaces/:id/variants/:variant_id/activate", h.SwitchVariant)
	r.PUT("/workspaces/:id/variants/:variant_id/performance", h.RecordPerformance)

	// Mockups
	r.POST("/workspaces/:id/mockups", h.GenerateMockups)

	// Catalog
	r.GET("/catalog/categories", h.ListCategories)
	r.GET("/catalog/methods", h.ListMethods)
	r.GET("/catalog/templates", h.ListTemplates)
}
