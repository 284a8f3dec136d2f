package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lemonscar/detailing-api/internal/audit"
	"github.com/lemonscar/detailing-api/internal/catalog"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/httpresp"
	"github.com/lemonscar/detailing-api/internal/middleware"
)

// CatalogHandler serves the public service list and the admin editor
// behind it. The public side always has something to show: when the admin
// never published a list, the hardcoded defaults go out.
type CatalogHandler struct {
	store catalog.Store
	audit *audit.Dispatcher
}

func NewCatalogHandler(store catalog.Store, auditDispatcher *audit.Dispatcher) *CatalogHandler {
	return &CatalogHandler{store: store, audit: auditDispatcher}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	IconName    string   `json:"icon_name"`
	Features    []string `json:"features"`
}

// --------- Public ---------

func (h *CatalogHandler) ListPublic(c *gin.Context) {
	services, err := catalog.DisplayServices(c.Request.Context(), h.store)
	if err != nil {
		httperr.Internal(c, "catalog_unavailable", "Ocorreu um erro. Tente novamente.")
		return
	}
	httpresp.List(c, services)
}

// --------- Admin editor ---------

func (h *CatalogHandler) ListAdmin(c *gin.Context) {
	// The editor sees the stored list as-is, without the default fallback,
	// so an empty list reads as "nothing published yet".
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "catalog_unavailable", "Ocorreu um erro. Tente novamente.")
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	s := catalog.Service{
		ID:          catalog.NewServiceID(req.Name, time.Now()),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		IconName:    req.IconName,
		Features:    req.Features,
	}

	if err := h.store.AddService(c.Request.Context(), s); err != nil {
		writeError(c, err)
		return
	}

	h.adminAudit(c, "service_created", s.ID)

	c.JSON(http.StatusCreated, s)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	s := catalog.Service{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		IconName:    req.IconName,
		Features:    req.Features,
	}

	if err := h.store.UpdateService(c.Request.Context(), id, s); err != nil {
		writeError(c, err)
		return
	}

	h.adminAudit(c, "service_updated", id)

	httpresp.OK(c, s)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	h.adminAudit(c, "service_deleted", id)

	httpresp.OK(c, gin.H{"deleted": id})
}

func (h *CatalogHandler) adminAudit(c *gin.Context, action, serviceID string) {
	userID := c.GetString(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: action,
		Entity: "service",
		// Catalog ids are slugs, not uuids, so they travel in the metadata.
		Metadata: gin.H{"service_id": serviceID},
	})
}
