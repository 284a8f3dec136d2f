package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lemonscar/detailing-api/internal/audit"
	"github.com/lemonscar/detailing-api/internal/catalog"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/httpresp"
	"github.com/lemonscar/detailing-api/internal/middleware"
)

type SettingsHandler struct {
	store catalog.Store
	audit *audit.Dispatcher
}

func NewSettingsHandler(store catalog.Store, auditDispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{store: store, audit: auditDispatcher}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "settings_unavailable", "Ocorreu um erro. Tente novamente.")
		return
	}
	httpresp.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req catalog.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.PutSettings(c.Request.Context(), req); err != nil {
		httperr.Internal(c, "settings_save_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "settings_updated",
		Entity: "settings",
	})

	httpresp.OK(c, req)
}
