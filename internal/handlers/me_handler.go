package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/middleware"
	"github.com/lemonscar/detailing-api/internal/models"
)

// MeHandler serves the logged-in client's dashboard: profile, booking
// history and order history, newest first.
type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.Unauthorized(c, "profile_not_found", "Faça login novamente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileJSON(&profile)})
}

func (h *MeHandler) ListMyBookings(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var bookings []models.Booking
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "bookings_list_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingJSON(&bookings[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  out,
		"total": len(out),
	})
}

func (h *MeHandler) ListMyOrders(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var orders []models.Order
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "orders_list_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, orderJSON(&orders[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  out,
		"total": len(out),
	})
}
