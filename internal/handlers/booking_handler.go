package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/lemonscar/detailing-api/internal/domain/booking"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/middleware"
	"github.com/lemonscar/detailing-api/internal/models"
	ucBooking "github.com/lemonscar/detailing-api/internal/usecase/booking"
)

type BookingHandler struct {
	db      *gorm.DB
	placeUC *ucBooking.PlaceBooking
}

func NewBookingHandler(db *gorm.DB, placeUC *ucBooking.PlaceBooking) *BookingHandler {
	return &BookingHandler{db: db, placeUC: placeUC}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ServiceID    string `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	VehicleModel string `json:"vehicle_model" binding:"required"`
	VehiclePlate string `json:"vehicle_plate" binding:"required"`
	Notes        string `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Name and email feed the confirmation emails.
	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.Unauthorized(c, "profile_not_found", "Faça login novamente.")
		return
	}

	b, err := h.placeUC.Execute(c.Request.Context(), ucBooking.PlaceBookingInput{
		UserID:       userID,
		UserName:     profile.FullName,
		UserEmail:    profile.Email,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		VehicleModel: req.VehicleModel,
		VehiclePlate: req.VehiclePlate,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingJSON(b))
}

// TimeSlots serves the fixed grid the booking form renders.
func (h *BookingHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": domain.TimeSlots})
}

// bookingJSON decorates a booking with the label and color the clients
// render for its status.
func bookingJSON(b *models.Booking) gin.H {
	return gin.H{
		"booking":             b,
		"status_presentation": domain.PresentStatus(b.Status),
	}
}
