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

// AdminBookingHandler is the staff side: the day's agenda plus the
// complete and cancel transitions.
type AdminBookingHandler struct {
	db         *gorm.DB
	completeUC *ucBooking.CompleteBooking
	cancelUC   *ucBooking.CancelBooking
}

func NewAdminBookingHandler(
	db *gorm.DB,
	completeUC *ucBooking.CompleteBooking,
	cancelUC *ucBooking.CancelBooking,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		db:         db,
		completeUC: completeUC,
		cancelUC:   cancelUC,
	}
}

// List returns bookings for one day (?date=YYYY-MM-DD) or, without a
// filter, the whole book newest first.
func (h *AdminBookingHandler) List(c *gin.Context) {
	date := c.Query("date")

	q := h.db.Model(&models.Booking{})
	if date != "" {
		if !domain.IsValidDate(date) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where("date = ?", date).Order("time ASC")
	} else {
		q = q.Order("created_at DESC")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
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

func (h *AdminBookingHandler) Complete(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)

	b, err := h.completeUC.Execute(c.Request.Context(), adminID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingJSON(b))
}

func (h *AdminBookingHandler) Cancel(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)

	b, err := h.cancelUC.Execute(c.Request.Context(), adminID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingJSON(b))
}
