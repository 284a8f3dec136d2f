package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/lemonscar/detailing-api/internal/domain/booking"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/middleware"
	"github.com/lemonscar/detailing-api/internal/models"
	"github.com/lemonscar/detailing-api/internal/pricing"
	ucBooking "github.com/lemonscar/detailing-api/internal/usecase/booking"
)

type CheckoutHandler struct {
	db         *gorm.DB
	checkoutUC *ucBooking.Checkout
}

func NewCheckoutHandler(db *gorm.DB, checkoutUC *ucBooking.Checkout) *CheckoutHandler {
	return &CheckoutHandler{db: db, checkoutUC: checkoutUC}
}

// --------- Requests ---------

type CheckoutRequest struct {
	BookingID    *string `json:"booking_id"`
	ServiceName  string  `json:"service_name"`
	ServicePrice string  `json:"service_price"`

	PaymentMethod string `json:"payment_method" binding:"required"`

	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	CardExpiry string `json:"card_expiry"`
	// Accepted and discarded, the checkout is simulated.
	CardCVV      string `json:"card_cvv"`
	Installments int    `json:"installments"`
}

// --------- Handlers ---------

func (h *CheckoutHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.Unauthorized(c, "profile_not_found", "Faça login novamente.")
		return
	}

	o, err := h.checkoutUC.Execute(c.Request.Context(), ucBooking.CheckoutInput{
		UserID:        userID,
		CustomerName:  profile.FullName,
		CustomerEmail: profile.Email,
		BookingID:     req.BookingID,
		ServiceName:   req.ServiceName,
		ServicePrice:  req.ServicePrice,
		PaymentMethod: req.PaymentMethod,
		CardNumber:    req.CardNumber,
		CardName:      req.CardName,
		CardExpiry:    req.CardExpiry,
		Installments:  req.Installments,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderJSON(o))
}

// PaymentMethods serves the options the checkout screen renders, each with
// its advertised discount hint. The hints never change the stored total.
func (h *CheckoutHandler) PaymentMethods(c *gin.Context) {
	type option struct {
		Method          string `json:"method"`
		DiscountHint    string `json:"discount_hint"`
		MaxInstallments int    `json:"max_installments"`
	}

	methods := []domain.PaymentMethod{
		domain.PaymentPix,
		domain.PaymentCreditCard,
		domain.PaymentDebitCard,
		domain.PaymentCash,
	}

	out := make([]option, 0, len(methods))
	for _, m := range methods {
		out = append(out, option{
			Method:          string(m),
			DiscountHint:    m.DiscountHint(),
			MaxInstallments: m.MaxInstallments(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"methods": out})
}

func orderJSON(o *models.Order) gin.H {
	return gin.H{
		"order":               o,
		"total_formatted":     pricing.FormatBRL(o.TotalAmount),
		"status_presentation": domain.PresentStatus(o.Status),
	}
}
