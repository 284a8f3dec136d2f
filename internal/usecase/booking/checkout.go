package booking

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	domain "github.com/lemonscar/detailing-api/internal/domain/booking"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/mailer"
	"github.com/lemonscar/detailing-api/internal/metrics"
	"github.com/lemonscar/detailing-api/internal/models"
	"github.com/lemonscar/detailing-api/internal/pricing"
)

// ======================================================
// INPUT
// ======================================================

type CheckoutInput struct {
	UserID        string
	CustomerName  string
	CustomerEmail string

	// Either a booking to pay for, or a bare service snapshot.
	BookingID    *string
	ServiceName  string
	ServicePrice string // formatted BRL string

	PaymentMethod string

	// Card capture, display-grade only: no Luhn, no processor.
	CardNumber   string
	CardName     string
	CardExpiry   string
	Installments int
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo    domain.Repository
	mail    MailSink
	audit   AuditSink
	metrics *metrics.Metrics
}

func NewCheckout(
	repo domain.Repository,
	mail MailSink,
	auditSink AuditSink,
	m *metrics.Metrics,
) *Checkout {
	return &Checkout{
		repo:    repo,
		mail:    mail,
		audit:   auditSink,
		metrics: m,
	}
}

type cardDetails struct {
	Last4        string `json:"last4"`
	Brand        string `json:"brand"`
	Installments int    `json:"installments"`
}

type paymentDetails struct {
	Method string       `json:"method"`
	Card   *cardDetails `json:"card,omitempty"`
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*models.Order, error) {

	method := domain.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	servicePrice := in.ServicePrice

	if in.BookingID != nil {
		b, err := uc.repo.GetBookingForUser(ctx, *in.BookingID, in.UserID)
		if err != nil {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		servicePrice = b.ServicePrice
	}

	// The advertised per-method discount is a display hint only: the
	// stored total is always the raw parsed service price.
	total, err := pricing.ParseBRL(servicePrice)
	if err != nil {
		return nil, err
	}

	details := paymentDetails{Method: string(method)}
	if method.IsCard() {
		installments := 1
		if method == domain.PaymentCreditCard {
			installments = in.Installments
			if installments < 1 {
				installments = 1
			}
			if installments > method.MaxInstallments() {
				installments = method.MaxInstallments()
			}
		}
		details.Card = &cardDetails{
			Last4:        lastFourDigits(in.CardNumber),
			Brand:        "visa", // simulated checkout, brand is a fixture
			Installments: installments,
		}
	}

	rawDetails, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}

	o := &models.Order{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		BookingID:      in.BookingID,
		TotalAmount:    total,
		Status:         string(method.OrderStatus()),
		PaymentMethod:  string(method),
		PaymentDetails: datatypes.JSON(rawDetails),
	}

	if err := uc.repo.CreateOrder(ctx, o, in.BookingID); err != nil {
		return nil, err
	}

	if method.OrderStatus() == domain.OrderStatusPaid {
		uc.mail.Dispatch(mailer.Message{
			To:   in.CustomerEmail,
			Type: mailer.TypePaymentConfirmation,
			Data: mailer.PaymentData{
				CustomerName:  in.CustomerName,
				Amount:        pricing.FormatBRL(o.TotalAmount),
				PaymentMethod: string(method),
				TransactionID: o.ID,
			},
		})
	}

	uc.audit.Dispatch(audrecord(in.UserID, "order_created", "order", o.ID))

	if uc.metrics != nil {
		uc.metrics.OrdersCreated.WithLabelValues(string(method), o.Status).Inc()
	}

	return o, nil
}

func lastFourDigits(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
