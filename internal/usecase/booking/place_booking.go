package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/lemonscar/detailing-api/internal/catalog"
	domain "github.com/lemonscar/detailing-api/internal/domain/booking"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/mailer"
	"github.com/lemonscar/detailing-api/internal/metrics"
	"github.com/lemonscar/detailing-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PlaceBookingInput struct {
	UserID    string
	UserName  string
	UserEmail string

	ServiceID string

	Date string // YYYY-MM-DD
	Time string // HH:mm, one of the fixed slots

	VehicleModel string
	VehiclePlate string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type PlaceBooking struct {
	repo    domain.Repository
	catalog catalog.Store
	mail    MailSink
	audit   AuditSink
	metrics *metrics.Metrics
}

func NewPlaceBooking(
	repo domain.Repository,
	catalogStore catalog.Store,
	mail MailSink,
	auditSink AuditSink,
	m *metrics.Metrics,
) *PlaceBooking {
	return &PlaceBooking{
		repo:    repo,
		catalog: catalogStore,
		mail:    mail,
		audit:   auditSink,
		metrics: m,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PlaceBooking) Execute(
	ctx context.Context,
	in PlaceBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Required fields (the form's "required" guard)
	// --------------------------------------------------
	if in.ServiceID == "" ||
		strings.TrimSpace(in.VehicleModel) == "" ||
		strings.TrimSpace(in.VehiclePlate) == "" ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_required_field")
	}

	if !domain.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsValidTimeSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	// --------------------------------------------------
	// Service snapshot from the display catalog
	// --------------------------------------------------
	service, err := catalog.FindDisplayService(ctx, uc.catalog, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// No slot-conflict check on purpose: two clients may book the same
	// date and time, the shop sorts it out by hand.
	b := &models.Booking{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		Date:         in.Date,
		Time:         in.Time,
		Status:       string(domain.InitialStatus()),
		VehicleModel: strings.TrimSpace(in.VehicleModel),
		VehiclePlate: strings.ToUpper(strings.TrimSpace(in.VehiclePlate)),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Best-effort notifications, never rolled back
	// --------------------------------------------------
	uc.mail.Dispatch(mailer.Message{
		To:   in.UserEmail,
		Type: mailer.TypeBookingConfirmation,
		Data: mailer.BookingData{
			CustomerName: in.UserName,
			ServiceName:  b.ServiceName,
			Date:         b.Date,
			Time:         b.Time,
			VehicleModel: b.VehicleModel,
			VehiclePlate: b.VehiclePlate,
			Price:        b.ServicePrice,
		},
	})

	if settings, err := uc.catalog.GetSettings(ctx); err == nil && settings.Email != "" {
		uc.mail.Dispatch(mailer.Message{
			To:   settings.Email,
			Type: mailer.TypeAdminNotification,
			Data: mailer.AdminData{
				NotificationType: "new_booking",
				UserName:         in.UserName,
				UserEmail:        in.UserEmail,
				Message:          b.ServiceName + " em " + b.Date + " às " + b.Time,
			},
		})
	}

	uc.audit.Dispatch(audrecord(in.UserID, "booking_created", "booking", b.ID))

	if uc.metrics != nil {
		uc.metrics.BookingsCreated.Inc()
	}

	return b, nil
}
