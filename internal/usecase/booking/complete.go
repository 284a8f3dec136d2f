package booking

import (
	"context"

	domain "github.com/lemonscar/detailing-api/internal/domain/booking"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/models"
)

// CompleteBooking is the staff-side transition: the car was detailed,
// the booking is done.
type CompleteBooking struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCompleteBooking(repo domain.Repository, auditSink AuditSink) *CompleteBooking {
	return &CompleteBooking{repo: repo, audit: auditSink}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	adminID string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Complete(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audrecord(adminID, "booking_completed", "booking", b.ID))

	return b, nil
}
