package booking

import (
	"context"

	domain "github.com/lemonscar/detailing-api/internal/domain/booking"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCancelBooking(repo domain.Repository, auditSink AuditSink) *CancelBooking {
	return &CancelBooking{repo: repo, audit: auditSink}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	adminID string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audrecord(adminID, "booking_cancelled", "booking", b.ID))

	return b, nil
}
