package booking

import (
	"context"

	"github.com/lemonscar/detailing-api/internal/models"
)

type Repository interface {
	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID string,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID string,
		userID string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Order --------

	// CreateOrder inserts the order and, when bookingID is set, flips that
	// booking to confirmed inside the same transaction.
	CreateOrder(
		ctx context.Context,
		o *models.Order,
		bookingID *string,
	) error
}
