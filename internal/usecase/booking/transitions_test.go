package booking

import (
	"context"
	"testing"

	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/models"
)

func TestCompleteBooking(t *testing.T) {
	repo := newFakeRepo()
	aud := &fakeAudit{}
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: "confirmed"}

	uc := NewCompleteBooking(repo, aud)

	b, err := uc.Execute(context.Background(), "admin-1", "bk-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if b.Status != "completed" {
		t.Fatalf("expected completed, got %s", b.Status)
	}
	if repo.bookings["bk-1"].Status != "completed" {
		t.Fatalf("transition not persisted")
	}
	if len(aud.events) != 1 || aud.events[0].Action != "booking_completed" {
		t.Fatalf("expected booking_completed audit event, got %+v", aud.events)
	}
}

func TestCompleteBookingNotFound(t *testing.T) {
	uc := NewCompleteBooking(newFakeRepo(), &fakeAudit{})

	if _, err := uc.Execute(context.Background(), "admin-1", "nope"); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

func TestCancelBookingFromTerminalStateFails(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: "completed"}

	uc := NewCancelBooking(repo, &fakeAudit{})

	if _, err := uc.Execute(context.Background(), "admin-1", "bk-1"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if repo.bookings["bk-1"].Status != "completed" {
		t.Fatalf("terminal booking must not change")
	}
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	aud := &fakeAudit{}
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: "pending"}

	uc := NewCancelBooking(repo, aud)

	b, err := uc.Execute(context.Background(), "admin-1", "bk-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if b.Status != "cancelled" {
		t.Fatalf("expected cancelled, got %s", b.Status)
	}
	if len(aud.events) != 1 || aud.events[0].Action != "booking_cancelled" {
		t.Fatalf("expected booking_cancelled audit event, got %+v", aud.events)
	}
}
