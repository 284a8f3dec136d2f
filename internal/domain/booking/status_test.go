package booking

import (
	"testing"

	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/models"
)

func TestConfirmFromPending(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}
	if err := Confirm(b); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	if err := Confirm(b); err != nil {
		t.Fatalf("confirming a confirmed booking should be a no-op: %v", err)
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}
}

func TestCompleteFromTerminalStateFails(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		b := &models.Booking{Status: string(status)}
		err := Complete(b)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("complete from %s: expected invalid_state, got %v", status, err)
		}
		if b.Status != string(status) {
			t.Fatalf("status mutated on failed transition: %s", b.Status)
		}
	}
}

func TestCancelFromPendingAndConfirmed(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusConfirmed} {
		b := &models.Booking{Status: string(status)}
		if err := Cancel(b); err != nil {
			t.Fatalf("cancel from %s: %v", status, err)
		}
		if b.Status != string(StatusCancelled) {
			t.Fatalf("expected cancelled, got %s", b.Status)
		}
	}
}

func TestCancelFromCompletedFails(t *testing.T) {
	b := &models.Booking{Status: string(StatusCompleted)}
	if err := Cancel(b); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
