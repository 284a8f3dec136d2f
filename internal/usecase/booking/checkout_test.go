package booking

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/mailer"
	"github.com/lemonscar/detailing-api/internal/models"
)

func checkoutSetup() (*Checkout, *fakeRepo, *fakeMail, *fakeAudit) {
	repo := newFakeRepo()
	mail := &fakeMail{}
	aud := &fakeAudit{}
	uc := NewCheckout(repo, mail, aud, nil)
	return uc, repo, mail, aud
}

func seedBooking(repo *fakeRepo, userID string) *models.Booking {
	b := &models.Booking{
		ID:           "bk-1",
		UserID:       userID,
		ServiceName:  "Lavagem Completa",
		ServicePrice: "R$ 150,00",
		Status:       "pending",
	}
	repo.bookings[b.ID] = b
	return b
}

func TestCheckoutPixMarksOrderPaid(t *testing.T) {
	uc, repo, mail, _ := checkoutSetup()
	b := seedBooking(repo, "user-1")

	o, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-1",
		CustomerEmail: "maria@example.com",
		BookingID:     &b.ID,
		PaymentMethod: "pix",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if o.Status != "paid" {
		t.Fatalf("pix orders are paid on confirmation, got %s", o.Status)
	}
	if o.TotalAmount != 150.00 {
		t.Fatalf("the pix discount is display only, total must be 150.00, got %.2f", o.TotalAmount)
	}
	if repo.bookings["bk-1"].Status != "confirmed" {
		t.Fatalf("booking must flip to confirmed, got %s", repo.bookings["bk-1"].Status)
	}

	if len(mail.sent) != 1 || mail.sent[0].Type != mailer.TypePaymentConfirmation {
		t.Fatalf("paid orders send a payment confirmation, got %+v", mail.sent)
	}
}

func TestCheckoutCashStaysPendingButConfirmsBooking(t *testing.T) {
	uc, repo, mail, _ := checkoutSetup()
	b := seedBooking(repo, "user-1")

	o, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-1",
		BookingID:     &b.ID,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if o.Status != "pending" {
		t.Fatalf("cash settles at the shop, order stays pending, got %s", o.Status)
	}
	if repo.bookings["bk-1"].Status != "confirmed" {
		t.Fatalf("booking confirms regardless of payment status, got %s", repo.bookings["bk-1"].Status)
	}
	if len(mail.sent) != 0 {
		t.Fatalf("no payment email for a pending order")
	}
}

func TestCheckoutCreditCardCapturesLast4AndClampsInstallments(t *testing.T) {
	uc, repo, _, _ := checkoutSetup()
	b := seedBooking(repo, "user-1")

	o, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-1",
		BookingID:     &b.ID,
		PaymentMethod: "credit_card",
		CardNumber:    "4111 1111 1111 1234",
		Installments:  12,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var details struct {
		Method string `json:"method"`
		Card   *struct {
			Last4        string `json:"last4"`
			Brand        string `json:"brand"`
			Installments int    `json:"installments"`
		} `json:"card"`
	}
	if err := json.Unmarshal(o.PaymentDetails, &details); err != nil {
		t.Fatalf("unmarshal details: %v", err)
	}

	if details.Card == nil {
		t.Fatalf("card details missing")
	}
	if details.Card.Last4 != "1234" {
		t.Fatalf("expected last4 1234, got %s", details.Card.Last4)
	}
	if details.Card.Installments != 6 {
		t.Fatalf("installments clamp at 6, got %d", details.Card.Installments)
	}
}

func TestCheckoutDebitCardForcesSingleInstallment(t *testing.T) {
	uc, repo, _, _ := checkoutSetup()
	b := seedBooking(repo, "user-1")

	o, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-1",
		BookingID:     &b.ID,
		PaymentMethod: "debit_card",
		CardNumber:    "5555666677778884",
		Installments:  4,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var details struct {
		Card struct {
			Installments int `json:"installments"`
		} `json:"card"`
	}
	if err := json.Unmarshal(o.PaymentDetails, &details); err != nil {
		t.Fatalf("unmarshal details: %v", err)
	}
	if details.Card.Installments != 1 {
		t.Fatalf("debit never splits, got %d", details.Card.Installments)
	}
}

func TestCheckoutWithoutBookingUsesProvidedPrice(t *testing.T) {
	uc, repo, _, _ := checkoutSetup()

	o, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-1",
		ServiceName:   "Polimento",
		ServicePrice:  "R$ 350,00",
		PaymentMethod: "pix",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if o.TotalAmount != 350.00 {
		t.Fatalf("expected 350.00, got %.2f", o.TotalAmount)
	}
	if o.BookingID != nil {
		t.Fatalf("stand-alone order must not reference a booking")
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(repo.orders))
	}
}

func TestCheckoutRejectsUnknownMethod(t *testing.T) {
	uc, _, _, _ := checkoutSetup()

	_, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-1",
		ServicePrice:  "R$ 80,00",
		PaymentMethod: "boleto",
	})
	if !httperr.IsBusiness(err, "invalid_payment_method") {
		t.Fatalf("expected invalid_payment_method, got %v", err)
	}
}

func TestCheckoutRejectsSomeoneElsesBooking(t *testing.T) {
	uc, repo, _, _ := checkoutSetup()
	b := seedBooking(repo, "user-1")

	_, err := uc.Execute(context.Background(), CheckoutInput{
		UserID:        "user-2",
		BookingID:     &b.ID,
		PaymentMethod: "pix",
	})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("no order should be created")
	}
}
