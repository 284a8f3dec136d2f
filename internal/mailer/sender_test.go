package mailer

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSendWithoutAPIKeyIsANoOp(t *testing.T) {
	s := NewSender(SenderConfig{From: "noreply@lemonscar.com.br", FromName: "Lemon's Car"}, zap.NewNop())

	res := s.Send(context.Background(), Message{
		To:   "maria@example.com",
		Type: TypeBookingConfirmation,
		Data: BookingData{CustomerName: "Maria"},
	})

	if res.Success {
		t.Fatalf("missing key must not report success")
	}
	if res.Message != "SendGrid não configurado" {
		t.Fatalf("unexpected message: %s", res.Message)
	}
}

func TestRenderBookingConfirmation(t *testing.T) {
	subject, html, err := RenderTemplate(TypeBookingConfirmation, BookingData{
		CustomerName: "Maria",
		ServiceName:  "Lavagem Completa",
		Date:         "2026-09-15",
		Time:         "09:00",
		VehicleModel: "Fiat Argo",
		VehiclePlate: "ABC1D23",
		Price:        "R$ 150,00",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if subject == "" {
		t.Fatalf("expected a default subject")
	}
	for _, want := range []string{"Maria", "Lavagem Completa", "R$ 150,00", "ABC1D23"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
}

func TestRenderPaymentConfirmation(t *testing.T) {
	_, html, err := RenderTemplate(TypePaymentConfirmation, PaymentData{
		CustomerName:  "Maria",
		Amount:        "R$ 150,00",
		PaymentMethod: "pix",
		TransactionID: "ord-1",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "ord-1") {
		t.Fatalf("rendered html missing transaction id")
	}
}

func TestRenderUnknownTypeFails(t *testing.T) {
	if _, _, err := RenderTemplate(Type("newsletter"), nil); err == nil {
		t.Fatalf("expected error for unknown template type")
	}
}
