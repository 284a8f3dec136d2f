package booking

import "testing"

func TestPaymentMethodOrderStatus(t *testing.T) {
	cases := []struct {
		method PaymentMethod
		want   OrderStatus
	}{
		{PaymentPix, OrderStatusPaid},
		{PaymentCreditCard, OrderStatusPaid},
		{PaymentDebitCard, OrderStatusPaid},
		{PaymentCash, OrderStatusPending},
	}

	for _, tc := range cases {
		if got := tc.method.OrderStatus(); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.method, tc.want, got)
		}
	}
}

func TestPaymentMethodValid(t *testing.T) {
	if PaymentMethod("boleto").Valid() {
		t.Fatalf("boleto is not offered")
	}
	if !PaymentPix.Valid() {
		t.Fatalf("pix must be valid")
	}
}

func TestMaxInstallments(t *testing.T) {
	if got := PaymentCreditCard.MaxInstallments(); got != 6 {
		t.Fatalf("credit: expected 6, got %d", got)
	}
	if got := PaymentDebitCard.MaxInstallments(); got != 1 {
		t.Fatalf("debit: expected 1, got %d", got)
	}
}

func TestPresentStatusFallsBackToPending(t *testing.T) {
	p := PresentStatus("whatever")
	if p.Label != "Pendente" {
		t.Fatalf("expected Pendente fallback, got %s", p.Label)
	}
}

func TestPresentStatusKnownLabels(t *testing.T) {
	cases := map[string]string{
		"pending":   "Pendente",
		"confirmed": "Confirmado",
		"completed": "Concluído",
		"cancelled": "Cancelado",
		"paid":      "Pago",
		"refunded":  "Reembolsado",
	}
	for status, label := range cases {
		if got := PresentStatus(status).Label; got != label {
			t.Fatalf("%s: expected %s, got %s", status, label, got)
		}
	}
}
