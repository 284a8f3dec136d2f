package booking

// ===============================
// Payment Methods
// ===============================

type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentCash       PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentCash:
		return true
	}
	return false
}

func (m PaymentMethod) IsCard() bool {
	return m == PaymentCreditCard || m == PaymentDebitCard
}

// OrderStatus is the status a fresh order gets for this method: cash is
// settled at the shop, everything else is treated as paid on confirmation.
func (m PaymentMethod) OrderStatus() OrderStatus {
	if m == PaymentCash {
		return OrderStatusPending
	}
	return OrderStatusPaid
}

// DiscountHint is the advertisement shown next to the method. Display only:
// the stored order total never has it applied.
func (m PaymentMethod) DiscountHint() string {
	switch m {
	case PaymentPix:
		return "5% de desconto"
	case PaymentDebitCard:
		return "3% de desconto"
	case PaymentCash:
		return "10% de desconto"
	}
	return ""
}

// MaxInstallments: only credit spreads payments.
func (m PaymentMethod) MaxInstallments() int {
	if m == PaymentCreditCard {
		return 6
	}
	return 1
}
