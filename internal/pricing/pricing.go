// Package pricing converts between the formatted BRL strings the catalog
// stores ("R$ 150,00") and the numeric amounts orders persist.
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

// ParseBRL extracts the numeric value from a formatted price string.
// "R$ 150,00" -> 150.00. Thousands separators ("R$ 1.350,00") are handled.
func ParseBRL(price string) (float64, error) {
	s := strings.TrimSpace(price)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_price")
	}
	return value, nil
}

// FormatBRL renders an amount back into the site's display format.
func FormatBRL(amount float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", amount), ".", ",", 1)
}

// InstallmentLabel renders the per-installment display for credit cards:
// 150.00 over 3 -> "3x de R$ 50,00". Display only, nothing stored.
func InstallmentLabel(amount float64, installments int) string {
	if installments < 1 {
		installments = 1
	}
	return fmt.Sprintf("%dx de %s", installments, FormatBRL(amount/float64(installments)))
}
