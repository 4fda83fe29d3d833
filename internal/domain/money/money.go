package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money representa un monto monetario etiquetado con su código de moneda (ISO 4217).
// Una moneda vacía se interpreta como la moneda por defecto del sistema.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// New construye un Money a partir de un monto y una moneda.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero devuelve un Money en cero en la moneda indicada.
func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Equal compara monto y moneda.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsZero indica si el monto es cero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}
