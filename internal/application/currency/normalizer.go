package currency

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/money"
)

// RateProvider es el puerto hacia la fuente externa de tasas de cambio.
// Rate devuelve el multiplicador que lleva un monto de la moneda origen a la
// moneda por defecto del sistema.
type RateProvider interface {
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// Normalizer convierte montos a la moneda por defecto del sistema.
// El ledger lo invoca una vez por precio unitario entrante, antes de abrir la
// transacción (la consulta de tasa nunca se hace bajo el lock de stock).
type Normalizer struct {
	provider        RateProvider
	defaultCurrency string
}

// NewNormalizer construye el normalizador con su fuente de tasas.
func NewNormalizer(provider RateProvider, defaultCurrency string) *Normalizer {
	return &Normalizer{provider: provider, defaultCurrency: defaultCurrency}
}

// DefaultCurrency devuelve la moneda por defecto configurada.
func (n *Normalizer) DefaultCurrency() string {
	return n.defaultCurrency
}

// ToDefault devuelve el monto equivalente en la moneda por defecto y, si hubo
// conversión real, el par (monto, moneda) original; nil en caso contrario.
// Un monto sin moneda se asume ya en la moneda por defecto (no-op, no error).
// Devuelve domain.ErrRateUnavailable cuando el proveedor no tiene tasa.
func (n *Normalizer) ToDefault(ctx context.Context, price money.Money) (money.Money, *money.Money, error) {
	if price.Currency == "" || price.Currency == n.defaultCurrency {
		return money.New(price.Amount, n.defaultCurrency), nil, nil
	}

	rate, err := n.provider.Rate(ctx, price.Currency)
	if err != nil {
		return money.Money{}, nil, fmt.Errorf("%w: %s: %v", domain.ErrRateUnavailable, price.Currency, err)
	}

	original := price
	converted := money.New(price.Amount.Mul(rate), n.defaultCurrency)
	return converted, &original, nil
}
