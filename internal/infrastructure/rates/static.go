package rates

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/currency"
)

var _ currency.RateProvider = (*StaticProvider)(nil)

// StaticProvider resuelve tasas de cambio desde una tabla en memoria cargada
// por configuración. Sustituye, con el mismo contrato, a un servicio de tasas
// externo: multiplicador de la moneda origen hacia la moneda por defecto.
type StaticProvider struct {
	rates map[string]decimal.Decimal
}

// NewStaticProvider construye el proveedor con una tabla de tasas por código de moneda.
func NewStaticProvider(rates map[string]decimal.Decimal) *StaticProvider {
	table := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		table[strings.ToUpper(code)] = rate
	}
	return &StaticProvider{rates: table}
}

// FromConfig construye el proveedor desde pares código->valor en texto
// (el formato de CURRENCY_RATES). Un valor no numérico es error.
func FromConfig(raw map[string]string) (*StaticProvider, error) {
	table := make(map[string]decimal.Decimal, len(raw))
	for code, value := range raw {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("tasa inválida para %s: %w", code, err)
		}
		table[strings.ToUpper(code)] = rate
	}
	return NewStaticProvider(table), nil
}

// Rate devuelve el multiplicador hacia la moneda por defecto, o error si la
// moneda no está en la tabla.
func (p *StaticProvider) Rate(_ context.Context, code string) (decimal.Decimal, error) {
	rate, ok := p.rates[strings.ToUpper(code)]
	if !ok {
		return decimal.Zero, fmt.Errorf("moneda %s sin tasa registrada", code)
	}
	return rate, nil
}
