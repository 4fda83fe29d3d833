package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el agregado derivado por (producto, ubicación): cantidad
// actual y costo unitario promedio ponderado. Se crea bajo demanda la primera
// vez que un movimiento toca el par y nunca se elimina. La cantidad es con
// signo: stock negativo es una señal aceptada de sobreventa, no un error.
type Stock struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	// UnitPrice siempre expresado en la moneda por defecto.
	UnitPrice decimal.Decimal
	UpdatedAt time.Time

	// LocationType viene poblado solo en lecturas con join a locations
	// (ListByProduct); no participa en escrituras.
	LocationType LocationType
}

// NewStock construye una fila en cero para un par (producto, ubicación) sin historial.
func NewStock(productID, locationID string) *Stock {
	return &Stock{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   decimal.Zero,
		UnitPrice:  decimal.Zero,
	}
}
