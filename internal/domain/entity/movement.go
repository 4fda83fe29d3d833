package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/money"
)

// Movement representa una transferencia inmutable de un producto entre dos
// ubicaciones. Es la fuente de verdad del ledger: se crea una vez y nunca se
// edita ni se elimina; las correcciones son movimientos nuevos en sentido
// contrario. La dirección la codifica el par origen/destino, no el signo:
// Quantity es siempre positiva.
type Movement struct {
	ID             string
	FromLocationID string
	ToLocationID   string
	ProductID      string
	Quantity       decimal.Decimal
	// UnitPrice siempre en la moneda por defecto; la conversión ocurre antes
	// de crear el movimiento.
	UnitPrice money.Money
	// OriginalUnitPrice conserva el par (monto, moneda) original para
	// auditoría, solo cuando hubo conversión. Nil en caso contrario.
	OriginalUnitPrice *money.Money
	Agent             string
	Note              string
	Date              time.Time
	CreatedAt         time.Time
}
