package warehouse

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/events"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del ledger: un lector
// nunca observa un movimiento sin sus dos actualizaciones de stock, ni al revés.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// Notifier publica el evento de cambio de stock tras actualizar una fila.
// Es fire-and-forget desde el punto de vista del ledger: un fallo de
// publicación se registra en el log y jamás revierte el movimiento.
type Notifier interface {
	StockChanged(ctx context.Context, event events.StockChanged) error
}
