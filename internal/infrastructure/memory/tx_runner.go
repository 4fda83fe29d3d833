package memory

import (
	"context"

	appwarehouse "github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ appwarehouse.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks "transaccionales" sobre el store en memoria.
// Toma el lock del store durante toda la transacción (serializa movimientos
// concurrentes, el equivalente del bloqueo de fila) y toma un snapshot de los
// mapas mutables para restaurarlos si el callback falla: o se aplica todo, o
// nada.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios atados a la transacción y hace
// commit (no-op) o rollback (restauración del snapshot).
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	movements, stocks := r.store.snapshot()

	movRepo := &MovementRepo{store: r.store, inTx: true}
	stockRepo := &StockRepo{store: r.store, inTx: true}

	if err := fn(movRepo, stockRepo); err != nil {
		r.store.restore(movements, stocks)
		return err
	}
	return nil
}
