package warehouse

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

// HistoryQuery lee el historial inmutable de movimientos de un producto.
type HistoryQuery struct {
	movementRepo repository.MovementRepository
}

// NewHistoryQuery construye el lector de historial.
func NewHistoryQuery(movementRepo repository.MovementRepository) *HistoryQuery {
	return &HistoryQuery{movementRepo: movementRepo}
}

// ByProduct lista los movimientos del producto, más recientes primero.
func (q *HistoryQuery) ByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Movement, error) {
	return q.movementRepo.ListByProduct(ctx, productID, limit, offset)
}

// ByID devuelve un movimiento puntual del libro.
func (q *HistoryQuery) ByID(ctx context.Context, id string) (*entity.Movement, error) {
	return q.movementRepo.GetByID(ctx, id)
}
