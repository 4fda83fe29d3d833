package repository

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos del
// ledger. Solo inserción y lectura: los movimientos nunca se mutan ni borran.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Movement, error)
}
