package repository

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// ProductRepository define el puerto de consulta al catálogo de productos.
// El catálogo en sí es un colaborador externo; el ledger solo necesita saber
// si un producto es bundle y, en tal caso, sus constituyentes.
type ProductRepository interface {
	// GetByID carga el producto con la variante ya decidida: Kind y, para
	// bundles, la lista ordenada de constituyentes.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
}
