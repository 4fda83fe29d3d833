package repository

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar el agregado de
// stock por producto+ubicación. Las operaciones de escritura se usan dentro
// de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve la fila actual; si no existe, una fila en cero (no un error).
	Get(ctx context.Context, productID, locationID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para el read-modify-write (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, productID, locationID string) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
	// ListByProduct devuelve las filas del producto, opcionalmente filtradas
	// por tipo de ubicación; sin filtro devuelve todas.
	ListByProduct(ctx context.Context, productID string, types ...entity.LocationType) ([]*entity.Stock, error)
}
