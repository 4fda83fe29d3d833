package memory

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación en memoria del puerto de stock.
type StockRepo struct {
	store *Store
	inTx  bool
}

// Get obtiene la fila actual; si no existe, una fila en cero.
func (r *StockRepo) Get(_ context.Context, productID, locationID string) (*entity.Stock, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	return r.get(productID, locationID), nil
}

// GetForUpdate equivale a Get: dentro de una transacción el TxRunner ya
// sostiene el lock del store, que serializa todo read-modify-write.
func (r *StockRepo) GetForUpdate(_ context.Context, productID, locationID string) (*entity.Stock, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	return r.get(productID, locationID), nil
}

// Upsert inserta o reemplaza la fila del par (producto, ubicación).
func (r *StockRepo) Upsert(_ context.Context, stock *entity.Stock) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	clone := *stock
	r.store.stocks[stockKey{productID: stock.ProductID, locationID: stock.LocationID}] = &clone
	return nil
}

// ListByProduct devuelve las filas del producto con el tipo de ubicación
// poblado, filtradas por tipo cuando el filtro no está vacío.
func (r *StockRepo) ListByProduct(_ context.Context, productID string, types ...entity.LocationType) ([]*entity.Stock, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	rows := r.store.sortedStocks(productID)
	result := make([]*entity.Stock, 0, len(rows))
	for _, row := range rows {
		if loc, ok := r.store.locations[row.LocationID]; ok {
			row.LocationType = loc.Type
		}
		if len(types) > 0 && !containsType(types, row.LocationType) {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *StockRepo) get(productID, locationID string) *entity.Stock {
	if st, ok := r.store.stocks[stockKey{productID: productID, locationID: locationID}]; ok {
		clone := *st
		return &clone
	}
	return entity.NewStock(productID, locationID)
}

func containsType(types []entity.LocationType, t entity.LocationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
