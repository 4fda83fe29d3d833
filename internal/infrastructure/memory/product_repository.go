package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto de catálogo.
type ProductRepo struct {
	store *Store
	inTx  bool
}

// GetByID carga el producto con su variante y constituyentes.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	clone.Constituents = append([]entity.Constituent(nil), p.Constituents...)
	return &clone, nil
}

// Create registra un producto en el catálogo.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, exists := r.store.products[product.ID]; exists {
		return domain.ErrDuplicate
	}
	clone := *product
	clone.Constituents = append([]entity.Constituent(nil), product.Constituents...)
	r.store.products[product.ID] = &clone
	return nil
}
