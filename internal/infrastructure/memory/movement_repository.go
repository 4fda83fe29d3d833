package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del puerto de movimientos.
type MovementRepo struct {
	store *Store
	inTx  bool
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if _, exists := r.store.movements[movement.ID]; exists {
		return domain.ErrDuplicate
	}
	clone := *movement
	r.store.movements[movement.ID] = &clone
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	m, ok := r.store.movements[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

// ListByProduct lista los movimientos de un producto, del más reciente al más antiguo.
func (r *MovementRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.Movement, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	all := make([]*entity.Movement, 0)
	for _, m := range r.store.movements {
		if m.ProductID != productID {
			continue
		}
		clone := *m
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })

	if offset >= len(all) {
		return []*entity.Movement{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
