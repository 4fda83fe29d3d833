package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación en memoria del puerto de ubicaciones.
type LocationRepo struct {
	store *Store
	inTx  bool
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	loc, ok := r.store.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *loc
	return &clone, nil
}

// GetBySlug obtiene una ubicación por slug.
func (r *LocationRepo) GetBySlug(_ context.Context, slug string) (*entity.Location, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	if loc := r.findBySlug(slug); loc != nil {
		clone := *loc
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

// Ensure devuelve la ubicación con ese slug, creándola si no existe.
// El get-or-create completo ocurre bajo el lock del store: dos llamadas
// concurrentes con el mismo slug nunca crean filas duplicadas.
func (r *LocationRepo) Ensure(_ context.Context, location *entity.Location) (*entity.Location, error) {
	unlock := r.store.lock(r.inTx)
	defer unlock()

	if existing := r.findBySlug(location.Slug); existing != nil {
		clone := *existing
		return &clone, nil
	}

	clone := *location
	if clone.ID == "" {
		clone.ID = uuid.New().String()
	}
	r.store.locations[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *LocationRepo) findBySlug(slug string) *entity.Location {
	for _, loc := range r.store.locations {
		if loc.Slug == slug {
			return loc
		}
	}
	return nil
}
