package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

// LocationSeed define el nombre y slug de la ubicación canónica de un tipo.
type LocationSeed struct {
	Name string
	Slug string
}

// DefaultSeeds devuelve los metadatos por defecto de las cinco ubicaciones
// bien conocidas, uno por tipo.
func DefaultSeeds() map[entity.LocationType]LocationSeed {
	return map[entity.LocationType]LocationSeed{
		entity.LocationSupplier:     {Name: "Supplier", Slug: "supplier"},
		entity.LocationStorage:      {Name: "Storage", Slug: "storage"},
		entity.LocationOutput:       {Name: "Output", Slug: "output"},
		entity.LocationCustomer:     {Name: "Customer", Slug: "customer"},
		entity.LocationLostAndFound: {Name: "Lost and Found", Slug: "lost-and-found"},
	}
}

// Registry resuelve las ubicaciones singleton por tipo, creándolas en el
// primer acceso. No es una operación contable: es bootstrap de configuración,
// pero el agregador depende de que las ubicaciones existan.
type Registry struct {
	locationRepo repository.LocationRepository
	seeds        map[entity.LocationType]LocationSeed
}

// NewRegistry construye el registro. Si seeds es nil usa DefaultSeeds.
func NewRegistry(locationRepo repository.LocationRepository, seeds map[entity.LocationType]LocationSeed) *Registry {
	if seeds == nil {
		seeds = DefaultSeeds()
	}
	return &Registry{locationRepo: locationRepo, seeds: seeds}
}

// Resolve devuelve la ubicación canónica del tipo, creándola con los
// metadatos por defecto si no existe. Idempotente y seguro ante llamadas
// concurrentes: el get-or-create se apoya en la unicidad del slug.
func (r *Registry) Resolve(ctx context.Context, t entity.LocationType) (*entity.Location, error) {
	if !t.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	seed := r.seeds[t]
	return r.locationRepo.Ensure(ctx, &entity.Location{
		ID:        uuid.New().String(),
		Name:      seed.Name,
		Slug:      seed.Slug,
		Type:      t,
		CreatedAt: time.Now(),
	})
}
