package repository

import (
	"context"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para ubicaciones.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Location, error)
	// Ensure es un get-or-create idempotente por slug, respaldado por la
	// restricción de unicidad (no por check-then-create a nivel aplicación).
	// Llamadas concurrentes con el mismo slug devuelven la misma fila.
	Ensure(ctx context.Context, location *entity.Location) (*entity.Location, error)
}
