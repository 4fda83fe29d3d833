package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `
		SELECT id, name, slug, type, created_at
		FROM locations WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetBySlug obtiene una ubicación por slug.
func (r *LocationRepo) GetBySlug(ctx context.Context, slug string) (*entity.Location, error) {
	query := `
		SELECT id, name, slug, type, created_at
		FROM locations WHERE slug = $1`
	return r.scanOne(ctx, query, slug)
}

// Ensure inserta la ubicación si su slug no existe y devuelve la fila vigente.
// El INSERT con ON CONFLICT DO NOTHING más el SELECT posterior es el
// get-or-create respaldado por la restricción de unicidad: dos llamadas
// concurrentes con el mismo slug convergen a la misma fila sin duplicados.
func (r *LocationRepo) Ensure(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	insert := `
		INSERT INTO locations (id, name, slug, type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO NOTHING`
	_, err := r.q.Exec(ctx, insert,
		location.ID, location.Name, location.Slug, string(location.Type), location.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure location: %w", err)
	}
	return r.GetBySlug(ctx, location.Slug)
}

func (r *LocationRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(ctx, query, arg).Scan(&l.ID, &l.Name, &l.Slug, &l.Type, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
