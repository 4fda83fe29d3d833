package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación.
// Si el par no tiene fila devuelve una fila en cero, no un error.
func (r *StockRepo) Get(ctx context.Context, productID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, location_id, quantity, unit_price, updated_at
		FROM stocks WHERE product_id = $1 AND location_id = $2`
	return r.scanOne(ctx, query, productID, locationID)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para el
// read-modify-write del agregador: movimientos concurrentes sobre el mismo
// par se serializan aquí; pares disjuntos no se bloquean entre sí.
// Si el par aún no tiene fila se materializa una en cero antes de bloquear
// (ON CONFLICT DO NOTHING): sin esto, dos primeros movimientos concurrentes
// sobre el mismo par no tendrían fila que bloquear y uno pisaría al otro.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.Stock, error) {
	ensure := `
		INSERT INTO stocks (product_id, location_id, quantity, unit_price, updated_at)
		VALUES ($1, $2, 0, 0, now())
		ON CONFLICT (product_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, ensure, productID, locationID); err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}
	query := `
		SELECT product_id, location_id, quantity, unit_price, updated_at
		FROM stocks WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	return r.scanOne(ctx, query, productID, locationID)
}

// Upsert inserta o actualiza cantidad y costo del par (producto, ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (product_id, location_id, quantity, unit_price, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, unit_price = EXCLUDED.unit_price, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.LocationID, stock.Quantity, stock.UnitPrice)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProduct devuelve las filas del producto con el tipo de su ubicación,
// filtradas por tipo cuando el filtro no está vacío.
func (r *StockRepo) ListByProduct(ctx context.Context, productID string, types ...entity.LocationType) ([]*entity.Stock, error) {
	query := `
		SELECT s.product_id, s.location_id, s.quantity, s.unit_price, s.updated_at, l.type
		FROM stocks s
		JOIN locations l ON l.id = s.location_id
		WHERE s.product_id = $1`
	args := []any{productID}
	if len(types) > 0 {
		placeholders := make([]string, 0, len(types))
		for i, t := range types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
			args = append(args, string(t))
		}
		query += fmt.Sprintf(" AND l.type IN (%s)", strings.Join(placeholders, ", "))
	}
	query += " ORDER BY l.slug"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	stocks := make([]*entity.Stock, 0)
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.LocationID, &s.Quantity, &s.UnitPrice, &s.UpdatedAt, &s.LocationType); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return stocks, nil
}

func (r *StockRepo) scanOne(ctx context.Context, query, productID, locationID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UnitPrice, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewStock(productID, locationID), nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}
