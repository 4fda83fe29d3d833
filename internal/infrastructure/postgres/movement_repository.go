package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/money"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: la tabla es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del ledger.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, from_location_id, to_location_id, product_id, quantity,
			unit_price, currency, original_unit_price, original_currency, agent, note, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	var originalPrice *decimal.Decimal
	var originalCurrency *string
	if m.OriginalUnitPrice != nil {
		originalPrice = &m.OriginalUnitPrice.Amount
		originalCurrency = &m.OriginalUnitPrice.Currency
	}

	_, err := r.q.Exec(ctx, query,
		m.ID, m.FromLocationID, m.ToLocationID, m.ProductID, m.Quantity,
		m.UnitPrice.Amount, m.UnitPrice.Currency, originalPrice, originalCurrency,
		m.Agent, m.Note, m.Date, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `
		SELECT id, from_location_id, to_location_id, product_id, quantity,
			unit_price, currency, original_unit_price, original_currency, agent, note, date, created_at
		FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProduct lista los movimientos de un producto, del más reciente al más antiguo.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, from_location_id, to_location_id, product_id, quantity,
			unit_price, currency, original_unit_price, original_currency, agent, note, date, created_at
		FROM movements
		WHERE product_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*entity.Movement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var price decimal.Decimal
	var currency string
	var originalPrice *decimal.Decimal
	var originalCurrency *string

	err := row.Scan(
		&m.ID, &m.FromLocationID, &m.ToLocationID, &m.ProductID, &m.Quantity,
		&price, &currency, &originalPrice, &originalCurrency,
		&m.Agent, &m.Note, &m.Date, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.UnitPrice = money.New(price, currency)
	if originalPrice != nil && originalCurrency != nil {
		original := money.New(*originalPrice, *originalCurrency)
		m.OriginalUnitPrice = &original
	}
	return &m, nil
}
