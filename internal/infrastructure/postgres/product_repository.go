package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto de catálogo sobre PostgreSQL
// (usable con pool o tx). La variante Simple/Bundle se decide aquí, en el
// momento de la carga, leyendo los constituyentes en un segundo query.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID carga el producto con su variante y, para bundles, sus constituyentes.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, code, kind, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Code, &p.Kind, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	if p.Kind == entity.ProductBundle {
		constituents, err := r.listConstituents(ctx, id)
		if err != nil {
			return nil, err
		}
		p.Constituents = constituents
	}
	return &p, nil
}

// Create registra un producto y, si es bundle, sus constituyentes.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, name, code, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Code, string(product.Kind),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}

	for _, c := range product.Constituents {
		insert := `
			INSERT INTO product_constituents (bundle_id, product_id, quantity)
			VALUES ($1, $2, $3)`
		if _, err := r.q.Exec(ctx, insert, product.ID, c.ProductID, c.Quantity); err != nil {
			return fmt.Errorf("create constituent: %w", err)
		}
	}
	return nil
}

// listConstituents lee la lista ordenada de constituyentes de un bundle.
func (r *ProductRepo) listConstituents(ctx context.Context, bundleID string) ([]entity.Constituent, error) {
	query := `
		SELECT product_id, quantity
		FROM product_constituents
		WHERE bundle_id = $1
		ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list constituents: %w", err)
	}
	defer rows.Close()

	constituents := make([]entity.Constituent, 0)
	for rows.Next() {
		var c entity.Constituent
		if err := rows.Scan(&c.ProductID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan constituent: %w", err)
		}
		constituents = append(constituents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list constituents: %w", err)
	}
	return constituents, nil
}
