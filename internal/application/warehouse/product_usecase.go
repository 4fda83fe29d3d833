package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
)

// ProductUseCase registra y consulta productos del catálogo desde el punto de
// vista del ledger: simples y bundles con sus constituyentes.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProductInput entrada para registrar un producto.
type CreateProductInput struct {
	Name         string
	Code         string
	Kind         entity.ProductKind
	Constituents []entity.Constituent
}

// Create valida y persiste el producto. Un bundle exige al menos un
// constituyente con cantidad entera >= 1; un simple no admite constituyentes.
func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Kind == "" {
		input.Kind = entity.ProductSimple
	}
	switch input.Kind {
	case entity.ProductSimple:
		if len(input.Constituents) > 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.ProductBundle:
		if len(input.Constituents) == 0 {
			return nil, domain.ErrInvalidInput
		}
		for _, c := range input.Constituents {
			if c.ProductID == "" || c.Quantity < 1 {
				return nil, domain.ErrInvalidInput
			}
			if _, err := uc.productRepo.GetByID(ctx, c.ProductID); err != nil {
				return nil, err
			}
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Code:         input.Code,
		Kind:         input.Kind,
		Constituents: input.Constituents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve el producto con su variante resuelta.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}
