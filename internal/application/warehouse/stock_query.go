package warehouse

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/money"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
	domwarehouse "github.com/tu-usuario/bazaar-warehouse/internal/domain/warehouse"
)

// StockQuery resuelve cantidad y costo unitario de un producto, despachando
// al agregado crudo para productos simples o a la resolución por
// constituyentes para bundles. Es de solo lectura: un bundle jamás tiene
// asientos propios en el ledger.
type StockQuery struct {
	stockRepo       repository.StockRepository
	productRepo     repository.ProductRepository
	defaultCurrency string
}

// NewStockQuery construye el lector de stock.
func NewStockQuery(stockRepo repository.StockRepository, productRepo repository.ProductRepository, defaultCurrency string) *StockQuery {
	return &StockQuery{
		stockRepo:       stockRepo,
		productRepo:     productRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Quantity devuelve la cantidad agregada del producto sobre las ubicaciones
// cuyo tipo está en el filtro (todas si el filtro está vacío). Para bundles:
// mínimo entre constituyentes de (cantidad // unidades-por-bundle), con
// división entera hacia abajo; la disponibilidad negativa se propaga.
func (q *StockQuery) Quantity(ctx context.Context, productID string, types ...entity.LocationType) (decimal.Decimal, error) {
	product, err := q.productRepo.GetByID(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	if !product.IsBundle() {
		return q.simpleQuantity(ctx, productID, types...)
	}

	constituents, err := q.constituentStocks(ctx, product, types...)
	if err != nil {
		return decimal.Zero, err
	}
	return domwarehouse.BundleQuantity(constituents), nil
}

// UnitCost devuelve el costo unitario del producto en la moneda por defecto.
// Simple: media ponderada por cantidad sobre sus filas (media simple si los
// pesos suman cero, cero sin filas). Bundle: media aritmética de los costos
// por constituyente.
func (q *StockQuery) UnitCost(ctx context.Context, productID string, types ...entity.LocationType) (money.Money, error) {
	product, err := q.productRepo.GetByID(ctx, productID)
	if err != nil {
		return money.Money{}, err
	}
	if !product.IsBundle() {
		value, err := q.simpleUnitCost(ctx, productID, types...)
		if err != nil {
			return money.Money{}, err
		}
		return money.New(value, q.defaultCurrency), nil
	}

	constituents, err := q.constituentStocks(ctx, product, types...)
	if err != nil {
		return money.Money{}, err
	}
	return money.New(domwarehouse.BundleUnitCost(constituents), q.defaultCurrency), nil
}

// Rows devuelve las filas de stock del producto para lecturas por ubicación.
func (q *StockQuery) Rows(ctx context.Context, productID string, types ...entity.LocationType) ([]*entity.Stock, error) {
	return q.stockRepo.ListByProduct(ctx, productID, types...)
}

func (q *StockQuery) simpleQuantity(ctx context.Context, productID string, types ...entity.LocationType) (decimal.Decimal, error) {
	rows, err := q.stockRepo.ListByProduct(ctx, productID, types...)
	if err != nil {
		return decimal.Zero, err
	}
	return domwarehouse.SumQuantity(rows), nil
}

func (q *StockQuery) simpleUnitCost(ctx context.Context, productID string, types ...entity.LocationType) (decimal.Decimal, error) {
	rows, err := q.stockRepo.ListByProduct(ctx, productID, types...)
	if err != nil {
		return decimal.Zero, err
	}
	return domwarehouse.WeightedUnitPrice(rows), nil
}

// constituentStocks agrega cantidad y costo de cada constituyente del bundle
// leyendo directamente sus filas de stock, con el mismo filtro de tipos.
func (q *StockQuery) constituentStocks(ctx context.Context, product *entity.Product, types ...entity.LocationType) ([]domwarehouse.ConstituentStock, error) {
	constituents := make([]domwarehouse.ConstituentStock, 0, len(product.Constituents))
	for _, c := range product.Constituents {
		rows, err := q.stockRepo.ListByProduct(ctx, c.ProductID, types...)
		if err != nil {
			return nil, err
		}
		constituents = append(constituents, domwarehouse.ConstituentStock{
			Quantity:  domwarehouse.SumQuantity(rows),
			UnitCost:  domwarehouse.WeightedUnitPrice(rows),
			PerBundle: c.Quantity,
		})
	}
	return constituents, nil
}
