package warehouse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/memory"
)

// TestProductCreate_Simple verifica el alta de un producto simple con la
// variante por defecto.
func TestProductCreate_Simple(t *testing.T) {
	store := memory.NewStore()
	uc := warehouse.NewProductUseCase(store.Products())

	product, err := uc.Create(context.Background(), warehouse.CreateProductInput{Name: "Caja"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductSimple, product.Kind)
	assert.False(t, product.IsBundle())
	assert.NotEmpty(t, product.ID)

	loaded, err := uc.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Caja", loaded.Name)
}

// TestProductCreate_Bundle verifica el alta de un bundle con constituyentes
// existentes.
func TestProductCreate_Bundle(t *testing.T) {
	store := memory.NewStore()
	uc := warehouse.NewProductUseCase(store.Products())
	ctx := context.Background()

	a, err := uc.Create(ctx, warehouse.CreateProductInput{Name: "A"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, warehouse.CreateProductInput{Name: "B"})
	require.NoError(t, err)

	bundle, err := uc.Create(ctx, warehouse.CreateProductInput{
		Name: "AB",
		Kind: entity.ProductBundle,
		Constituents: []entity.Constituent{
			{ProductID: a.ID, Quantity: 2},
			{ProductID: b.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, bundle.IsBundle())

	loaded, err := uc.GetByID(ctx, bundle.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Constituents, 2)
}

// TestProductCreate_Invalidos verifica los rechazos de validación.
func TestProductCreate_Invalidos(t *testing.T) {
	store := memory.NewStore()
	uc := warehouse.NewProductUseCase(store.Products())
	ctx := context.Background()

	// Sin nombre.
	_, err := uc.Create(ctx, warehouse.CreateProductInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Bundle sin constituyentes.
	_, err = uc.Create(ctx, warehouse.CreateProductInput{Name: "X", Kind: entity.ProductBundle})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Simple con constituyentes.
	_, err = uc.Create(ctx, warehouse.CreateProductInput{
		Name:         "X",
		Kind:         entity.ProductSimple,
		Constituents: []entity.Constituent{{ProductID: "a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Constituyente con cantidad inválida.
	_, err = uc.Create(ctx, warehouse.CreateProductInput{
		Name:         "X",
		Kind:         entity.ProductBundle,
		Constituents: []entity.Constituent{{ProductID: "a", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Constituyente inexistente.
	_, err = uc.Create(ctx, warehouse.CreateProductInput{
		Name:         "X",
		Kind:         entity.ProductBundle,
		Constituents: []entity.Constituent{{ProductID: "fantasma", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestHistoryQuery_OrdenYPaginacion verifica el listado de movimientos, más
// recientes primero, con límite y desplazamiento.
func TestHistoryQuery_OrdenYPaginacion(t *testing.T) {
	f := newFixture(t)

	f.move(t, f.supplier, f.storage, "1", "1.0")
	f.move(t, f.supplier, f.storage, "2", "1.0")
	f.move(t, f.supplier, f.storage, "3", "1.0")

	history := warehouse.NewHistoryQuery(f.store.Movements())
	movements, err := history.ByProduct(context.Background(), "prod-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.True(t, !movements[0].Date.Before(movements[1].Date), "el más reciente va primero")

	rest, err := history.ByProduct(context.Background(), "prod-1", 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
