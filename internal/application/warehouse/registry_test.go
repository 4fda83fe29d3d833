package warehouse_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/memory"
)

// TestRegistry_ResolveCreaUnaVez verifica el get-or-create: la primera llamada
// crea la ubicación canónica y las siguientes devuelven la misma fila.
func TestRegistry_ResolveCreaUnaVez(t *testing.T) {
	store := memory.NewStore()
	registry := warehouse.NewRegistry(store.Locations(), nil)
	ctx := context.Background()

	first, err := registry.Resolve(ctx, entity.LocationStorage)
	require.NoError(t, err)
	assert.Equal(t, "storage", first.Slug)
	assert.Equal(t, entity.LocationStorage, first.Type)

	second, err := registry.Resolve(ctx, entity.LocationStorage)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "Resolve debe ser idempotente")
}

// TestRegistry_TipoInvalido verifica el rechazo de tipos desconocidos.
func TestRegistry_TipoInvalido(t *testing.T) {
	registry := warehouse.NewRegistry(memory.NewStore().Locations(), nil)

	_, err := registry.Resolve(context.Background(), entity.LocationType("GARAJE"))
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

// TestRegistry_SemillasPropias verifica que las semillas configuradas mandan
// sobre las por defecto.
func TestRegistry_SemillasPropias(t *testing.T) {
	seeds := warehouse.DefaultSeeds()
	seeds[entity.LocationStorage] = warehouse.LocationSeed{Name: "Bodega Central", Slug: "bodega-central"}
	registry := warehouse.NewRegistry(memory.NewStore().Locations(), seeds)

	loc, err := registry.Resolve(context.Background(), entity.LocationStorage)
	require.NoError(t, err)
	assert.Equal(t, "Bodega Central", loc.Name)
	assert.Equal(t, "bodega-central", loc.Slug)
}

// TestRegistry_ResolucionConcurrente verifica que llamadas concurrentes con el
// mismo tipo convergen en una única ubicación.
func TestRegistry_ResolucionConcurrente(t *testing.T) {
	store := memory.NewStore()
	registry := warehouse.NewRegistry(store.Locations(), nil)

	const n = 20
	ids := make(chan string, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc, err := registry.Resolve(context.Background(), entity.LocationOutput)
			if err != nil {
				errs <- err
				return
			}
			ids <- loc.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	seen := make(map[string]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1, "todas las resoluciones deben converger en la misma ubicación")
}
