package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/currency"
	"github.com/tu-usuario/bazaar-warehouse/internal/application/dto"
	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/memory"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/rates"
	httpRouter "github.com/tu-usuario/bazaar-warehouse/internal/interfaces/http"
	"github.com/tu-usuario/bazaar-warehouse/pkg/logger"
)

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// newTestApp arma la API completa sobre la infraestructura en memoria.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	provider, err := rates.FromConfig(map[string]string{"USD": "0.74"})
	require.NoError(t, err)

	registry := warehouse.NewRegistry(store.Locations(), nil)
	moveUC := warehouse.NewMoveUseCase(
		memory.NewTxRunner(store),
		store.Locations(),
		currency.NewNormalizer(provider, "EUR"),
		nil,
		logger.Nop(),
	)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		MoveUC:    moveUC,
		ProductUC: warehouse.NewProductUseCase(store.Products()),
		History:   warehouse.NewHistoryQuery(store.Movements()),
		StockQ:    warehouse.NewStockQuery(store.Stocks(), store.Products(), "EUR"),
		Registry:  registry,
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func createProduct(t *testing.T, app *fiber.App, body dto.CreateProductRequest) dto.ProductResponse {
	t.Helper()
	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/warehouse/products", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)
	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// TestAPI_MovimientoCompleto verifica el alta de un movimiento por tipos de
// ubicación y su lectura posterior por id y por historial.
func TestAPI_MovimientoCompleto(t *testing.T) {
	app, _ := newTestApp(t)
	product := createProduct(t, app, dto.CreateProductRequest{Name: "Caja"})

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/warehouse/movements", fiber.Map{
		"from_location_type": "supplier",
		"to_location_type":   "storage",
		"product_id":         product.ID,
		"quantity":           "10",
		"unit_price":         "1.0",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)

	var movement dto.MovementResponse
	require.NoError(t, json.Unmarshal(raw, &movement))
	assert.NotEmpty(t, movement.ID)
	assert.Equal(t, "EUR", movement.Currency)
	assert.True(t, movement.Quantity.Equal(decimalFrom(t, "10")))

	resp, raw = doJSON(t, app, nethttp.MethodGet, "/api/warehouse/movements/"+movement.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "cuerpo: %s", raw)

	resp, raw = doJSON(t, app, nethttp.MethodGet, "/api/warehouse/products/"+product.ID+"/movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var history []dto.MovementResponse
	require.NoError(t, json.Unmarshal(raw, &history))
	assert.Len(t, history, 1)
}

// TestAPI_StockDeProducto verifica la lectura agregada de stock tras dos
// entradas, incluido el filtro por tipo de ubicación.
func TestAPI_StockDeProducto(t *testing.T) {
	app, _ := newTestApp(t)
	product := createProduct(t, app, dto.CreateProductRequest{Name: "Caja"})

	for _, body := range []fiber.Map{
		{"from_location_type": "supplier", "to_location_type": "storage", "product_id": product.ID, "quantity": "10", "unit_price": "1.0"},
		{"from_location_type": "supplier", "to_location_type": "storage", "product_id": product.ID, "quantity": "10", "unit_price": "0.5"},
	} {
		resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/warehouse/movements", body)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, "cuerpo: %s", raw)
	}

	resp, raw := doJSON(t, app, nethttp.MethodGet, "/api/warehouse/products/"+product.ID+"/stock?location_type=storage", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "cuerpo: %s", raw)

	var summary dto.StockSummaryResponse
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.True(t, summary.Quantity.Equal(decimalFrom(t, "20")))
	assert.True(t, summary.UnitCost.Equal(decimalFrom(t, "0.75")), "costo %s", summary.UnitCost)
	assert.Equal(t, "EUR", summary.Currency)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "STORAGE", summary.Rows[0].LocationType)
}

// TestAPI_ErroresDeMovimiento verifica el mapeo de errores de dominio a
// estados HTTP.
func TestAPI_ErroresDeMovimiento(t *testing.T) {
	app, _ := newTestApp(t)
	product := createProduct(t, app, dto.CreateProductRequest{Name: "Caja"})

	// Cantidad negativa -> 400.
	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/warehouse/movements", fiber.Map{
		"from_location_type": "supplier",
		"to_location_type":   "storage",
		"product_id":         product.ID,
		"quantity":           "-1",
		"unit_price":         "1.0",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INVALID_QUANTITY", errResp.Code)

	// Tipo de ubicación desconocido -> 400.
	resp, _ = doJSON(t, app, nethttp.MethodPost, "/api/warehouse/movements", fiber.Map{
		"from_location_type": "garaje",
		"to_location_type":   "storage",
		"product_id":         product.ID,
		"quantity":           "1",
		"unit_price":         "1.0",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Moneda sin tasa -> 422.
	resp, raw = doJSON(t, app, nethttp.MethodPost, "/api/warehouse/movements", fiber.Map{
		"from_location_type": "supplier",
		"to_location_type":   "storage",
		"product_id":         product.ID,
		"quantity":           "1",
		"unit_price":         "1.0",
		"currency":           "JPY",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "cuerpo: %s", raw)

	// Movimiento inexistente -> 404.
	resp, _ = doJSON(t, app, nethttp.MethodGet, "/api/warehouse/movements/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestAPI_Ubicaciones verifica el listado de ubicaciones canónicas y la
// resolución por tipo.
func TestAPI_Ubicaciones(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, nethttp.MethodGet, "/api/warehouse/locations", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var locations []dto.LocationResponse
	require.NoError(t, json.Unmarshal(raw, &locations))
	assert.Len(t, locations, 5)

	resp, raw = doJSON(t, app, nethttp.MethodGet, "/api/warehouse/locations/lost-and-found", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var loc dto.LocationResponse
	require.NoError(t, json.Unmarshal(raw, &loc))
	assert.Equal(t, "LOST_AND_FOUND", loc.Type)

	resp, _ = doJSON(t, app, nethttp.MethodGet, "/api/warehouse/locations/garaje", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestAPI_ProductoInvalido verifica los rechazos del alta de productos.
func TestAPI_ProductoInvalido(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, nethttp.MethodPost, "/api/warehouse/products", dto.CreateProductRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, nethttp.MethodPost, "/api/warehouse/products", dto.CreateProductRequest{
		Name: "Bundle vacío",
		Kind: "BUNDLE",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, nethttp.MethodGet, "/api/warehouse/products/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
