package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MoveUC    *warehouse.MoveUseCase
	ProductUC *warehouse.ProductUseCase
	History   *warehouse.HistoryQuery
	StockQ    *warehouse.StockQuery
	Registry  *warehouse.Registry
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/warehouse")

	// Movimientos (libro inmutable)
	movementHandler := NewMovementHandler(deps.MoveUC, deps.History, deps.Registry)
	movements := api.Group("/movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)

	// Productos y sus lecturas derivadas
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockQ)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", stockHandler.GetByProduct)
	products.Get("/:id/movements", movementHandler.ListByProduct)

	// Ubicaciones canónicas
	locationHandler := NewLocationHandler(deps.Registry)
	locations := api.Group("/locations")
	locations.Get("/", locationHandler.List)
	locations.Get("/:type", locationHandler.GetByType)
}
