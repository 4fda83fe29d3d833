package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/dto"
	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// StockHandler maneja las lecturas de existencias y costo.
type StockHandler struct {
	stockQuery *warehouse.StockQuery
}

// NewStockHandler construye el handler.
func NewStockHandler(stockQuery *warehouse.StockQuery) *StockHandler {
	return &StockHandler{stockQuery: stockQuery}
}

// GetByProduct godoc
// @Summary      Existencias y costo de un producto
// @Tags         stock
// @Produce      json
// @Param        id             path   string  true   "ID del producto"
// @Param        location_type  query  string  false  "Filtro por tipos, separados por coma"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/products/{id}/stock [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}

	types, err := parseLocationTypes(c.Query("location_type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LOCATION", Message: err.Error()})
	}

	quantity, err := h.stockQuery.Quantity(c.Context(), productID, types...)
	if err != nil {
		return mapStockError(c, err)
	}
	unitCost, err := h.stockQuery.UnitCost(c.Context(), productID, types...)
	if err != nil {
		return mapStockError(c, err)
	}
	rows, err := h.stockQuery.Rows(c.Context(), productID, types...)
	if err != nil {
		return mapStockError(c, err)
	}

	resp := dto.StockSummaryResponse{
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost.Amount,
		Currency:  unitCost.Currency,
		Rows:      make([]dto.StockRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, dto.ToStockRowResponse(row))
	}
	return c.JSON(resp)
}

// parseLocationTypes interpreta el filtro "supplier,storage" validando cada
// tipo contra los tipos bien conocidos.
func parseLocationTypes(raw string) ([]entity.LocationType, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	types := make([]entity.LocationType, 0, len(parts))
	for _, part := range parts {
		t, ok := entity.ParseLocationType(part)
		if !ok {
			return nil, errors.New("tipo de ubicación desconocido: " + part)
		}
		types = append(types, t)
	}
	return types, nil
}

func mapStockError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
