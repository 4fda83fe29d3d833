package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/dto"
	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
)

// LocationHandler expone las ubicaciones bien conocidas de la bodega.
type LocationHandler struct {
	registry *warehouse.Registry
}

// NewLocationHandler construye el handler.
func NewLocationHandler(registry *warehouse.Registry) *LocationHandler {
	return &LocationHandler{registry: registry}
}

// List godoc
// @Summary      Listar ubicaciones canónicas
// @Tags         locations
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/warehouse/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out := make([]dto.LocationResponse, 0, len(entity.LocationTypes))
	for _, t := range entity.LocationTypes {
		loc, err := h.registry.Resolve(c.Context(), t)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		out = append(out, dto.ToLocationResponse(loc))
	}
	return c.JSON(out)
}

// GetByType godoc
// @Summary      Obtener ubicación canónica por tipo
// @Tags         locations
// @Produce      json
// @Param        type  path  string  true  "Tipo de ubicación"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouse/locations/{type} [get]
func (h *LocationHandler) GetByType(c *fiber.Ctx) error {
	t, ok := entity.ParseLocationType(c.Params("type"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LOCATION", Message: "tipo de ubicación desconocido"})
	}
	loc, err := h.registry.Resolve(c.Context(), t)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToLocationResponse(loc))
}
