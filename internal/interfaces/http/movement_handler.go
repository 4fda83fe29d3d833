package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/dto"
	"github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/money"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	moveUC   *warehouse.MoveUseCase
	history  *warehouse.HistoryQuery
	registry *warehouse.Registry
}

// NewMovementHandler construye el handler.
func NewMovementHandler(moveUC *warehouse.MoveUseCase, history *warehouse.HistoryQuery, registry *warehouse.Registry) *MovementHandler {
	return &MovementHandler{moveUC: moveUC, history: history, registry: registry}
}

// Create godoc
// @Summary      Registrar movimiento entre ubicaciones
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/warehouse/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	fromID, err := h.resolveLocation(c, in.FromLocationID, in.FromLocationType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LOCATION", Message: err.Error()})
	}
	toID, err := h.resolveLocation(c, in.ToLocationID, in.ToLocationType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LOCATION", Message: err.Error()})
	}

	movement, err := h.moveUC.Move(c.Context(), warehouse.MoveInput{
		FromLocationID: fromID,
		ToLocationID:   toID,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		UnitPrice:      money.New(in.UnitPrice, in.Currency),
		Agent:          in.Agent,
		Note:           in.Note,
	})
	if err != nil {
		return mapMoveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(movement))
}

// resolveLocation acepta un id explícito o un tipo bien conocido; el tipo se
// resuelve a la ubicación canónica vía el registro.
func (h *MovementHandler) resolveLocation(c *fiber.Ctx, id, locType string) (string, error) {
	if id != "" {
		return id, nil
	}
	if locType == "" {
		return "", errors.New("se requiere location_id o location_type")
	}
	t, ok := entity.ParseLocationType(locType)
	if !ok {
		return "", errors.New("tipo de ubicación desconocido: " + locType)
	}
	loc, err := h.registry.Resolve(c.Context(), t)
	if err != nil {
		return "", err
	}
	return loc.ID, nil
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movement, err := h.history.ByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToMovementResponse(movement))
}

// ListByProduct godoc
// @Summary      Listar movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/warehouse/products/{id}/movements [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	movements, err := h.history.ByProduct(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToMovementResponses(movements))
}

// mapMoveError traduce los errores de dominio del caso de uso a estados HTTP.
func mapMoveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidLocation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LOCATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrRateUnavailable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "RATE_UNAVAILABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
