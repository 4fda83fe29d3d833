package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser un monto positivo")
	ErrInvalidLocation     = errors.New("ubicación inexistente o no resoluble")
	ErrRateUnavailable     = errors.New("no hay tasa de cambio para la moneda origen")
	ErrMovementPersistence = errors.New("fallo de persistencia al registrar el movimiento")
)
