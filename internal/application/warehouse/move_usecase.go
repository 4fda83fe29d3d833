package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/currency"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/events"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/money"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/repository"
	domwarehouse "github.com/tu-usuario/bazaar-warehouse/internal/domain/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/pkg/logger"
)

// MoveUseCase es el único punto de escritura del ledger: valida, normaliza el
// precio, registra el movimiento inmutable y aplica las dos actualizaciones
// de stock en la misma transacción, con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback. Tras el commit publica un evento por ubicación afectada.
type MoveUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	normalizer   *currency.Normalizer
	notifier     Notifier
	log          *logger.Logger
}

// NewMoveUseCase construye el caso de uso.
func NewMoveUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	normalizer *currency.Normalizer,
	notifier Notifier,
	log *logger.Logger,
) *MoveUseCase {
	return &MoveUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		normalizer:   normalizer,
		notifier:     notifier,
		log:          log,
	}
}

// MoveInput entrada para registrar una transferencia.
// Quantity debe ser estrictamente positiva; la dirección la da el par
// origen/destino. UnitPrice puede venir en cualquier moneda con tasa conocida.
type MoveInput struct {
	FromLocationID string
	ToLocationID   string
	ProductID      string
	Quantity       decimal.Decimal
	UnitPrice      money.Money
	Agent          string
	Note           string
}

// Move registra la transferencia. Orden de trabajo: validar, resolver
// ubicaciones, consultar la tasa de cambio (fuera de la transacción, nunca
// bajo el lock de stock) y después una única transacción: insertar el
// movimiento, aplicar el ingreso en destino con promedio ponderado y el
// egreso en origen sin tocar su costo. Cualquier fallo de persistencia
// revierte todo y se reporta como domain.ErrMovementPersistence.
func (uc *MoveUseCase) Move(ctx context.Context, input MoveInput) (*entity.Movement, error) {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.FromLocationID == "" || input.ToLocationID == "" {
		return nil, domain.ErrInvalidLocation
	}

	from, err := uc.locationRepo.GetByID(ctx, input.FromLocationID)
	if err != nil || from == nil {
		return nil, domain.ErrInvalidLocation
	}
	to, err := uc.locationRepo.GetByID(ctx, input.ToLocationID)
	if err != nil || to == nil {
		return nil, domain.ErrInvalidLocation
	}

	// Conversión a moneda por defecto; si hubo conversión real se conserva
	// el precio original en el movimiento para auditoría.
	unitPrice, originalPrice, err := uc.normalizer.ToDefault(ctx, input.UnitPrice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:                uuid.New().String(),
		FromLocationID:    from.ID,
		ToLocationID:      to.ID,
		ProductID:         input.ProductID,
		Quantity:          input.Quantity,
		UnitPrice:         unitPrice,
		OriginalUnitPrice: originalPrice,
		Agent:             input.Agent,
		Note:              input.Note,
		Date:              now,
		CreatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := movRepo.Create(ctx, movement); err != nil {
			return err
		}
		// Ingreso en destino primero, egreso en origen después: con origen y
		// destino iguales el egreso ve la fila ya actualizada, como en el
		// diseño original (el movimiento al mismo lugar no se rechaza).
		if err := uc.applyIncoming(ctx, stockRepo, movement, now); err != nil {
			return err
		}
		return uc.applyOutgoing(ctx, stockRepo, movement, now)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMovementPersistence, err)
	}

	uc.notify(ctx, movement.ProductID, to)
	uc.notify(ctx, movement.ProductID, from)

	return movement, nil
}

// applyIncoming aplica el ingreso en la fila destino: bloquea la fila,
// recalcula el costo promedio ponderado y suma la cantidad.
func (uc *MoveUseCase) applyIncoming(ctx context.Context, stockRepo repository.StockRepository, m *entity.Movement, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(ctx, m.ProductID, m.ToLocationID)
	if err != nil {
		return err
	}
	stock.UnitPrice = domwarehouse.AverageCost(stock.Quantity, stock.UnitPrice, m.Quantity, m.UnitPrice.Amount)
	stock.Quantity = stock.Quantity.Add(m.Quantity)
	stock.UpdatedAt = now
	return stockRepo.Upsert(ctx, stock)
}

// applyOutgoing aplica el egreso en la fila origen: solo resta cantidad.
// El costo unitario del origen no se recalcula en salidas: las unidades
// restantes conservan su costo promedio existente.
func (uc *MoveUseCase) applyOutgoing(ctx context.Context, stockRepo repository.StockRepository, m *entity.Movement, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(ctx, m.ProductID, m.FromLocationID)
	if err != nil {
		return err
	}
	stock.Quantity = stock.Quantity.Sub(m.Quantity)
	stock.UpdatedAt = now
	return stockRepo.Upsert(ctx, stock)
}

// notify publica el evento de cambio para una ubicación afectada. Los fallos
// se registran y se descartan: la notificación queda fuera del límite de
// rollback del movimiento.
func (uc *MoveUseCase) notify(ctx context.Context, productID string, loc *entity.Location) {
	if uc.notifier == nil {
		return
	}
	event := events.StockChanged{
		EventID:      uuid.New().String(),
		ProductID:    productID,
		LocationID:   loc.ID,
		LocationType: loc.Type,
		OccurredAt:   time.Now(),
	}
	if err := uc.notifier.StockChanged(ctx, event); err != nil && uc.log != nil {
		uc.log.Warn().
			Err(err).
			Str("product_id", productID).
			Str("location_id", loc.ID).
			Str("location_type", string(loc.Type)).
			Msg("publicar cambio de stock")
	}
}
