package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/bazaar-warehouse/internal/application/currency"
	appwarehouse "github.com/tu-usuario/bazaar-warehouse/internal/application/warehouse"
	"github.com/tu-usuario/bazaar-warehouse/internal/domain/entity"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/postgres"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/pubsub"
	"github.com/tu-usuario/bazaar-warehouse/internal/infrastructure/rates"
	httpRouter "github.com/tu-usuario/bazaar-warehouse/internal/interfaces/http"
	"github.com/tu-usuario/bazaar-warehouse/migrations"
	"github.com/tu-usuario/bazaar-warehouse/pkg/config"
	"github.com/tu-usuario/bazaar-warehouse/pkg/logger"
	"github.com/tu-usuario/bazaar-warehouse/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := migrator.Run(cfg.DB.ConnectionString(), migrations.FS); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rateProvider, err := rates.FromConfig(cfg.Currency.Rates)
	if err != nil {
		log.Fatal().Err(err).Msg("tasas de cambio")
	}
	normalizer := currency.NewNormalizer(rateProvider, cfg.Currency.Default)

	goChannel := pubsub.NewGoChannel(log)
	defer func() {
		if err := goChannel.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar pub/sub")
		}
	}()
	notifier := pubsub.NewNotifier(goChannel)

	registry := appwarehouse.NewRegistry(locationRepo, seedsFromConfig(cfg.Warehouse))
	moveUC := appwarehouse.NewMoveUseCase(txRunner, locationRepo, normalizer, notifier, log)
	productUC := appwarehouse.NewProductUseCase(productRepo)
	historyQ := appwarehouse.NewHistoryQuery(movementRepo)
	stockQ := appwarehouse.NewStockQuery(stockRepo, productRepo, cfg.Currency.Default)

	// Las ubicaciones canónicas se materializan al arranque; el registro sigue
	// siendo idempotente si otra instancia llega primero.
	for _, t := range entity.LocationTypes {
		if _, err := registry.Resolve(ctx, t); err != nil {
			log.Fatal().Err(err).Str("type", string(t)).Msg("resolver ubicación canónica")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MoveUC:    moveUC,
		ProductUC: productUC,
		History:   historyQ,
		StockQ:    stockQ,
		Registry:  registry,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedsFromConfig traduce la configuración de ubicaciones a semillas del registro.
func seedsFromConfig(cfg config.WarehouseConfig) map[entity.LocationType]appwarehouse.LocationSeed {
	return map[entity.LocationType]appwarehouse.LocationSeed{
		entity.LocationSupplier:     {Name: cfg.Supplier.Name, Slug: cfg.Supplier.Slug},
		entity.LocationStorage:      {Name: cfg.Storage.Name, Slug: cfg.Storage.Slug},
		entity.LocationOutput:       {Name: cfg.Output.Name, Slug: cfg.Output.Slug},
		entity.LocationCustomer:     {Name: cfg.Customer.Name, Slug: cfg.Customer.Slug},
		entity.LocationLostAndFound: {Name: cfg.LostAndFound.Name, Slug: cfg.LostAndFound.Slug},
	}
}
