package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/application/production"
	"github.com/jhoicas/aquabolsa-api/internal/application/sales"
	"github.com/jhoicas/aquabolsa-api/internal/infrastructure/cache"
	"github.com/jhoicas/aquabolsa-api/internal/infrastructure/memory"
	"github.com/jhoicas/aquabolsa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/aquabolsa-api/internal/interfaces/http"
	"github.com/jhoicas/aquabolsa-api/pkg/config"
	"github.com/jhoicas/aquabolsa-api/pkg/logger"
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

	ctx := context.Background()

	// Persistencia: PostgreSQL si está configurado, si no el store en
	// memoria (modo local / demo).
	var (
		ledgerTx     ledger.TxRunner
		salesTx      sales.TxRunner
		productionTx production.TxRunner
	)
	var deps httpRouter.RouterDeps

	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		ledgerTx = postgres.NewLedgerTxRunner(pool)
		salesTx = postgres.NewSalesTxRunner(pool)
		productionTx = postgres.NewProductionTxRunner(pool)

		deps.LedgerUC = ledger.NewUseCase(ledgerTx, postgres.NewStockMovementRepository(pool), postgres.NewManualBagEntryRepository(pool))
		salesRepo := postgres.NewSaleEntryRepository(pool)
		closeRepo := postgres.NewDayCloseRepository(pool)
		deps.SalesUC = sales.NewUseCase(salesTx, salesRepo, closeRepo, newSummaryCache(ctx, cfg, log))
		deps.ProductionUC = production.NewUseCase(productionTx, postgres.NewProductionBatchRepository(pool))
		log.Info().Msg("persistencia: PostgreSQL")
	} else {
		store := memory.NewStore()
		deps.LedgerUC = ledger.NewUseCase(store.LedgerTx(), store.StockMovements(), store.ManualEntries())
		deps.SalesUC = sales.NewUseCase(store.SalesTx(), store.Sales(), store.DayCloses(), newSummaryCache(ctx, cfg, log))
		deps.ProductionUC = production.NewUseCase(store.ProductionTx(), store.ProductionBatches())
		log.Warn().Msg("DATABASE_URL no definido: usando store en memoria (los datos se pierden al apagar)")
	}
	deps.JWTSecret = cfg.JWT.Secret

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

	httpRouter.Router(app, deps)

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

// newSummaryCache conecta el cache Redis del resumen diario si REDIS_ADDR
// está configurado. Sin Redis el motor recalcula el resumen en cada
// consulta, que para un volumen de ventas diario pequeño es aceptable.
func newSummaryCache(ctx context.Context, cfg *config.Config, log *logger.Logger) sales.SummaryCache {
	if cfg.Redis.Addr == "" {
		return nil
	}
	c, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible: resumen diario sin cache")
		return nil
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de resumen diario: Redis")
	return c
}
