package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/application/production"
	"github.com/jhoicas/aquabolsa-api/internal/application/sales"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos de transacción de los tres motores.
var _ ledger.TxRunner = (*LedgerTxRunner)(nil)
var _ sales.TxRunner = (*SalesTxRunner)(nil)
var _ production.TxRunner = (*ProductionTxRunner)(nil)

func runInTx(ctx context.Context, pool *pgxpool.Pool, fn func(q Querier) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LedgerTxRunner ejecuta operaciones del libro de stock en una transacción.
type LedgerTxRunner struct {
	pool *pgxpool.Pool
}

// NewLedgerTxRunner construye el runner con el pool.
func NewLedgerTxRunner(pool *pgxpool.Pool) *LedgerTxRunner {
	return &LedgerTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *LedgerTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	manualRepo repository.ManualBagEntryRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(NewStockMovementRepository(q), NewManualBagEntryRepository(q))
	})
}

// SalesTxRunner ejecuta operaciones del motor de ventas en una transacción
// (venta + salida de stock + cierres, todo o nada).
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

// NewSalesTxRunner construye el runner con el pool.
func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleEntryRepository,
	closeRepo repository.DayCloseRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(NewStockMovementRepository(q), NewSaleEntryRepository(q), NewDayCloseRepository(q))
	})
}

// ProductionTxRunner ejecuta el registro de lotes en una transacción
// (lote + entrada de producción al libro).
type ProductionTxRunner struct {
	pool *pgxpool.Pool
}

// NewProductionTxRunner construye el runner con el pool.
func NewProductionTxRunner(pool *pgxpool.Pool) *ProductionTxRunner {
	return &ProductionTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *ProductionTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	batchRepo repository.ProductionBatchRepository,
) error) error {
	return runInTx(ctx, r.pool, func(q Querier) error {
		return fn(NewStockMovementRepository(q), NewProductionBatchRepository(q))
	})
}
