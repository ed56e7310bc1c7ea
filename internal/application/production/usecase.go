// Package production registra lotes de producción y empuja la entrada de
// stock correspondiente (fuente "production") al libro de bolsas.
package production

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/inventory"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// UseCase registra lotes de producción. El motor de ventas no infiere
// producción de ninguna otra señal: cada lote debe pasar por aquí.
type UseCase struct {
	txRunner TxRunner
	batches  repository.ProductionBatchRepository
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, batches repository.ProductionBatchRepository) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		batches:  batches,
		now:      time.Now,
	}
}

// RegisterBatchInput entrada para registrar un lote de producción.
// Con BagsProduced == 0 la cantidad se estima desde MaterialKg y
// MaterialGrade con la tabla de rendimiento.
type RegisterBatchInput struct {
	MaterialKg    decimal.Decimal
	MaterialGrade string
	BagsProduced  int
	AssignedTo    string
	Notes         string
	CreatedBy     string
}

// RegisterBatch persiste el lote y registra la entrada de stock
// (production) en la misma transacción.
func (uc *UseCase) RegisterBatch(ctx context.Context, in RegisterBatchInput) (*entity.ProductionBatch, error) {
	if in.BagsProduced < 0 || in.MaterialKg.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	bags := in.BagsProduced
	if bags == 0 {
		bags = inventory.EstimateBags(in.MaterialKg, in.MaterialGrade)
	}
	if bags <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := uc.now()
	batch := &entity.ProductionBatch{
		Timestamp:     now,
		MaterialKg:    in.MaterialKg,
		MaterialGrade: in.MaterialGrade,
		BagsProduced:  bags,
		AssignedTo:    in.AssignedTo,
		Notes:         in.Notes,
		CreatedBy:     in.CreatedBy,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		batchRepo repository.ProductionBatchRepository,
	) error {
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		_, err := ledger.AddStockInTx(movRepo, bags, entity.SourceProduction, in.CreatedBy, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// ListBatches devuelve el historial de lotes (más recientes primero).
func (uc *UseCase) ListBatches(ctx context.Context, limit, offset int) ([]*entity.ProductionBatch, error) {
	return uc.batches.List(limit, offset)
}
