package production

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/inventory"
	"github.com/jhoicas/aquabolsa-api/internal/infrastructure/memory"
)

var testDay = time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)

func newTestUseCase(t *testing.T) (*UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := NewUseCase(store.ProductionTx(), store.ProductionBatches())
	uc.now = func() time.Time { return testDay }
	return uc, store
}

func storeBalance(t *testing.T, store *memory.Store) int {
	t.Helper()
	last, err := store.StockMovements().Last()
	require.NoError(t, err)
	if last == nil {
		return 0
	}
	return last.RunningBalance
}

func TestRegisterBatch_ConConteoManual(t *testing.T) {
	uc, store := newTestUseCase(t)

	batch, err := uc.RegisterBatch(context.Background(), RegisterBatchInput{
		MaterialKg:    decimal.RequireFromString("12.5"),
		MaterialGrade: inventory.GradeStandard,
		BagsProduced:  300,
		AssignedTo:    "turno-manana",
		CreatedBy:     "prod-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, 300, batch.BagsProduced, "el conteo manual manda sobre la estimación")
	assert.Equal(t, 300, storeBalance(t, store), "el lote empuja la entrada al libro")

	movements, err := store.StockMovements().List(nil, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.SourceProduction, movements[0].Source)
}

func TestRegisterBatch_EstimaDesdeMaterial(t *testing.T) {
	uc, store := newTestUseCase(t)

	// Sin conteo manual: 10 kg premium -> 310 bolsas según la tabla.
	batch, err := uc.RegisterBatch(context.Background(), RegisterBatchInput{
		MaterialKg:    decimal.NewFromInt(10),
		MaterialGrade: inventory.GradePremium,
		CreatedBy:     "prod-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 310, batch.BagsProduced)
	assert.Equal(t, 310, storeBalance(t, store))
}

func TestRegisterBatch_Errores(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.RegisterBatch(ctx, RegisterBatchInput{BagsProduced: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterBatch(ctx, RegisterBatchInput{MaterialKg: decimal.NewFromInt(-2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin conteo y sin material no hay cantidad que registrar.
	_, err = uc.RegisterBatch(ctx, RegisterBatchInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Equal(t, 0, storeBalance(t, store), "un lote rechazado no toca el libro")

	batches, err := uc.ListBatches(ctx, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestListBatches_Historial(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.RegisterBatch(ctx, RegisterBatchInput{
			MaterialKg:    decimal.NewFromInt(5),
			MaterialGrade: inventory.GradeEconomy,
			CreatedBy:     "prod-1",
		})
		require.NoError(t, err)
	}

	batches, err := uc.ListBatches(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, batches, 2, "la paginación limita el listado")
}
