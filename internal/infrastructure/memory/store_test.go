package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

var errBoom = errors.New("boom")

// El runner debe restaurar el estado completo cuando fn falla: ninguna
// escritura previa al error sobrevive.
func TestLedgerTx_RollbackRestauraEstado(t *testing.T) {
	store := NewStore()

	err := store.LedgerTx().Run(context.Background(), func(
		movRepo repository.StockMovementRepository,
		_ repository.ManualBagEntryRepository,
	) error {
		require.NoError(t, movRepo.Create(&entity.StockMovement{
			Timestamp:      time.Now(),
			Quantity:       50,
			Kind:           entity.MovementKindAddition,
			Source:         entity.SourceProduction,
			RunningBalance: 50,
		}))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	last, lastErr := store.StockMovements().Last()
	require.NoError(t, lastErr)
	assert.Nil(t, last, "el movimiento escrito antes del fallo no debe sobrevivir")
}

func TestSalesTx_CommitPersiste(t *testing.T) {
	store := NewStore()

	err := store.SalesTx().Run(context.Background(), func(
		_ repository.StockMovementRepository,
		saleRepo repository.SaleEntryRepository,
		_ repository.DayCloseRepository,
	) error {
		return saleRepo.Create(&entity.SaleEntry{
			Timestamp: time.Now(),
			Channel:   entity.ChannelFactory,
			BagsTaken: 5,
		})
	})
	require.NoError(t, err)

	entries, err := store.Sales().ListByDate(entity.DateOf(time.Now()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID, "Create asigna ID")
}

func TestDayCloses_CierreDuplicadoDeProveedor(t *testing.T) {
	store := NewStore()
	repo := store.DayCloses()
	today := entity.DateOf(time.Now())

	require.NoError(t, repo.CreateSupplierClose(&entity.SupplierDayClose{
		SupplierName: "Arnulfo",
		Date:         today,
		ClosedAt:     time.Now(),
	}))

	err := repo.CreateSupplierClose(&entity.SupplierDayClose{
		SupplierName: "Arnulfo",
		Date:         today,
		ClosedAt:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrChannelClosed, "unicidad por (proveedor, fecha)")

	// Otro día del mismo proveedor sí entra.
	require.NoError(t, repo.CreateSupplierClose(&entity.SupplierDayClose{
		SupplierName: "Arnulfo",
		Date:         today.AddDate(0, 0, 1),
		ClosedAt:     time.Now(),
	}))
}
