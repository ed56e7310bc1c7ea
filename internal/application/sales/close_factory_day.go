package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// CloseFactoryDay cierra las ventas de planta de hoy y devuelve el resumen
// del día (bolsas, ingresos, transacciones). El cierre queda clavado a la
// fecha: mañana no existe registro y el canal amanece abierto solo.
// Es idempotente: cada llamada recalcula el resumen y lo vuelve a grabar.
func (uc *UseCase) CloseFactoryDay(ctx context.Context, closedBy string) (*entity.FactoryDayClose, error) {
	now := uc.now()
	today := entity.DateOf(now)

	record := &entity.FactoryDayClose{
		Date:         today,
		TotalRevenue: decimal.Zero,
		ClosedAt:     now,
		ClosedBy:     closedBy,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		saleRepo repository.SaleEntryRepository,
		closeRepo repository.DayCloseRepository,
	) error {
		entries, err := saleRepo.ListByChannelOnDate(entity.ChannelFactory, today)
		if err != nil {
			return err
		}
		for _, s := range entries {
			record.TotalBags += s.BagsTaken
			record.TotalRevenue = record.TotalRevenue.Add(s.Revenue)
			record.TotalTransactions++
		}
		return closeRepo.UpsertFactoryClose(record)
	})
	if err != nil {
		return nil, err
	}

	uc.refreshSummary(ctx, today)
	return record, nil
}
