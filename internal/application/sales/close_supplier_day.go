package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// CloseSupplierDay liquida el día de un proveedor:
//
//  1. Reescribe el viaje final (mayor TripNumber): BagsReturned, Leakages
//     acumuladas, Revenue menos la deducción (piso en cero) y Notes con el
//     resumen del ajuste. Los demás viajes quedan intactos.
//  2. Devuelve al inventario las bolsas no vendidas (supplier_remaining).
//  3. Persiste el cierre explícito por (proveedor, fecha); después de eso
//     no se aceptan más viajes de ese proveedor hasta el día siguiente.
//
// La deducción se aplica solo al viaje final porque el faltante se reporta
// una única vez, al volver del último viaje físico del día.
// Falla con ErrNotFound si el proveedor no tiene viajes hoy y con
// ErrChannelClosed si su día ya fue cerrado; en ambos casos no se muta nada.
func (uc *UseCase) CloseSupplierDay(ctx context.Context, supplierName string, remainingBags, additionalLeakages int, closedBy string) (*entity.SupplierDayClose, error) {
	if supplierName == "" || remainingBags < 0 || additionalLeakages < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	today := entity.DateOf(now)

	record := &entity.SupplierDayClose{
		SupplierName:       supplierName,
		Date:               today,
		RemainingBags:      remainingBags,
		AdditionalLeakages: additionalLeakages,
		ClosedAt:           now,
		ClosedBy:           closedBy,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleEntryRepository,
		closeRepo repository.DayCloseRepository,
	) error {
		existing, err := closeRepo.GetSupplierClose(supplierName, today)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrChannelClosed
		}

		trips, err := saleRepo.ListSupplierTrips(supplierName, today)
		if err != nil {
			return err
		}
		if len(trips) == 0 {
			return domain.ErrNotFound
		}

		// Viaje final = mayor TripNumber (por construcción coincide con el
		// orden de creación, pero no dependemos de eso).
		final := trips[0]
		for _, t := range trips[1:] {
			if t.TripNumber > final.TripNumber {
				final = t
			}
		}

		deduction := decimal.NewFromInt(int64(remainingBags + additionalLeakages)).Mul(final.PricePerBag)
		newRevenue := final.Revenue.Sub(deduction)
		if newRevenue.IsNegative() {
			newRevenue = decimal.Zero
		}

		final.BagsReturned = remainingBags
		final.Leakages += additionalLeakages
		final.Revenue = newRevenue
		final.Notes = fmt.Sprintf(
			"Cierre del día: %d bolsas devueltas y %d fugas adicionales; deducción de %s sobre el viaje %d",
			remainingBags, additionalLeakages, deduction.StringFixed(2), final.TripNumber,
		)
		if err := saleRepo.Update(final); err != nil {
			return err
		}

		if remainingBags > 0 {
			if _, err := ledger.AddStockInTx(movRepo, remainingBags, entity.SourceSupplierRemaining, closedBy, now); err != nil {
				return err
			}
		}

		record.Deduction = deduction
		return closeRepo.CreateSupplierClose(record)
	})
	if err != nil {
		return nil, err
	}

	uc.refreshSummary(ctx, today)
	return record, nil
}
