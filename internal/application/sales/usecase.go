// Package sales implementa el motor de conciliación de ventas: registro de
// ventas por canal (rutas de proveedor y venta en planta), numeración de
// viajes por proveedor por día, y los cierres de fin de día.
package sales

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// UseCase es el motor de conciliación de ventas. Depende del libro de stock
// por inyección (los helpers InTx del paquete ledger) y es dueño de la
// colección de ventas y del estado de cierre diario.
type UseCase struct {
	txRunner TxRunner
	sales    repository.SaleEntryRepository
	closes   repository.DayCloseRepository
	cache    SummaryCache // puede ser nil
	now      func() time.Time
}

// NewUseCase construye el motor. cache puede ser nil (sin Redis se
// recalcula el resumen del día en cada consulta).
func NewUseCase(txRunner TxRunner, sales repository.SaleEntryRepository, closes repository.DayCloseRepository, cache SummaryCache) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		sales:    sales,
		closes:   closes,
		cache:    cache,
		now:      time.Now,
	}
}

// RecordSaleInput entrada para registrar una venta.
type RecordSaleInput struct {
	Channel      string
	SupplierName string // obligatorio en supply
	CustomerName string // opcional en factory
	BagsTaken    int
	PricePerBag  decimal.Decimal
	Leakages     int
	Notes        string
	CreatedBy    string
}

// RecordSale registra una venta. Las precondiciones se evalúan en orden y
// gana el primer fallo: entrada inválida (cantidad, precio, canal,
// proveedor faltante), canal cerrado, stock insuficiente. El estado de
// cierre, la salida de stock (supplier_sale o factory_sale) y la
// inserción de la venta se resuelven en una misma transacción.
func (uc *UseCase) RecordSale(ctx context.Context, in RecordSaleInput) (*entity.SaleEntry, error) {
	if in.BagsTaken <= 0 || in.PricePerBag.IsNegative() || in.Leakages < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Channel != entity.ChannelSupply && in.Channel != entity.ChannelFactory {
		return nil, domain.ErrInvalidInput
	}

	if in.Channel == entity.ChannelSupply && in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	today := entity.DateOf(now)

	sale := &entity.SaleEntry{
		Timestamp:    now,
		Channel:      in.Channel,
		SupplierName: in.SupplierName,
		CustomerName: in.CustomerName,
		BagsTaken:    in.BagsTaken,
		PricePerBag:  in.PricePerBag,
		Revenue:      in.PricePerBag.Mul(decimal.NewFromInt(int64(in.BagsTaken))),
		Leakages:     in.Leakages,
		Notes:        in.Notes,
		CreatedBy:    in.CreatedBy,
	}

	reason := entity.ReasonFactorySale
	if in.Channel == entity.ChannelSupply {
		reason = entity.ReasonSupplierSale
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleEntryRepository,
		closeRepo repository.DayCloseRepository,
	) error {
		// El estado de cierre se lee dentro de la transacción: una venta
		// que corre en paralelo con un cierre no puede colarse después.
		if in.Channel == entity.ChannelFactory {
			closed, err := closeRepo.GetFactoryClose(today)
			if err != nil {
				return err
			}
			if closed != nil {
				return domain.ErrChannelClosed
			}
		}
		if in.Channel == entity.ChannelSupply {
			closed, err := closeRepo.GetSupplierClose(in.SupplierName, today)
			if err != nil {
				return err
			}
			if closed != nil {
				return domain.ErrChannelClosed
			}
			count, err := saleRepo.CountSupplierTrips(in.SupplierName, today)
			if err != nil {
				return err
			}
			sale.TripNumber = count + 1
		}
		// La verificación de saldo vive en RemoveStockInTx; si falla no se
		// escribe ni el movimiento ni la venta.
		if _, err := ledger.RemoveStockInTx(movRepo, in.BagsTaken, reason, in.CreatedBy, now); err != nil {
			return err
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.refreshSummary(ctx, today)
	return sale, nil
}

// refreshSummary recalcula el agregado del día y lo escribe al cache
// (write-through, mejor esfuerzo: un fallo de cache no afecta la venta).
func (uc *UseCase) refreshSummary(ctx context.Context, date time.Time) {
	if uc.cache == nil {
		return
	}
	summary, err := uc.computeDaySummary(date)
	if err != nil {
		log.Warn().Err(err).Msg("recalcular resumen del día")
		return
	}
	if err := uc.cache.SetDaySummary(ctx, summary); err != nil {
		log.Warn().Err(err).Msg("escribir resumen del día al cache")
	}
}

func (uc *UseCase) computeDaySummary(date time.Time) (*entity.SalesDaySummary, error) {
	entries, err := uc.sales.ListByDate(date)
	if err != nil {
		return nil, err
	}
	summary := &entity.SalesDaySummary{Date: date, TotalRevenue: decimal.Zero}
	for _, s := range entries {
		summary.TotalBags += s.BagsTaken
		summary.TotalRevenue = summary.TotalRevenue.Add(s.Revenue)
		summary.TotalLeakages += s.Leakages
		summary.TotalBagsReturned += s.BagsReturned
		summary.Transactions++
	}
	factoryClose, err := uc.closes.GetFactoryClose(date)
	if err != nil {
		return nil, err
	}
	summary.FactoryClosed = factoryClose != nil
	return summary, nil
}

// TodaySummary devuelve el agregado de ventas de hoy: del cache si hay hit,
// recalculado desde el repositorio si no. La clave por fecha hace el cambio
// de día por sí sola; no hay job de reinicio.
func (uc *UseCase) TodaySummary(ctx context.Context) (*entity.SalesDaySummary, error) {
	today := entity.DateOf(uc.now())
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetDaySummary(ctx, today); err == nil && ok {
			return cached, nil
		} else if err != nil {
			log.Warn().Err(err).Msg("leer resumen del día del cache")
		}
	}
	summary, err := uc.computeDaySummary(today)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetDaySummary(ctx, summary); err != nil {
			log.Warn().Err(err).Msg("escribir resumen del día al cache")
		}
	}
	return summary, nil
}

// History devuelve el historial de ventas filtrado (para reportes y
// exportación). Solo lectura, sin efectos.
func (uc *UseCase) History(ctx context.Context, filter repository.SaleFilter) ([]*entity.SaleEntry, error) {
	return uc.sales.List(filter)
}
