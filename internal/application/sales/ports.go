package sales

import (
	"context"
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con los repositorios de ventas, cierres y
// libro de stock atados a una misma transacción. La venta y su salida de
// stock se confirman o revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleEntryRepository,
		closeRepo repository.DayCloseRepository,
	) error) error
}

// SummaryCache cachea el agregado de ventas del día, con clave por fecha.
// Implementación opcional (Redis); con cache nil el motor recalcula desde
// el repositorio en cada consulta.
type SummaryCache interface {
	GetDaySummary(ctx context.Context, date time.Time) (*entity.SalesDaySummary, bool, error)
	SetDaySummary(ctx context.Context, summary *entity.SalesDaySummary) error
}
