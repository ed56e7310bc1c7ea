package production

import (
	"context"

	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con el repositorio de lotes y el del libro
// de stock atados a una misma transacción: el lote y su entrada de
// producción se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		batchRepo repository.ProductionBatchRepository,
	) error) error
}
