package ledger

import (
	"context"

	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con los repositorios del libro de stock
// atados a una misma transacción (Commit si fn retorna nil, Rollback si no).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		manualRepo repository.ManualBagEntryRepository,
	) error) error
}
