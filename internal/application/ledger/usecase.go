// Package ledger implementa el caso de uso del libro de stock de bolsas:
// un registro append-only de entradas/salidas con saldo corriente derivado.
package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// UseCase expone las operaciones del libro de stock. Toda mutación corre
// dentro de una transacción del TxRunner: una operación que falla no deja
// ningún movimiento parcial escrito.
type UseCase struct {
	txRunner  TxRunner
	movements repository.StockMovementRepository
	manual    repository.ManualBagEntryRepository
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movements repository.StockMovementRepository, manual repository.ManualBagEntryRepository) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		movements: movements,
		manual:    manual,
		now:       time.Now,
	}
}

// AddStock registra una entrada de bolsas y devuelve el movimiento creado.
// Falla con ErrInvalidQuantity si quantity <= 0. No hay tope superior.
func (uc *UseCase) AddStock(ctx context.Context, quantity int, source, enteredBy string) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, _ repository.ManualBagEntryRepository) error {
		m, err := AddStockInTx(movRepo, quantity, source, enteredBy, uc.now())
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RemoveStock registra una salida de bolsas. Falla con ErrInvalidQuantity si
// quantity <= 0 y con ErrInsufficientStock (incluyendo el disponible real)
// si quantity excede el saldo actual; nunca hay salida parcial.
func (uc *UseCase) RemoveStock(ctx context.Context, quantity int, reason, enteredBy string) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, _ repository.ManualBagEntryRepository) error {
		m, err := RemoveStockInTx(movRepo, quantity, reason, enteredBy, uc.now())
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterManualEntry registra una entrada manual: el movimiento de stock y
// su registro auditable ManualBagEntry se crean en la misma transacción.
// La fuente "production" está reservada a los lotes de producción.
func (uc *UseCase) RegisterManualEntry(ctx context.Context, quantity int, source, notes, enteredBy string) (*entity.ManualBagEntry, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if source == "" || source == entity.SourceProduction {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	entry := &entity.ManualBagEntry{
		Timestamp: now,
		Quantity:  quantity,
		Source:    source,
		Notes:     notes,
		EnteredBy: enteredBy,
	}
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, manualRepo repository.ManualBagEntryRepository) error {
		if _, err := AddStockInTx(movRepo, quantity, source, enteredBy, now); err != nil {
			return err
		}
		return manualRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CurrentBalance devuelve el saldo actual: el RunningBalance del movimiento
// más reciente, o 0 si el libro está vacío.
func (uc *UseCase) CurrentBalance(ctx context.Context) (int, error) {
	last, err := uc.movements.Last()
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 0, nil
	}
	return last.RunningBalance, nil
}

// TodayBreakdown devuelve el desglose de entradas de hoy por fuente.
// Total es el saldo de todo el libro, no solo de los movimientos de hoy:
// es lo "disponible ahora" que consulta el motor de ventas.
func (uc *UseCase) TodayBreakdown(ctx context.Context) (*entity.StockDayBreakdown, error) {
	balance, err := uc.CurrentBalance(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.ListByDate(entity.DateOf(uc.now()))
	if err != nil {
		return nil, err
	}
	breakdown := &entity.StockDayBreakdown{Total: balance}
	for _, m := range movements {
		if m.Kind != entity.MovementKindAddition {
			continue
		}
		switch m.Source {
		case entity.SourceProduction:
			breakdown.Production += m.Quantity
		case entity.SourceSupplierRemaining:
			breakdown.SupplierRemaining += m.Quantity
		default:
			breakdown.Manual += m.Quantity
		}
	}
	return breakdown, nil
}

// ListMovements devuelve el historial de movimientos (más recientes primero).
func (uc *UseCase) ListMovements(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movements.List(from, to, limit, offset)
}

// ListManualEntries devuelve el historial de entradas manuales.
func (uc *UseCase) ListManualEntries(ctx context.Context, limit, offset int) ([]*entity.ManualBagEntry, error) {
	return uc.manual.List(limit, offset)
}
