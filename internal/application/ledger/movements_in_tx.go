package ledger

import (
	"fmt"
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// AddStockInTx aplica una entrada usando el repositorio provisto (misma
// transacción del caller). Lo usan los motores de ventas y producción para
// mover stock dentro de sus propias transacciones.
func AddStockInTx(movRepo repository.StockMovementRepository, quantity int, source, enteredBy string, now time.Time) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	balance, err := currentBalanceTx(movRepo)
	if err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		Timestamp:      now,
		Quantity:       quantity,
		Kind:           entity.MovementKindAddition,
		Source:         source,
		RunningBalance: balance + quantity,
		EnteredBy:      enteredBy,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// RemoveStockInTx aplica una salida usando el repositorio provisto (misma
// transacción del caller). La verificación de saldo y la escritura ocurren
// bajo la misma transacción, así que el saldo nunca queda negativo.
func RemoveStockInTx(movRepo repository.StockMovementRepository, quantity int, reason, enteredBy string, now time.Time) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	balance, err := currentBalanceTx(movRepo)
	if err != nil {
		return nil, err
	}
	if quantity > balance {
		return nil, fmt.Errorf("%w: disponibles %d bolsas", domain.ErrInsufficientStock, balance)
	}
	movement := &entity.StockMovement{
		Timestamp:      now,
		Quantity:       quantity,
		Kind:           entity.MovementKindRemoval,
		Reason:         reason,
		RunningBalance: balance - quantity,
		EnteredBy:      enteredBy,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

func currentBalanceTx(movRepo repository.StockMovementRepository) (int, error) {
	last, err := movRepo.Last()
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 0, nil
	}
	return last.RunningBalance, nil
}
