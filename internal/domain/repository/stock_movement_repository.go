package repository

import (
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// stock (DIP). El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// Last devuelve el movimiento más reciente (el que porta el saldo
	// actual) o nil si el libro está vacío.
	Last() (*entity.StockMovement, error)
	// ListByDate devuelve los movimientos cuya fecha calendario coincide
	// con date, en orden de creación ascendente.
	ListByDate(date time.Time) ([]*entity.StockMovement, error)
	// List devuelve el historial (más recientes primero) con rango de
	// fechas opcional y paginación.
	List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
