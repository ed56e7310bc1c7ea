package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, timestamp, quantity, kind, source, reason, running_balance, entered_by`

// Create persiste un movimiento del libro de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, timestamp, quantity, kind, source, reason, running_balance, entered_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	enteredBy := (*string)(nil)
	if movement.EnteredBy != "" {
		enteredBy = &movement.EnteredBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Timestamp, movement.Quantity, movement.Kind,
		movement.Source, movement.Reason, movement.RunningBalance, enteredBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// Last devuelve el movimiento más reciente o nil si el libro está vacío.
// El orden es por seq (secuencia de creación), no por timestamp: dos
// movimientos del mismo instante no pueden empatar.
func (r *StockMovementRepo) Last() (*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements ORDER BY seq DESC LIMIT 1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last movement: %w", err)
	}
	return m, nil
}

// ListByDate devuelve los movimientos de una fecha calendario, en orden de
// creación ascendente.
func (r *StockMovementRepo) ListByDate(date time.Time) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE timestamp::date = $1::date
		ORDER BY seq ASC`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list movements by date: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// List devuelve el historial (más recientes primero) con rango opcional.
func (r *StockMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY seq DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var enteredBy *string
	err := row.Scan(&m.ID, &m.Timestamp, &m.Quantity, &m.Kind, &m.Source, &m.Reason, &m.RunningBalance, &enteredBy)
	if err != nil {
		return nil, err
	}
	if enteredBy != nil {
		m.EnteredBy = *enteredBy
	}
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
