package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

var _ repository.DayCloseRepository = (*DayCloseRepo)(nil)

// DayCloseRepo implementación sobre PostgreSQL (usable con pool o tx).
type DayCloseRepo struct {
	q Querier
}

// NewDayCloseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDayCloseRepository(q Querier) *DayCloseRepo {
	return &DayCloseRepo{q: q}
}

// GetSupplierClose devuelve el cierre de un proveedor en una fecha, o nil
// si sigue abierto.
func (r *DayCloseRepo) GetSupplierClose(supplierName string, date time.Time) (*entity.SupplierDayClose, error) {
	query := `
		SELECT id, supplier_name, date, remaining_bags, additional_leakages, deduction, closed_at, closed_by
		FROM supplier_day_closes WHERE supplier_name = $1 AND date = $2::date`
	var c entity.SupplierDayClose
	err := r.q.QueryRow(context.Background(), query, supplierName, date).Scan(
		&c.ID, &c.SupplierName, &c.Date, &c.RemainingBags, &c.AdditionalLeakages, &c.Deduction, &c.ClosedAt, &c.ClosedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier close: %w", err)
	}
	return &c, nil
}

// CreateSupplierClose persiste el cierre; la constraint única por
// (supplier_name, date) convierte un doble cierre en ErrChannelClosed.
func (r *DayCloseRepo) CreateSupplierClose(close *entity.SupplierDayClose) error {
	if close.ID == "" {
		close.ID = uuid.New().String()
	}
	query := `
		INSERT INTO supplier_day_closes (id, supplier_name, date, remaining_bags, additional_leakages, deduction, closed_at, closed_by)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		close.ID, close.SupplierName, close.Date, close.RemainingBags,
		close.AdditionalLeakages, close.Deduction, close.ClosedAt, close.ClosedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrChannelClosed
		}
		return fmt.Errorf("create supplier close: %w", err)
	}
	return nil
}

// ListSupplierCloses devuelve los cierres de proveedor de una fecha.
func (r *DayCloseRepo) ListSupplierCloses(date time.Time) ([]*entity.SupplierDayClose, error) {
	query := `
		SELECT id, supplier_name, date, remaining_bags, additional_leakages, deduction, closed_at, closed_by
		FROM supplier_day_closes WHERE date = $1::date`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list supplier closes: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierDayClose
	for rows.Next() {
		var c entity.SupplierDayClose
		if err := rows.Scan(&c.ID, &c.SupplierName, &c.Date, &c.RemainingBags,
			&c.AdditionalLeakages, &c.Deduction, &c.ClosedAt, &c.ClosedBy); err != nil {
			return nil, fmt.Errorf("scan supplier close: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetFactoryClose devuelve el cierre de planta de una fecha, o nil si el
// canal sigue abierto.
func (r *DayCloseRepo) GetFactoryClose(date time.Time) (*entity.FactoryDayClose, error) {
	query := `
		SELECT id, date, total_bags, total_revenue, total_transactions, closed_at, closed_by
		FROM factory_day_closes WHERE date = $1::date`
	var c entity.FactoryDayClose
	err := r.q.QueryRow(context.Background(), query, date).Scan(
		&c.ID, &c.Date, &c.TotalBags, &c.TotalRevenue, &c.TotalTransactions, &c.ClosedAt, &c.ClosedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factory close: %w", err)
	}
	return &c, nil
}

// UpsertFactoryClose crea o actualiza el cierre de planta de la fecha.
func (r *DayCloseRepo) UpsertFactoryClose(close *entity.FactoryDayClose) error {
	if close.ID == "" {
		close.ID = uuid.New().String()
	}
	query := `
		INSERT INTO factory_day_closes (id, date, total_bags, total_revenue, total_transactions, closed_at, closed_by)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7)
		ON CONFLICT (date)
		DO UPDATE SET total_bags = EXCLUDED.total_bags, total_revenue = EXCLUDED.total_revenue,
			total_transactions = EXCLUDED.total_transactions, closed_at = EXCLUDED.closed_at,
			closed_by = EXCLUDED.closed_by`
	_, err := r.q.Exec(context.Background(), query,
		close.ID, close.Date, close.TotalBags, close.TotalRevenue,
		close.TotalTransactions, close.ClosedAt, close.ClosedBy,
	)
	if err != nil {
		return fmt.Errorf("upsert factory close: %w", err)
	}
	return nil
}
