package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

var _ repository.SaleEntryRepository = (*SaleEntryRepo)(nil)

// SaleEntryRepo implementación sobre PostgreSQL (usable con pool o tx).
type SaleEntryRepo struct {
	q Querier
}

// NewSaleEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleEntryRepository(q Querier) *SaleEntryRepo {
	return &SaleEntryRepo{q: q}
}

const saleColumns = `id, timestamp, channel, supplier_name, customer_name, trip_number,
	bags_taken, price_per_bag, revenue, leakages, bags_returned, notes, created_by`

// Create persiste una venta.
func (r *SaleEntryRepo) Create(sale *entity.SaleEntry) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_entries (id, timestamp, channel, supplier_name, customer_name, trip_number,
			bags_taken, price_per_bag, revenue, leakages, bags_returned, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Timestamp, sale.Channel, sale.SupplierName, sale.CustomerName, sale.TripNumber,
		sale.BagsTaken, sale.PricePerBag, sale.Revenue, sale.Leakages, sale.BagsReturned, sale.Notes, sale.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// Update reescribe una venta existente. Solo lo usa el cierre de día del
// proveedor sobre el viaje final.
func (r *SaleEntryRepo) Update(sale *entity.SaleEntry) error {
	query := `
		UPDATE sale_entries
		SET revenue = $2, leakages = $3, bags_returned = $4, notes = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Revenue, sale.Leakages, sale.BagsReturned, sale.Notes,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListSupplierTrips devuelve los viajes supply de un proveedor en una
// fecha, ordenados por trip_number ascendente.
func (r *SaleEntryRepo) ListSupplierTrips(supplierName string, date time.Time) ([]*entity.SaleEntry, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sale_entries
		WHERE channel = $1 AND supplier_name = $2 AND timestamp::date = $3::date
		ORDER BY trip_number ASC`
	rows, err := r.q.Query(context.Background(), query, entity.ChannelSupply, supplierName, date)
	if err != nil {
		return nil, fmt.Errorf("list supplier trips: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// CountSupplierTrips cuenta los viajes supply de un proveedor en una fecha.
func (r *SaleEntryRepo) CountSupplierTrips(supplierName string, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM sale_entries
		WHERE channel = $1 AND supplier_name = $2 AND timestamp::date = $3::date`
	var count int
	err := r.q.QueryRow(context.Background(), query, entity.ChannelSupply, supplierName, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count supplier trips: %w", err)
	}
	return count, nil
}

// ListByChannelOnDate devuelve las ventas de un canal en una fecha, en
// orden de creación ascendente.
func (r *SaleEntryRepo) ListByChannelOnDate(channel string, date time.Time) ([]*entity.SaleEntry, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sale_entries
		WHERE channel = $1 AND timestamp::date = $2::date
		ORDER BY timestamp ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, channel, date)
	if err != nil {
		return nil, fmt.Errorf("list sales by channel: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListByDate devuelve todas las ventas de una fecha.
func (r *SaleEntryRepo) ListByDate(date time.Time) ([]*entity.SaleEntry, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sale_entries WHERE timestamp::date = $1::date
		ORDER BY timestamp ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list sales by date: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// List devuelve el historial filtrado (más recientes primero).
func (r *SaleEntryRepo) List(filter repository.SaleFilter) ([]*entity.SaleEntry, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sale_entries WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Channel != "" {
		query += fmt.Sprintf(" AND channel = $%d", pos)
		args = append(args, filter.Channel)
		pos++
	}
	if filter.SupplierName != "" {
		query += fmt.Sprintf(" AND supplier_name = $%d", pos)
		args = append(args, filter.SupplierName)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.SaleEntry, error) {
	var list []*entity.SaleEntry
	for rows.Next() {
		var s entity.SaleEntry
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.Channel, &s.SupplierName, &s.CustomerName, &s.TripNumber,
			&s.BagsTaken, &s.PricePerBag, &s.Revenue, &s.Leakages, &s.BagsReturned, &s.Notes, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
