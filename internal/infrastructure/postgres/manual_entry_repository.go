package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

var _ repository.ManualBagEntryRepository = (*ManualBagEntryRepo)(nil)

// ManualBagEntryRepo implementación sobre PostgreSQL (usable con pool o tx).
type ManualBagEntryRepo struct {
	q Querier
}

// NewManualBagEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManualBagEntryRepository(q Querier) *ManualBagEntryRepo {
	return &ManualBagEntryRepo{q: q}
}

// Create persiste un registro auditable de entrada manual.
func (r *ManualBagEntryRepo) Create(entry *entity.ManualBagEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO manual_bag_entries (id, timestamp, quantity, source, notes, entered_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Timestamp, entry.Quantity, entry.Source, entry.Notes, entry.EnteredBy,
	)
	if err != nil {
		return fmt.Errorf("create manual entry: %w", err)
	}
	return nil
}

// ListByDate devuelve las entradas manuales de una fecha calendario.
func (r *ManualBagEntryRepo) ListByDate(date time.Time) ([]*entity.ManualBagEntry, error) {
	query := `
		SELECT id, timestamp, quantity, source, notes, entered_by
		FROM manual_bag_entries WHERE timestamp::date = $1::date
		ORDER BY timestamp ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list manual entries by date: %w", err)
	}
	defer rows.Close()
	return collectManualEntries(rows)
}

// List devuelve el historial de entradas manuales (más recientes primero).
func (r *ManualBagEntryRepo) List(limit, offset int) ([]*entity.ManualBagEntry, error) {
	query := `
		SELECT id, timestamp, quantity, source, notes, entered_by
		FROM manual_bag_entries
		ORDER BY timestamp DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list manual entries: %w", err)
	}
	defer rows.Close()
	return collectManualEntries(rows)
}

func collectManualEntries(rows pgx.Rows) ([]*entity.ManualBagEntry, error) {
	var list []*entity.ManualBagEntry
	for rows.Next() {
		var e entity.ManualBagEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Quantity, &e.Source, &e.Notes, &e.EnteredBy); err != nil {
			return nil, fmt.Errorf("scan manual entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
