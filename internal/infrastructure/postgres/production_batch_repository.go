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

var _ repository.ProductionBatchRepository = (*ProductionBatchRepo)(nil)

// ProductionBatchRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductionBatchRepo struct {
	q Querier
}

// NewProductionBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionBatchRepository(q Querier) *ProductionBatchRepo {
	return &ProductionBatchRepo{q: q}
}

// Create persiste un lote de producción.
func (r *ProductionBatchRepo) Create(batch *entity.ProductionBatch) error {
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	query := `
		INSERT INTO production_batches (id, timestamp, material_kg, material_grade, bags_produced, assigned_to, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Timestamp, batch.MaterialKg, batch.MaterialGrade,
		batch.BagsProduced, batch.AssignedTo, batch.Notes, batch.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create production batch: %w", err)
	}
	return nil
}

// ListByDate devuelve los lotes de una fecha calendario.
func (r *ProductionBatchRepo) ListByDate(date time.Time) ([]*entity.ProductionBatch, error) {
	query := `
		SELECT id, timestamp, material_kg, material_grade, bags_produced, assigned_to, notes, created_by
		FROM production_batches WHERE timestamp::date = $1::date
		ORDER BY timestamp ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list batches by date: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

// List devuelve el historial de lotes (más recientes primero).
func (r *ProductionBatchRepo) List(limit, offset int) ([]*entity.ProductionBatch, error) {
	query := `
		SELECT id, timestamp, material_kg, material_grade, bags_produced, assigned_to, notes, created_by
		FROM production_batches
		ORDER BY timestamp DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

func collectBatches(rows pgx.Rows) ([]*entity.ProductionBatch, error) {
	var list []*entity.ProductionBatch
	for rows.Next() {
		var b entity.ProductionBatch
		if err := rows.Scan(&b.ID, &b.Timestamp, &b.MaterialKg, &b.MaterialGrade,
			&b.BagsProduced, &b.AssignedTo, &b.Notes, &b.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
