package repository

import (
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// ProductionBatchRepository define el puerto de persistencia de lotes de
// producción (DIP).
type ProductionBatchRepository interface {
	Create(batch *entity.ProductionBatch) error
	ListByDate(date time.Time) ([]*entity.ProductionBatch, error)
	List(limit, offset int) ([]*entity.ProductionBatch, error)
}
