package repository

import (
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// ManualBagEntryRepository define el puerto de persistencia de los
// registros auditables de entradas manuales (DIP).
type ManualBagEntryRepository interface {
	Create(entry *entity.ManualBagEntry) error
	ListByDate(date time.Time) ([]*entity.ManualBagEntry, error)
	List(limit, offset int) ([]*entity.ManualBagEntry, error)
}
