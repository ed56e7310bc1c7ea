package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionBatch registra un lote de producción asignado a un operario.
// BagsProduced puede venir contado a mano o estimarse con la tabla de
// rendimiento por calidad de material (inventory.EstimateBags).
type ProductionBatch struct {
	ID            string
	Timestamp     time.Time
	MaterialKg    decimal.Decimal
	MaterialGrade string
	BagsProduced  int
	AssignedTo    string
	Notes         string
	CreatedBy     string
}
