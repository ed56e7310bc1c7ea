package repository

import (
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// DayCloseRepository define el puerto de persistencia del estado de cierre
// diario (DIP). El estado es explícito y está clavado a la fecha: la
// ausencia de registro para una fecha significa canal/proveedor abierto.
type DayCloseRepository interface {
	// GetSupplierClose devuelve el cierre de un proveedor en una fecha,
	// o nil si ese día sigue abierto.
	GetSupplierClose(supplierName string, date time.Time) (*entity.SupplierDayClose, error)
	CreateSupplierClose(close *entity.SupplierDayClose) error
	// ListSupplierCloses devuelve los cierres de proveedor de una fecha.
	ListSupplierCloses(date time.Time) ([]*entity.SupplierDayClose, error)
	// GetFactoryClose devuelve el cierre de planta de una fecha, o nil si
	// el canal sigue abierto.
	GetFactoryClose(date time.Time) (*entity.FactoryDayClose, error)
	// UpsertFactoryClose crea o actualiza el cierre de planta de la fecha
	// (CloseFactoryDay es idempotente y recalcula el resumen).
	UpsertFactoryClose(close *entity.FactoryDayClose) error
}
