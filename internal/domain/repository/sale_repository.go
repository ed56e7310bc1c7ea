package repository

import (
	"time"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// SaleFilter filtros para el historial de ventas (exportación/reportes).
type SaleFilter struct {
	Channel      string // vacío = todos
	SupplierName string // vacío = todos
	From, To     *time.Time
	Limit        int
	Offset       int
}

// SaleEntryRepository define el puerto de persistencia de ventas (DIP).
// Update existe únicamente para la reescritura del viaje final que hace
// el cierre de día del proveedor.
type SaleEntryRepository interface {
	Create(sale *entity.SaleEntry) error
	Update(sale *entity.SaleEntry) error
	// ListSupplierTrips devuelve los viajes supply de un proveedor en una
	// fecha, ordenados por TripNumber ascendente.
	ListSupplierTrips(supplierName string, date time.Time) ([]*entity.SaleEntry, error)
	// CountSupplierTrips cuenta los viajes supply de un proveedor en una
	// fecha (para numerar el siguiente).
	CountSupplierTrips(supplierName string, date time.Time) (int, error)
	// ListByChannelOnDate devuelve las ventas de un canal en una fecha,
	// en orden de creación ascendente.
	ListByChannelOnDate(channel string, date time.Time) ([]*entity.SaleEntry, error)
	// ListByDate devuelve todas las ventas de una fecha, en orden de
	// creación ascendente.
	ListByDate(date time.Time) ([]*entity.SaleEntry, error)
	// List devuelve el historial filtrado (más recientes primero).
	List(filter SaleFilter) ([]*entity.SaleEntry, error)
}
