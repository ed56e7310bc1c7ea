package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierDayClose marca explícitamente el cierre del día de un proveedor.
// Se persiste una sola vez por (proveedor, fecha); su existencia es la
// fuente de verdad del estado Cerrado, en lugar de inferirlo de
// BagsReturned > 0 en algún viaje.
type SupplierDayClose struct {
	ID                 string
	SupplierName       string
	Date               time.Time // solo la fecha (00:00 hora local)
	RemainingBags      int
	AdditionalLeakages int
	Deduction          decimal.Decimal
	ClosedAt           time.Time
	ClosedBy           string
}

// FactoryDayClose marca el cierre de ventas de planta para una fecha y
// congela el resumen del día. Está clavado a la fecha: un día nuevo no
// tiene registro, por lo tanto el canal amanece abierto sin reset manual.
type FactoryDayClose struct {
	ID                string
	Date              time.Time // solo la fecha (00:00 hora local)
	TotalBags         int
	TotalRevenue      decimal.Decimal
	TotalTransactions int
	ClosedAt          time.Time
	ClosedBy          string
}
