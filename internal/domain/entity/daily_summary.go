package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDayBreakdown desglosa las entradas de hoy por fuente. Total es el
// saldo de todo el libro (lo "disponible ahora" que usa el motor de
// ventas), no la suma de los movimientos de hoy.
type StockDayBreakdown struct {
	Total             int
	Production        int
	SupplierRemaining int
	Manual            int
}

// SupplierDayGroup agrupa los viajes de hoy de un proveedor con sus
// totales acumulados y el estado de cierre explícito.
type SupplierDayGroup struct {
	SupplierName  string
	Trips         []SaleEntry // ordenados por TripNumber ascendente
	TotalBags     int
	TotalRevenue  decimal.Decimal
	TotalLeakages int
	IsClosed      bool
}

// SalesDaySummary es el agregado de ventas de una fecha para el dashboard.
// Se cachea por fecha: el cambio de día es simplemente una clave nueva.
type SalesDaySummary struct {
	Date              time.Time // solo la fecha (00:00 hora local)
	TotalBags         int
	TotalRevenue      decimal.Decimal
	TotalLeakages     int
	TotalBagsReturned int
	Transactions      int
	FactoryClosed     bool
}
