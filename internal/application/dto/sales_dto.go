package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	Channel      string          `json:"channel"` // supply | factory
	SupplierName string          `json:"supplier_name,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	BagsTaken    int             `json:"bags_taken"`
	PricePerBag  decimal.Decimal `json:"price_per_bag"`
	Leakages     int             `json:"leakages"`
	Notes        string          `json:"notes,omitempty"`
}

// SaleEntryDTO representa una venta en respuestas.
type SaleEntryDTO struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Channel      string          `json:"channel"`
	SupplierName string          `json:"supplier_name,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	TripNumber   int             `json:"trip_number,omitempty"`
	BagsTaken    int             `json:"bags_taken"`
	PricePerBag  decimal.Decimal `json:"price_per_bag"`
	Revenue      decimal.Decimal `json:"revenue"`
	Leakages     int             `json:"leakages"`
	BagsReturned int             `json:"bags_returned"`
	Notes        string          `json:"notes,omitempty"`
}

// SupplierGroupDTO grupo de viajes de un proveedor en el día.
type SupplierGroupDTO struct {
	SupplierName  string          `json:"supplier_name"`
	Trips         []SaleEntryDTO  `json:"trips"`
	TotalBags     int             `json:"total_bags"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalLeakages int             `json:"total_leakages"`
	IsClosed      bool            `json:"is_closed"`
}

// CloseSupplierDayRequest body para POST /api/sales/suppliers/close.
type CloseSupplierDayRequest struct {
	SupplierName       string `json:"supplier_name"`
	RemainingBags      int    `json:"remaining_bags"`
	AdditionalLeakages int    `json:"additional_leakages"`
}

// SupplierCloseDTO respuesta del cierre de proveedor.
type SupplierCloseDTO struct {
	SupplierName       string          `json:"supplier_name"`
	Date               string          `json:"date"`
	RemainingBags      int             `json:"remaining_bags"`
	AdditionalLeakages int             `json:"additional_leakages"`
	Deduction          decimal.Decimal `json:"deduction"`
	ClosedAt           time.Time       `json:"closed_at"`
}

// FactoryCloseDTO respuesta del cierre de planta.
type FactoryCloseDTO struct {
	Date              string          `json:"date"`
	TotalBags         int             `json:"total_bags"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
	ClosedAt          time.Time       `json:"closed_at"`
}

// DaySummaryDTO agregado de ventas del día para el dashboard.
type DaySummaryDTO struct {
	Date              string          `json:"date"`
	TotalBags         int             `json:"total_bags"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalLeakages     int             `json:"total_leakages"`
	TotalBagsReturned int             `json:"total_bags_returned"`
	Transactions      int             `json:"transactions"`
	FactoryClosed     bool            `json:"factory_closed"`
}
