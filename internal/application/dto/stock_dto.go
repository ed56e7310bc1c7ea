package dto

import "time"

// AddStockRequest body para POST /api/stock/additions.
type AddStockRequest struct {
	Quantity int    `json:"quantity"`
	Source   string `json:"source"`
}

// RemoveStockRequest body para POST /api/stock/removals.
type RemoveStockRequest struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// ManualEntryRequest body para POST /api/stock/manual-entries.
type ManualEntryRequest struct {
	Quantity int    `json:"quantity"`
	Source   string `json:"source"`
	Notes    string `json:"notes,omitempty"`
}

// StockMovementDTO representa un movimiento del libro en respuestas.
type StockMovementDTO struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Quantity       int       `json:"quantity"`
	Kind           string    `json:"kind"`
	Source         string    `json:"source,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	RunningBalance int       `json:"running_balance"`
	EnteredBy      string    `json:"entered_by,omitempty"`
}

// ManualEntryDTO representa una entrada manual en respuestas.
type ManualEntryDTO struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Quantity  int       `json:"quantity"`
	Source    string    `json:"source"`
	Notes     string    `json:"notes,omitempty"`
	EnteredBy string    `json:"entered_by,omitempty"`
}

// BalanceResponse respuesta de GET /api/stock/balance.
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// BreakdownResponse respuesta de GET /api/stock/breakdown. Total es el
// saldo de todo el libro; los buckets suman solo las entradas de hoy.
type BreakdownResponse struct {
	Total             int `json:"total"`
	Production        int `json:"production"`
	SupplierRemaining int `json:"supplier_remaining"`
	Manual            int `json:"manual"`
}
