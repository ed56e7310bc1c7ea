package entity

import "time"

// Tipos de movimiento del libro de stock de bolsas (value object conceptual).
const (
	MovementKindAddition = "addition" // entrada
	MovementKindRemoval  = "removal"  // salida
)

// Fuentes reconocidas para entradas. Cualquier otra fuente se considera
// una entrada manual/externa.
const (
	SourceProduction        = "production"
	SourceSupplierRemaining = "supplier_remaining"
)

// Razones de salida generadas por el motor de ventas.
const (
	ReasonSupplierSale = "supplier_sale"
	ReasonFactorySale  = "factory_sale"
)

// StockMovement es una entrada inmutable del libro de stock de bolsas
// terminadas. RunningBalance es el saldo total inmediatamente después de
// aplicar este movimiento; nunca es negativo. El libro es append-only:
// un movimiento escrito jamás se modifica ni se borra.
type StockMovement struct {
	ID             string
	Timestamp      time.Time
	Quantity       int    // siempre positivo, cantidad de bolsas
	Kind           string // addition | removal
	Source         string // solo para addition: production, supplier_remaining, o fuente manual
	Reason         string // solo para removal: supplier_sale, factory_sale, u otra razón
	RunningBalance int
	EnteredBy      string // UserID, opcional
}
