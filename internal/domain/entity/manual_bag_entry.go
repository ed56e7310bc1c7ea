package entity

import "time"

// ManualBagEntry es el registro auditable de una entrada manual de bolsas
// (donación, ajuste de conteo, fuente externa). El movimiento de stock que
// alimenta el saldo se crea aparte, en la misma transacción; este registro
// existe para la pantalla de auditoría.
type ManualBagEntry struct {
	ID        string
	Timestamp time.Time
	Quantity  int // siempre positivo
	Source    string
	Notes     string
	EnteredBy string
}
