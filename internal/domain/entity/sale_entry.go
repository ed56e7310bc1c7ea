package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canales de venta.
const (
	ChannelSupply  = "supply"  // viaje de proveedor en ruta
	ChannelFactory = "factory" // venta directa en planta
)

// SaleEntry es una transacción de venta. En el canal supply cada registro
// es un viaje: SupplierName es obligatorio y TripNumber numera los viajes
// del proveedor dentro del día (1..N, independiente por proveedor). En el
// canal factory no hay viajes: TripNumber queda en cero y CustomerName es
// opcional.
//
// Revenue se deriva al crear (BagsTaken x PricePerBag) y solo lo reescribe
// el cierre de día del proveedor sobre el viaje final, junto con
// BagsReturned, Leakages y Notes.
type SaleEntry struct {
	ID           string
	Timestamp    time.Time
	Channel      string // supply | factory
	SupplierName string // solo supply
	CustomerName string // solo factory, opcional
	TripNumber   int    // solo supply; 0 en factory
	BagsTaken    int    // siempre positivo
	PricePerBag  decimal.Decimal
	Revenue      decimal.Decimal
	Leakages     int // bolsas rotas reportadas, nunca negativo
	BagsReturned int // bolsas devueltas en el cierre, nunca negativo
	Notes        string
	CreatedBy    string // UserID, opcional
}
