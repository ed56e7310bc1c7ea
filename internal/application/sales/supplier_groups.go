package sales

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// TodaySupplierGroups agrupa los viajes supply de hoy por proveedor, con
// viajes ordenados por TripNumber ascendente, totales acumulados y el
// estado de cierre leído del registro explícito por (proveedor, fecha).
// Los grupos salen en el orden de aparición del primer viaje del día.
func (uc *UseCase) TodaySupplierGroups(ctx context.Context) ([]*entity.SupplierDayGroup, error) {
	today := entity.DateOf(uc.now())

	trips, err := uc.sales.ListByChannelOnDate(entity.ChannelSupply, today)
	if err != nil {
		return nil, err
	}
	closes, err := uc.closes.ListSupplierCloses(today)
	if err != nil {
		return nil, err
	}
	closedBy := make(map[string]bool, len(closes))
	for _, c := range closes {
		closedBy[c.SupplierName] = true
	}

	var order []string
	groups := make(map[string]*entity.SupplierDayGroup)
	for _, t := range trips {
		g, ok := groups[t.SupplierName]
		if !ok {
			g = &entity.SupplierDayGroup{
				SupplierName: t.SupplierName,
				TotalRevenue: decimal.Zero,
				IsClosed:     closedBy[t.SupplierName],
			}
			groups[t.SupplierName] = g
			order = append(order, t.SupplierName)
		}
		g.Trips = append(g.Trips, *t)
		g.TotalBags += t.BagsTaken
		g.TotalRevenue = g.TotalRevenue.Add(t.Revenue)
		g.TotalLeakages += t.Leakages
	}

	result := make([]*entity.SupplierDayGroup, 0, len(order))
	for _, name := range order {
		g := groups[name]
		sort.Slice(g.Trips, func(i, j int) bool {
			return g.Trips[i].TripNumber < g.Trips[j].TripNumber
		})
		result = append(result, g)
	}
	return result, nil
}
