package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// ── Movimientos de stock ──────────────────────────────────────────────────────

var _ repository.StockMovementRepository = (*movementRepo)(nil)

type movementRepo struct{ s *Store }

// StockMovements devuelve el repositorio de movimientos sobre el store.
func (s *Store) StockMovements() repository.StockMovementRepository { return &movementRepo{s: s} }

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

func (r *movementRepo) Last() (*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.movements) == 0 {
		return nil, nil
	}
	m := r.s.movements[len(r.s.movements)-1]
	return &m, nil
}

func (r *movementRepo) ListByDate(date time.Time) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.StockMovement
	for i := range r.s.movements {
		if entity.SameDay(r.s.movements[i].Timestamp, date) {
			m := r.s.movements[i]
			list = append(list, &m)
		}
	}
	return list, nil
}

func (r *movementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var filtered []*entity.StockMovement
	// Más recientes primero
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if from != nil && m.Timestamp.Before(*from) {
			continue
		}
		if to != nil && m.Timestamp.After(*to) {
			continue
		}
		filtered = append(filtered, &m)
	}
	return paginate(filtered, limit, offset), nil
}

// ── Entradas manuales ─────────────────────────────────────────────────────────

var _ repository.ManualBagEntryRepository = (*manualRepo)(nil)

type manualRepo struct{ s *Store }

// ManualEntries devuelve el repositorio de entradas manuales sobre el store.
func (s *Store) ManualEntries() repository.ManualBagEntryRepository { return &manualRepo{s: s} }

func (r *manualRepo) Create(entry *entity.ManualBagEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.s.manualEntries = append(r.s.manualEntries, *entry)
	return nil
}

func (r *manualRepo) ListByDate(date time.Time) ([]*entity.ManualBagEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ManualBagEntry
	for i := range r.s.manualEntries {
		if entity.SameDay(r.s.manualEntries[i].Timestamp, date) {
			e := r.s.manualEntries[i]
			list = append(list, &e)
		}
	}
	return list, nil
}

func (r *manualRepo) List(limit, offset int) ([]*entity.ManualBagEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ManualBagEntry
	for i := len(r.s.manualEntries) - 1; i >= 0; i-- {
		e := r.s.manualEntries[i]
		list = append(list, &e)
	}
	return paginate(list, limit, offset), nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

var _ repository.SaleEntryRepository = (*saleRepo)(nil)

type saleRepo struct{ s *Store }

// Sales devuelve el repositorio de ventas sobre el store.
func (s *Store) Sales() repository.SaleEntryRepository { return &saleRepo{s: s} }

func (r *saleRepo) Create(sale *entity.SaleEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	r.s.sales = append(r.s.sales, *sale)
	return nil
}

func (r *saleRepo) Update(sale *entity.SaleEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.sales {
		if r.s.sales[i].ID == sale.ID {
			r.s.sales[i] = *sale
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *saleRepo) ListSupplierTrips(supplierName string, date time.Time) ([]*entity.SaleEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SaleEntry
	for i := range r.s.sales {
		s := r.s.sales[i]
		if s.Channel == entity.ChannelSupply && s.SupplierName == supplierName && entity.SameDay(s.Timestamp, date) {
			list = append(list, &s)
		}
	}
	sortByTripNumber(list)
	return list, nil
}

func (r *saleRepo) CountSupplierTrips(supplierName string, date time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for i := range r.s.sales {
		s := r.s.sales[i]
		if s.Channel == entity.ChannelSupply && s.SupplierName == supplierName && entity.SameDay(s.Timestamp, date) {
			count++
		}
	}
	return count, nil
}

func (r *saleRepo) ListByChannelOnDate(channel string, date time.Time) ([]*entity.SaleEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SaleEntry
	for i := range r.s.sales {
		s := r.s.sales[i]
		if s.Channel == channel && entity.SameDay(s.Timestamp, date) {
			list = append(list, &s)
		}
	}
	return list, nil
}

func (r *saleRepo) ListByDate(date time.Time) ([]*entity.SaleEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SaleEntry
	for i := range r.s.sales {
		s := r.s.sales[i]
		if entity.SameDay(s.Timestamp, date) {
			list = append(list, &s)
		}
	}
	return list, nil
}

func (r *saleRepo) List(filter repository.SaleFilter) ([]*entity.SaleEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SaleEntry
	for i := len(r.s.sales) - 1; i >= 0; i-- {
		s := r.s.sales[i]
		if filter.Channel != "" && s.Channel != filter.Channel {
			continue
		}
		if filter.SupplierName != "" && s.SupplierName != filter.SupplierName {
			continue
		}
		if filter.From != nil && s.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.Timestamp.After(*filter.To) {
			continue
		}
		list = append(list, &s)
	}
	return paginate(list, filter.Limit, filter.Offset), nil
}

// ── Cierres diarios ───────────────────────────────────────────────────────────

var _ repository.DayCloseRepository = (*dayCloseRepo)(nil)

type dayCloseRepo struct{ s *Store }

// DayCloses devuelve el repositorio de cierres diarios sobre el store.
func (s *Store) DayCloses() repository.DayCloseRepository { return &dayCloseRepo{s: s} }

func (r *dayCloseRepo) GetSupplierClose(supplierName string, date time.Time) (*entity.SupplierDayClose, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.supplierCloses {
		c := r.s.supplierCloses[i]
		if c.SupplierName == supplierName && entity.SameDay(c.Date, date) {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *dayCloseRepo) CreateSupplierClose(close *entity.SupplierDayClose) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.supplierCloses {
		c := r.s.supplierCloses[i]
		if c.SupplierName == close.SupplierName && entity.SameDay(c.Date, close.Date) {
			return domain.ErrChannelClosed
		}
	}
	if close.ID == "" {
		close.ID = uuid.New().String()
	}
	r.s.supplierCloses = append(r.s.supplierCloses, *close)
	return nil
}

func (r *dayCloseRepo) ListSupplierCloses(date time.Time) ([]*entity.SupplierDayClose, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SupplierDayClose
	for i := range r.s.supplierCloses {
		c := r.s.supplierCloses[i]
		if entity.SameDay(c.Date, date) {
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *dayCloseRepo) GetFactoryClose(date time.Time) (*entity.FactoryDayClose, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.factoryCloses {
		c := r.s.factoryCloses[i]
		if entity.SameDay(c.Date, date) {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *dayCloseRepo) UpsertFactoryClose(close *entity.FactoryDayClose) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.factoryCloses {
		if entity.SameDay(r.s.factoryCloses[i].Date, close.Date) {
			close.ID = r.s.factoryCloses[i].ID
			r.s.factoryCloses[i] = *close
			return nil
		}
	}
	if close.ID == "" {
		close.ID = uuid.New().String()
	}
	r.s.factoryCloses = append(r.s.factoryCloses, *close)
	return nil
}

// ── Lotes de producción ───────────────────────────────────────────────────────

var _ repository.ProductionBatchRepository = (*batchRepo)(nil)

type batchRepo struct{ s *Store }

// ProductionBatches devuelve el repositorio de lotes sobre el store.
func (s *Store) ProductionBatches() repository.ProductionBatchRepository { return &batchRepo{s: s} }

func (r *batchRepo) Create(batch *entity.ProductionBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	r.s.batches = append(r.s.batches, *batch)
	return nil
}

func (r *batchRepo) ListByDate(date time.Time) ([]*entity.ProductionBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ProductionBatch
	for i := range r.s.batches {
		if entity.SameDay(r.s.batches[i].Timestamp, date) {
			b := r.s.batches[i]
			list = append(list, &b)
		}
	}
	return list, nil
}

func (r *batchRepo) List(limit, offset int) ([]*entity.ProductionBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ProductionBatch
	for i := len(r.s.batches) - 1; i >= 0; i-- {
		b := r.s.batches[i]
		list = append(list, &b)
	}
	return paginate(list, limit, offset), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func paginate[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return nil
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func sortByTripNumber(list []*entity.SaleEntry) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].TripNumber < list[j-1].TripNumber; j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}
