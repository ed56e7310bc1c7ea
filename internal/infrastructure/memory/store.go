// Package memory implementa todos los repositorios del dominio sobre
// slices en memoria. Se usa cuando no hay DATABASE_URL (modo local de un
// solo dispositivo) y en los tests de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

// Store guarda las colecciones en orden de creación. Modelo de un solo
// escritor (ver los supuestos de concurrencia de la app): el mutex protege
// lecturas concurrentes de handlers HTTP, no hay resolución de conflictos.
type Store struct {
	mu             sync.Mutex
	movements      []entity.StockMovement
	manualEntries  []entity.ManualBagEntry
	sales          []entity.SaleEntry
	supplierCloses []entity.SupplierDayClose
	factoryCloses  []entity.FactoryDayClose
	batches        []entity.ProductionBatch
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{}
}

// snapshot copia el estado completo para poder revertirlo si una
// transacción simulada falla a mitad de camino.
type snapshot struct {
	movements      []entity.StockMovement
	manualEntries  []entity.ManualBagEntry
	sales          []entity.SaleEntry
	supplierCloses []entity.SupplierDayClose
	factoryCloses  []entity.FactoryDayClose
	batches        []entity.ProductionBatch
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		movements:      append([]entity.StockMovement(nil), s.movements...),
		manualEntries:  append([]entity.ManualBagEntry(nil), s.manualEntries...),
		sales:          append([]entity.SaleEntry(nil), s.sales...),
		supplierCloses: append([]entity.SupplierDayClose(nil), s.supplierCloses...),
		factoryCloses:  append([]entity.FactoryDayClose(nil), s.factoryCloses...),
		batches:        append([]entity.ProductionBatch(nil), s.batches...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = snap.movements
	s.manualEntries = snap.manualEntries
	s.sales = snap.sales
	s.supplierCloses = snap.supplierCloses
	s.factoryCloses = snap.factoryCloses
	s.batches = snap.batches
}

// runWithRollback ejecuta fn y restaura el snapshot si retorna error:
// ninguna operación fallida deja mutación parcial, igual que el Rollback
// de la implementación PostgreSQL.
func (s *Store) runWithRollback(fn func() error) error {
	snap := s.takeSnapshot()
	if err := fn(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// LedgerTxRunner implementa ledger.TxRunner sobre el store.
type LedgerTxRunner struct{ s *Store }

// LedgerTx devuelve el runner de transacciones del libro de stock.
func (s *Store) LedgerTx() *LedgerTxRunner { return &LedgerTxRunner{s: s} }

// Run ejecuta fn con rollback por snapshot si falla.
func (r *LedgerTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	manualRepo repository.ManualBagEntryRepository,
) error) error {
	return r.s.runWithRollback(func() error {
		return fn(r.s.StockMovements(), r.s.ManualEntries())
	})
}

// SalesTxRunner implementa sales.TxRunner sobre el store.
type SalesTxRunner struct{ s *Store }

// SalesTx devuelve el runner de transacciones del motor de ventas.
func (s *Store) SalesTx() *SalesTxRunner { return &SalesTxRunner{s: s} }

// Run ejecuta fn con rollback por snapshot si falla.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleEntryRepository,
	closeRepo repository.DayCloseRepository,
) error) error {
	return r.s.runWithRollback(func() error {
		return fn(r.s.StockMovements(), r.s.Sales(), r.s.DayCloses())
	})
}

// ProductionTxRunner implementa production.TxRunner sobre el store.
type ProductionTxRunner struct{ s *Store }

// ProductionTx devuelve el runner de transacciones de producción.
func (s *Store) ProductionTx() *ProductionTxRunner { return &ProductionTxRunner{s: s} }

// Run ejecuta fn con rollback por snapshot si falla.
func (r *ProductionTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	batchRepo repository.ProductionBatchRepository,
) error) error {
	return r.s.runWithRollback(func() error {
		return fn(r.s.StockMovements(), r.s.ProductionBatches())
	})
}
