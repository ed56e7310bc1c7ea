package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aquabolsa-api/internal/domain"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testDay = time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

// newTestUseCase construye el caso de uso sobre el store en memoria con un
// reloj fijo controlable desde el test.
func newTestUseCase(t *testing.T) (*UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := NewUseCase(store.LedgerTx(), store.StockMovements(), store.ManualEntries())
	uc.now = func() time.Time { return testDay }
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// AddStock / RemoveStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock_IncrementaSaldoCorriente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	m1, err := uc.AddStock(ctx, 100, entity.SourceProduction, "op-1")
	require.NoError(t, err)
	assert.Equal(t, 100, m1.RunningBalance, "el primer movimiento parte de saldo cero")
	assert.Equal(t, entity.MovementKindAddition, m1.Kind)
	assert.NotEmpty(t, m1.ID, "el repositorio debe asignar ID")

	m2, err := uc.AddStock(ctx, 50, "donation", "op-1")
	require.NoError(t, err)
	assert.Equal(t, 150, m2.RunningBalance, "el saldo corre movimiento a movimiento")

	balance, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)
}

func TestAddStock_CantidadInvalida(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	for _, qty := range []int{0, -5} {
		_, err := uc.AddStock(ctx, qty, entity.SourceProduction, "op-1")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", qty)
	}

	balance, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, balance, "un alta rechazada no deja rastro en el libro")
}

func TestRemoveStock_DescuentaDelSaldo(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, 100, entity.SourceProduction, "op-1")
	require.NoError(t, err)

	m, err := uc.RemoveStock(ctx, 30, entity.ReasonFactorySale, "op-2")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindRemoval, m.Kind)
	assert.Equal(t, 70, m.RunningBalance)
}

// Escenario completo: alta de 100, salida de 30, intento de salida de 80.
// El rechazo debe informar el disponible real (70) y no mutar nada.
func TestRemoveStock_InsuficienteInformaDisponible(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, 100, entity.SourceProduction, "op-1")
	require.NoError(t, err)
	_, err = uc.RemoveStock(ctx, 30, entity.ReasonFactorySale, "op-2")
	require.NoError(t, err)

	_, err = uc.RemoveStock(ctx, 80, entity.ReasonFactorySale, "op-2")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "70", "el error debe incluir el disponible real")

	balance, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, balance, "el saldo no cambia tras un rechazo")

	movements, err := uc.ListMovements(ctx, nil, nil, 50, 0)
	require.NoError(t, err)
	assert.Len(t, movements, 2, "la salida rechazada no se registra")
}

func TestRemoveStock_SaldoNuncaNegativo(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.RemoveStock(ctx, 1, entity.ReasonFactorySale, "op-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "con libro vacío cualquier salida se rechaza")
}

// Ida y vuelta: agregar X y retirar X deja el saldo exactamente donde estaba.
func TestStock_IdaYVuelta(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, 40, entity.SourceProduction, "op-1")
	require.NoError(t, err)

	before, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)

	_, err = uc.AddStock(ctx, 25, "donation", "op-1")
	require.NoError(t, err)
	_, err = uc.RemoveStock(ctx, 25, entity.ReasonSupplierSale, "op-1")
	require.NoError(t, err)

	after, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterManualEntry_CreaMovimientoYRegistro(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	entry, err := uc.RegisterManualEntry(ctx, 20, "count_adjustment", "conteo físico de bodega", "op-1")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "count_adjustment", entry.Source)

	balance, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, balance, "la entrada manual alimenta el libro")

	entries, err := store.ManualEntries().List(50, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "el registro auditable queda persistido")
}

func TestRegisterManualEntry_FuenteReservada(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.RegisterManualEntry(ctx, 20, entity.SourceProduction, "", "op-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fuente production solo entra vía lotes")

	_, err = uc.RegisterManualEntry(ctx, 20, "", "", "op-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fuente es obligatoria")

	balance, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desglose del día
// ──────────────────────────────────────────────────────────────────────────────

func TestTodayBreakdown_AgrupaPorFuente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	// Entradas de "ayer": no deben aparecer en los buckets de hoy pero sí
	// en el total disponible.
	yesterday := testDay.AddDate(0, 0, -1)
	uc.now = func() time.Time { return yesterday }
	_, err := uc.AddStock(ctx, 10, entity.SourceProduction, "op-1")
	require.NoError(t, err)

	uc.now = func() time.Time { return testDay }
	_, err = uc.AddStock(ctx, 100, entity.SourceProduction, "op-1")
	require.NoError(t, err)
	_, err = uc.AddStock(ctx, 5, entity.SourceSupplierRemaining, "op-1")
	require.NoError(t, err)
	_, err = uc.RegisterManualEntry(ctx, 8, "donation", "", "op-1")
	require.NoError(t, err)
	_, err = uc.RemoveStock(ctx, 30, entity.ReasonFactorySale, "op-1")
	require.NoError(t, err)

	breakdown, err := uc.TodayBreakdown(ctx)
	require.NoError(t, err)

	assert.Equal(t, 93, breakdown.Total, "total = saldo de todo el libro (10+100+5+8-30)")
	assert.Equal(t, 100, breakdown.Production, "solo la producción de hoy")
	assert.Equal(t, 5, breakdown.SupplierRemaining)
	assert.Equal(t, 8, breakdown.Manual)
}

// Todos los movimientos de este test comparten el mismo instante (el reloj
// está fijo): el saldo debe seguir el orden de creación, no el timestamp.
func TestCurrentBalance_EmpateDeTimestampResuelvePorCreacion(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, 100, entity.SourceProduction, "op-1")
	require.NoError(t, err)
	_, err = uc.RemoveStock(ctx, 30, entity.ReasonFactorySale, "op-1")
	require.NoError(t, err)
	_, err = uc.AddStock(ctx, 1, "donation", "op-1")
	require.NoError(t, err)

	balance, err := uc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 71, balance, "el último movimiento creado manda, aun con timestamps idénticos")
}

func TestCurrentBalance_LibroVacio(t *testing.T) {
	uc, _ := newTestUseCase(t)

	balance, err := uc.CurrentBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}
