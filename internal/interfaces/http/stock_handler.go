package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aquabolsa-api/internal/application/dto"
	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	uc *ledger.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddStock registra una entrada de bolsas al libro.
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.AddStock(c.Context(), in.Quantity, in.Source, GetUserID(c))
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementDTO(movement))
}

// RemoveStock registra una salida de bolsas del libro.
func (h *StockHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.RemoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.RemoveStock(c.Context(), in.Quantity, in.Reason, GetUserID(c))
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementDTO(movement))
}

// RegisterManualEntry registra una entrada manual auditable (donación,
// ajuste de conteo, etc.). La fuente "production" está reservada a los
// lotes de producción.
func (h *StockHandler) RegisterManualEntry(c *fiber.Ctx) error {
	var in dto.ManualEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.RegisterManualEntry(c.Context(), in.Quantity, in.Source, in.Notes, GetUserID(c))
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toManualEntryDTO(entry))
}

// GetBalance devuelve el saldo actual de bolsas.
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.uc.CurrentBalance(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(dto.BalanceResponse{Balance: balance})
}

// GetBreakdown devuelve el desglose de entradas de hoy por fuente.
func (h *StockHandler) GetBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.uc.TodayBreakdown(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(toBreakdownResponse(breakdown))
}

// ListMovements devuelve el historial de movimientos, con filtros
// opcionales from/to (RFC3339) y paginación.
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}

	movements, err := h.uc.ListMovements(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	out := make([]dto.StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// ListManualEntries devuelve el historial de entradas manuales.
func (h *StockHandler) ListManualEntries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	entries, err := h.uc.ListManualEntries(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	out := make([]dto.ManualEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toManualEntryDTO(e))
	}
	return c.JSON(fiber.Map{"total": len(out), "entries": out})
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toMovementDTO(m *entity.StockMovement) dto.StockMovementDTO {
	return dto.StockMovementDTO{
		ID:             m.ID,
		Timestamp:      m.Timestamp,
		Quantity:       m.Quantity,
		Kind:           m.Kind,
		Source:         m.Source,
		Reason:         m.Reason,
		RunningBalance: m.RunningBalance,
		EnteredBy:      m.EnteredBy,
	}
}

func toManualEntryDTO(e *entity.ManualBagEntry) dto.ManualEntryDTO {
	return dto.ManualEntryDTO{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Quantity:  e.Quantity,
		Source:    e.Source,
		Notes:     e.Notes,
		EnteredBy: e.EnteredBy,
	}
}

func toBreakdownResponse(b *entity.StockDayBreakdown) dto.BreakdownResponse {
	return dto.BreakdownResponse{
		Total:             b.Total,
		Production:        b.Production,
		SupplierRemaining: b.SupplierRemaining,
		Manual:            b.Manual,
	}
}
