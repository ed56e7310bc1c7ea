package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aquabolsa-api/internal/application/dto"
	"github.com/jhoicas/aquabolsa-api/internal/application/sales"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
	"github.com/jhoicas/aquabolsa-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SalesHandler maneja las peticiones HTTP del motor de ventas (protegido).
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// RecordSale registra una venta (viaje de proveedor o venta en planta).
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.RecordSale(c.Context(), sales.RecordSaleInput{
		Channel:      in.Channel,
		SupplierName: in.SupplierName,
		CustomerName: in.CustomerName,
		BagsTaken:    in.BagsTaken,
		PricePerBag:  in.PricePerBag,
		Leakages:     in.Leakages,
		Notes:        in.Notes,
		CreatedBy:    GetUserID(c),
	})
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleDTO(sale))
}

// History devuelve el historial de ventas con filtros opcionales
// channel, supplier_name, from/to (RFC3339) y paginación.
func (h *SalesHandler) History(c *fiber.Ctx) error {
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

	entries, err := h.uc.History(c.Context(), repository.SaleFilter{
		Channel:      c.Query("channel"),
		SupplierName: c.Query("supplier_name"),
		From:         from,
		To:           to,
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		return domainErrorResponse(c, err)
	}
	out := make([]dto.SaleEntryDTO, 0, len(entries))
	for _, s := range entries {
		out = append(out, toSaleDTO(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "sales": out})
}

// TodaySupplierGroups devuelve los viajes supply de hoy agrupados por
// proveedor, con totales y estado de cierre.
func (h *SalesHandler) TodaySupplierGroups(c *fiber.Ctx) error {
	groups, err := h.uc.TodaySupplierGroups(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	out := make([]dto.SupplierGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, toSupplierGroupDTO(g))
	}
	return c.JSON(fiber.Map{"total": len(out), "suppliers": out})
}

// CloseSupplierDay cierra el día de un proveedor: registra devoluciones y
// fugas adicionales, descuenta del viaje final y repone las bolsas
// devueltas al libro.
func (h *SalesHandler) CloseSupplierDay(c *fiber.Ctx) error {
	var in dto.CloseSupplierDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dayClose, err := h.uc.CloseSupplierDay(c.Context(), in.SupplierName, in.RemainingBags, in.AdditionalLeakages, GetUserID(c))
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSupplierCloseDTO(dayClose))
}

// CloseFactoryDay cierra la venta en planta del día. Idempotente: repetirlo
// recalcula el agregado con las ventas del día.
func (h *SalesHandler) CloseFactoryDay(c *fiber.Ctx) error {
	dayClose, err := h.uc.CloseFactoryDay(c.Context(), GetUserID(c))
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toFactoryCloseDTO(dayClose))
}

// TodaySummary devuelve el agregado de ventas del día.
func (h *SalesHandler) TodaySummary(c *fiber.Ctx) error {
	summary, err := h.uc.TodaySummary(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.JSON(toDaySummaryDTO(summary))
}

func toSaleDTO(s *entity.SaleEntry) dto.SaleEntryDTO {
	return dto.SaleEntryDTO{
		ID:           s.ID,
		Timestamp:    s.Timestamp,
		Channel:      s.Channel,
		SupplierName: s.SupplierName,
		CustomerName: s.CustomerName,
		TripNumber:   s.TripNumber,
		BagsTaken:    s.BagsTaken,
		PricePerBag:  s.PricePerBag,
		Revenue:      s.Revenue,
		Leakages:     s.Leakages,
		BagsReturned: s.BagsReturned,
		Notes:        s.Notes,
	}
}

func toSupplierGroupDTO(g *entity.SupplierDayGroup) dto.SupplierGroupDTO {
	trips := make([]dto.SaleEntryDTO, 0, len(g.Trips))
	for i := range g.Trips {
		trips = append(trips, toSaleDTO(&g.Trips[i]))
	}
	return dto.SupplierGroupDTO{
		SupplierName:  g.SupplierName,
		Trips:         trips,
		TotalBags:     g.TotalBags,
		TotalRevenue:  g.TotalRevenue,
		TotalLeakages: g.TotalLeakages,
		IsClosed:      g.IsClosed,
	}
}

func toSupplierCloseDTO(sc *entity.SupplierDayClose) dto.SupplierCloseDTO {
	return dto.SupplierCloseDTO{
		SupplierName:       sc.SupplierName,
		Date:               sc.Date.Format(dateLayout),
		RemainingBags:      sc.RemainingBags,
		AdditionalLeakages: sc.AdditionalLeakages,
		Deduction:          sc.Deduction,
		ClosedAt:           sc.ClosedAt,
	}
}

func toFactoryCloseDTO(fc *entity.FactoryDayClose) dto.FactoryCloseDTO {
	return dto.FactoryCloseDTO{
		Date:              fc.Date.Format(dateLayout),
		TotalBags:         fc.TotalBags,
		TotalRevenue:      fc.TotalRevenue,
		TotalTransactions: fc.TotalTransactions,
		ClosedAt:          fc.ClosedAt,
	}
}

func toDaySummaryDTO(s *entity.SalesDaySummary) dto.DaySummaryDTO {
	return dto.DaySummaryDTO{
		Date:              s.Date.Format(dateLayout),
		TotalBags:         s.TotalBags,
		TotalRevenue:      s.TotalRevenue,
		TotalLeakages:     s.TotalLeakages,
		TotalBagsReturned: s.TotalBagsReturned,
		Transactions:      s.Transactions,
		FactoryClosed:     s.FactoryClosed,
	}
}
