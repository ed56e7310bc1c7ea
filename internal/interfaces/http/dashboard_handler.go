package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aquabolsa-api/internal/application/dto"
	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/application/sales"
)

// DashboardHandler compone en una sola respuesta lo que consultan las
// pantallas de inicio.
type DashboardHandler struct {
	ledgerUC *ledger.UseCase
	salesUC  *sales.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(ledgerUC *ledger.UseCase, salesUC *sales.UseCase) *DashboardHandler {
	return &DashboardHandler{ledgerUC: ledgerUC, salesUC: salesUC}
}

// Summary devuelve saldo, desglose de hoy, grupos de proveedores y el
// agregado de ventas del día.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	balance, err := h.ledgerUC.CurrentBalance(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	breakdown, err := h.ledgerUC.TodayBreakdown(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	groups, err := h.salesUC.TodaySupplierGroups(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}
	summary, err := h.salesUC.TodaySummary(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}

	groupDTOs := make([]dto.SupplierGroupDTO, 0, len(groups))
	for _, g := range groups {
		groupDTOs = append(groupDTOs, toSupplierGroupDTO(g))
	}
	return c.JSON(dto.DashboardSummaryDTO{
		Balance:        balance,
		Breakdown:      toBreakdownResponse(breakdown),
		SupplierGroups: groupDTOs,
		Sales:          toDaySummaryDTO(summary),
	})
}
