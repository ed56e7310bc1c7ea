package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aquabolsa-api/internal/application/dto"
	"github.com/jhoicas/aquabolsa-api/internal/application/production"
	"github.com/jhoicas/aquabolsa-api/internal/domain/entity"
)

// ProductionHandler maneja las peticiones HTTP de lotes de producción.
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// RegisterBatch registra un lote de producción y la entrada de stock
// correspondiente. Con bags_produced en cero la cantidad se estima desde
// material_kg y material_grade.
func (h *ProductionHandler) RegisterBatch(c *fiber.Ctx) error {
	var in dto.RegisterBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.RegisterBatch(c.Context(), production.RegisterBatchInput{
		MaterialKg:    in.MaterialKg,
		MaterialGrade: in.MaterialGrade,
		BagsProduced:  in.BagsProduced,
		AssignedTo:    in.AssignedTo,
		Notes:         in.Notes,
		CreatedBy:     GetUserID(c),
	})
	if err != nil {
		return domainErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchDTO(batch))
}

// ListBatches devuelve el historial de lotes.
func (h *ProductionHandler) ListBatches(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	batches, err := h.uc.ListBatches(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainErrorResponse(c, err)
	}
	out := make([]dto.ProductionBatchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchDTO(b))
	}
	return c.JSON(fiber.Map{"total": len(out), "batches": out})
}

func toBatchDTO(b *entity.ProductionBatch) dto.ProductionBatchDTO {
	return dto.ProductionBatchDTO{
		ID:            b.ID,
		Timestamp:     b.Timestamp,
		MaterialKg:    b.MaterialKg,
		MaterialGrade: b.MaterialGrade,
		BagsProduced:  b.BagsProduced,
		AssignedTo:    b.AssignedTo,
		Notes:         b.Notes,
	}
}
