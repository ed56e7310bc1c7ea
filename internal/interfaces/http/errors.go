package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aquabolsa-api/internal/application/dto"
	"github.com/jhoicas/aquabolsa-api/internal/domain"
)

// domainErrorResponse mapea los errores sentinela del dominio a respuestas
// HTTP. El mensaje conserva el detalle del error (p. ej. el disponible real
// en stock insuficiente).
func domainErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrChannelClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHANNEL_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
