package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterBatchRequest body para POST /api/production/batches. Con
// bags_produced en cero la cantidad se estima desde material_kg y
// material_grade (economy | standard | premium).
type RegisterBatchRequest struct {
	MaterialKg    decimal.Decimal `json:"material_kg"`
	MaterialGrade string          `json:"material_grade"`
	BagsProduced  int             `json:"bags_produced"`
	AssignedTo    string          `json:"assigned_to,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ProductionBatchDTO representa un lote en respuestas.
type ProductionBatchDTO struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	MaterialKg    decimal.Decimal `json:"material_kg"`
	MaterialGrade string          `json:"material_grade"`
	BagsProduced  int             `json:"bags_produced"`
	AssignedTo    string          `json:"assigned_to,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}
