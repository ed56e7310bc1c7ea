package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrChannelClosed     = errors.New("canal de ventas cerrado por hoy")
)
