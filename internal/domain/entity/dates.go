package entity

import "time"

// DateOf trunca un instante a su fecha calendario (00:00 hora local).
// Todas las agregaciones "de hoy" comparan fechas con esta normalización;
// no existe una entidad "día de negocio" persistida.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay indica si dos instantes caen en la misma fecha calendario local.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
