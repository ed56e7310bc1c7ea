// Package inventory contiene servicios de dominio puros del stock de bolsas.
package inventory

import "github.com/shopspring/decimal"

// Calidades de material (film LDPE) reconocidas por la tabla de rendimiento.
const (
	GradeEconomy  = "economy"
	GradeStandard = "standard"
	GradePremium  = "premium"
)

// bagsPerKg tabla de rendimiento: bolsas terminadas por kilogramo de film
// según la calidad del material. Valores calibrados con los conteos de
// planta; un material de mejor calidad produce menos descarte.
var bagsPerKg = map[string]decimal.Decimal{
	GradeEconomy:  decimal.NewFromInt(24),
	GradeStandard: decimal.NewFromInt(28),
	GradePremium:  decimal.NewFromInt(31),
}

// EstimateBags estima la cantidad de bolsas producibles a partir de los
// kilogramos de material y su calidad (servicio de dominio).
// Calidad desconocida usa el rendimiento de "standard"; el resultado se
// trunca hacia abajo y nunca es negativo.
func EstimateBags(materialKg decimal.Decimal, grade string) int {
	if materialKg.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	rate, ok := bagsPerKg[grade]
	if !ok {
		rate = bagsPerKg[GradeStandard]
	}
	return int(materialKg.Mul(rate).IntPart())
}
