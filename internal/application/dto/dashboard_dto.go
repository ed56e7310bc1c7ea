package dto

// DashboardSummaryDTO reúne en una sola respuesta lo que consultan las
// pantallas de inicio: saldo disponible, desglose de entradas de hoy,
// grupos de proveedores y agregado de ventas del día.
type DashboardSummaryDTO struct {
	Balance        int                `json:"balance"`
	Breakdown      BreakdownResponse  `json:"breakdown"`
	SupplierGroups []SupplierGroupDTO `json:"supplier_groups"`
	Sales          DaySummaryDTO      `json:"sales"`
}
