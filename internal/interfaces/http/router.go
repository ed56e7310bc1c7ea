package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aquabolsa-api/internal/application/ledger"
	"github.com/jhoicas/aquabolsa-api/internal/application/production"
	"github.com/jhoicas/aquabolsa-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC     *ledger.UseCase
	SalesUC      *sales.UseCase
	ProductionUC *production.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo va bajo /api con Bearer Token;
// las mutaciones exigen además el rol del área (admin siempre pasa).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Libro de stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stock.Post("/additions", RequireRole(RoleProduccion), stockHandler.AddStock)
	stock.Post("/removals", RequireRole(), stockHandler.RemoveStock)
	stock.Post("/manual-entries", RequireRole(RoleProduccion), stockHandler.RegisterManualEntry)
	stock.Get("/manual-entries", stockHandler.ListManualEntries)
	stock.Get("/balance", stockHandler.GetBalance)
	stock.Get("/breakdown", stockHandler.GetBreakdown)
	stock.Get("/movements", stockHandler.ListMovements)

	// Motor de ventas
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", RequireRole(RoleVentas), salesHandler.RecordSale)
	salesGroup.Get("/history", salesHandler.History)
	salesGroup.Get("/summary", salesHandler.TodaySummary)
	salesGroup.Get("/suppliers/today", salesHandler.TodaySupplierGroups)
	salesGroup.Post("/suppliers/close", RequireRole(RoleVentas), salesHandler.CloseSupplierDay)
	salesGroup.Post("/factory/close", RequireRole(RoleVentas), salesHandler.CloseFactoryDay)

	// Producción
	prodGroup := api.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	prodGroup.Post("/batches", RequireRole(RoleProduccion), productionHandler.RegisterBatch)
	prodGroup.Get("/batches", productionHandler.ListBatches)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.LedgerUC, deps.SalesUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
