package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockwatch-api/internal/application/analytics"
	"github.com/jhoicas/stockwatch-api/internal/application/auth"
	appstock "github.com/jhoicas/stockwatch-api/internal/application/stock"
	"github.com/jhoicas/stockwatch-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StockUC     *appstock.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	viewer := RequireRole(rbac.RoleViewer)
	manager := RequireRole(rbac.RoleManager)

	protected.Get("/navigation", viewer, Navigation)

	// Stock
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/levels", viewer, stockHandler.Levels)
	stock.Get("/alerts", viewer, stockHandler.Alerts)
	stock.Get("/alerts/report.pdf", manager, stockHandler.AlertsReportPDF)
	stock.Get("/expired", viewer, stockHandler.Expired)
	stock.Get("/value", manager, stockHandler.Value)

	// Catálogo (mismos roles que el menú lateral)
	protected.Get("/items", viewer, stockHandler.Items)
	protected.Get("/locations", manager, stockHandler.Locations)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", viewer, dashboardHandler.GetStats)
	dashboard.Get("/activity", viewer, dashboardHandler.RecentActivity)
}
