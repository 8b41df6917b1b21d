package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockwatch-api/internal/application/analytics"
	"github.com/jhoicas/stockwatch-api/internal/domain/rbac"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve las tarjetas del dashboard.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (total_items, low_stock_items, expired_items,
// total_value, recent_transactions). total_value viene redondeado a 2 decimales.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// RecentActivity últimos movimientos de inventario, más recientes primero.
// GET /api/dashboard/activity?limit=10
func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	list, err := h.uc.RecentActivity(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": list})
}

// Navigation menú lateral visible para el rol del token.
// GET /api/navigation
func Navigation(c *fiber.Ctx) error {
	role, _ := rbac.ParseRole(GetRole(c))
	return c.JSON(fiber.Map{
		"role":  role,
		"items": rbac.FilterNavigation(role),
	})
}
