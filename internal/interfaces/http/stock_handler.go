package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	appstock "github.com/jhoicas/stockwatch-api/internal/application/stock"
)

// StockHandler endpoints de niveles de stock, alertas, vencidos y valor de inventario.
type StockHandler struct {
	uc *appstock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appstock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Levels godoc
// @Summary      Niveles de stock
// @Description  Cada registro de inventario con su estado (normal, low, critical, expired).
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        location_id  query  string  false  "ubicación"
// @Param        status       query  string  false  "normal | low | critical | expired | all"
// @Param        q            query  string  false  "nombre o SKU"
// @Success      200  {object}  dto.StockLevelsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/levels [get]
func (h *StockHandler) Levels(c *fiber.Ctx) error {
	var filter dto.StockLevelFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListStockLevels(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de stock bajo
// @Description  Registros low o critical ordenados por déficit. total informa el conteo completo.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "máximo de alertas (default configurado)"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe ser positivo"})
	}
	out, err := h.uc.LowStockAlerts(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Expired godoc
// @Summary      Stock vencido
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ExpiredStockResponse
// @Router       /api/stock/expired [get]
func (h *StockHandler) Expired(c *fiber.Ctx) error {
	out, err := h.uc.ExpiredStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Value godoc
// @Summary      Valor del inventario
// @Description  Suma de cantidad por costo. Los registros sin artículo se excluyen y se cuentan aparte.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InventoryValueDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/value [get]
func (h *StockHandler) Value(c *fiber.Ctx) error {
	out, err := h.uc.InventoryValue(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AlertsReportPDF godoc
// @Summary      Reporte PDF de stock bajo
// @Tags         stock
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/report.pdf [get]
func (h *StockHandler) AlertsReportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.LowStockReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("stock-bajo-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// Items godoc
// @Summary      Catálogo de artículos
// @Description  Artículos con el stock sumado de todas sus ubicaciones.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        q            query  string  false  "nombre o SKU"
// @Param        active_only  query  bool    false  "solo artículos activos"
// @Success      200  {object}  dto.ItemsResponse
// @Router       /api/items [get]
func (h *StockHandler) Items(c *fiber.Ctx) error {
	var filter dto.ItemFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListItems(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Locations godoc
// @Summary      Ubicaciones
// @Description  Bodegas, barras y cocinas con sus alertas, vencidos y valor al costo.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LocationsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *StockHandler) Locations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
