package stock

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

// LowStockReport datos que recibe el generador del reporte de stock bajo.
type LowStockReport struct {
	Title       string
	GeneratedAt time.Time
	Alerts      []stockstatus.LowStockAlert
	Counts      stockstatus.StatusCounts
	Missing     int // registros omitidos por referencias inexistentes
}

// LowStockReportGenerator puerto de salida para renderizar el reporte (PDF u otro formato).
type LowStockReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, report LowStockReport) ([]byte, error)
}
