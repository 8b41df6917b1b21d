// Package stock expone el estado del inventario: niveles por ubicación, alertas de stock bajo,
// lotes vencidos y valor al costo. Toda la lógica de clasificación vive en domain/stockstatus;
// aquí se carga el snapshot, se aplica el reloj y se arma la respuesta.
package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// DefaultAlertsLimit alertas que muestra el widget del dashboard si no se configura otro valor.
const DefaultAlertsLimit = 5

// UseCase casos de uso de lectura del inventario.
type UseCase struct {
	source      repository.InventorySnapshotSource
	reports     LowStockReportGenerator
	log         *logger.Logger
	now         func() time.Time
	alertsLimit int
}

// NewUseCase construye el caso de uso. reports puede ser nil si no se expone el PDF.
func NewUseCase(
	source repository.InventorySnapshotSource,
	reports LowStockReportGenerator,
	log *logger.Logger,
	alertsLimit int,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if alertsLimit <= 0 {
		alertsLimit = DefaultAlertsLimit
	}
	return &UseCase{
		source:      source,
		reports:     reports,
		log:         log.Component("stock"),
		now:         time.Now,
		alertsLimit: alertsLimit,
	}
}

// WithClock reemplaza el reloj (tests y reportes a una fecha fija).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// ListStockLevels devuelve cada registro con su estado. Status inválido -> domain.ErrInvalidInput.
// Missing respeta el filtro de ubicación; estado y búsqueda necesitan el artículo y no se aplican.
func (uc *UseCase) ListStockLevels(ctx context.Context, filter dto.StockLevelFilter) (*dto.StockLevelsResponse, error) {
	var wantStatus stockstatus.Status
	if s := strings.ToLower(strings.TrimSpace(filter.Status)); s != "" && s != "all" {
		parsed, ok := stockstatus.Parse(s)
		if !ok {
			return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, s)
		}
		wantStatus = parsed
	}
	locationID := strings.TrimSpace(filter.LocationID)
	if locationID == "all" {
		locationID = ""
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	snap, err := uc.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock: cargar snapshot: %w", err)
	}
	now := uc.now()

	resp := &dto.StockLevelsResponse{
		Levels:  []dto.StockLevelDTO{},
		Counts:  countsDTO(stockstatus.CountByStatus(snap.Records, now)),
		Missing: []dto.MissingReferenceDTO{},
	}
	for _, rec := range snap.Records {
		if locationID != "" && rec.LocationID != locationID {
			continue
		}
		item, okItem := snap.Items[rec.ItemID]
		loc, okLoc := snap.Locations[rec.LocationID]
		if !okItem || !okLoc {
			kind := stockstatus.MissingItem
			if okItem {
				kind = stockstatus.MissingLocation
			}
			resp.Missing = append(resp.Missing, dto.MissingReferenceDTO{
				ItemID: rec.ItemID, LocationID: rec.LocationID, BatchNumber: rec.BatchNumber, Kind: kind,
			})
			continue
		}

		status := stockstatus.Classify(rec, now)
		if wantStatus != "" && status != wantStatus {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.SKU), search) {
			continue
		}

		resp.Levels = append(resp.Levels, dto.StockLevelDTO{
			ID:               rec.ID,
			ItemID:           rec.ItemID,
			ItemName:         item.Name,
			SKU:              item.SKU,
			LocationID:       rec.LocationID,
			LocationName:     loc.Name,
			CurrentStock:     rec.Quantity,
			ReservedQuantity: rec.ReservedQuantity,
			ReorderPoint:     rec.ReorderPoint,
			BatchNumber:      rec.BatchNumber,
			ExpiryDate:       rec.ExpiryDate,
			Status:           string(status),
			StatusLabel:      status.Label(),
		})
	}
	uc.warnMissing("niveles", len(resp.Missing))
	return resp, nil
}

// LowStockAlerts devuelve las alertas más urgentes. limit <= 0 usa el límite configurado.
// Total siempre es la cantidad completa de alertas.
func (uc *UseCase) LowStockAlerts(ctx context.Context, limit int) (*dto.LowStockAlertsResponse, error) {
	if limit <= 0 {
		limit = uc.alertsLimit
	}
	report, _, err := uc.alertReport(ctx)
	if err != nil {
		return nil, err
	}

	alerts := report.Alerts
	total := len(alerts)
	if len(alerts) > limit {
		alerts = alerts[:limit]
	}
	resp := &dto.LowStockAlertsResponse{
		Alerts:  make([]dto.LowStockAlertDTO, 0, len(alerts)),
		Total:   total,
		Missing: missingDTOs(report.Missing),
	}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, alertDTO(a))
	}
	return resp, nil
}

// ExpiredStock devuelve los lotes vencidos, el más antiguo primero.
func (uc *UseCase) ExpiredStock(ctx context.Context) (*dto.ExpiredStockResponse, error) {
	snap, err := uc.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock: cargar snapshot: %w", err)
	}
	report := stockstatus.BuildExpiredView(snap.Records, snap.Items, snap.Locations, uc.now())
	uc.warnMissing("vencidos", len(report.Missing))

	resp := &dto.ExpiredStockResponse{
		Entries: make([]dto.ExpiredStockDTO, 0, len(report.Entries)),
		Missing: missingDTOs(report.Missing),
	}
	for _, e := range report.Entries {
		resp.Entries = append(resp.Entries, dto.ExpiredStockDTO{
			ItemID:       e.ItemID,
			ItemName:     e.ItemName,
			SKU:          e.SKU,
			LocationID:   e.LocationID,
			LocationName: e.LocationName,
			BatchNumber:  e.BatchNumber,
			Quantity:     e.Quantity,
			ExpiryDate:   e.ExpiryDate,
		})
	}
	return resp, nil
}

// InventoryValue valor total al costo. El redondeo a 2 decimales solo se aplica en la salida.
func (uc *UseCase) InventoryValue(ctx context.Context) (*dto.InventoryValueDTO, error) {
	snap, err := uc.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock: cargar snapshot: %w", err)
	}
	sum := stockstatus.AggregateInventoryValue(snap.Records, snap.Items)
	if sum.Unresolved > 0 {
		uc.log.Warn().
			Int("records", sum.Unresolved).
			Strs("item_ids", sum.UnresolvedItemIDs).
			Msg("registros sin artículo excluidos del valor de inventario")
	}

	ids := sum.UnresolvedItemIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.InventoryValueDTO{
		TotalValue:        sum.Total.Round(2),
		TotalValueExact:   sum.Total,
		CountedRecords:    sum.Counted,
		UnresolvedRecords: sum.Unresolved,
		UnresolvedItemIDs: ids,
	}, nil
}

// LowStockReportPDF renderiza todas las alertas (sin límite) con el generador configurado.
func (uc *UseCase) LowStockReportPDF(ctx context.Context) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("stock: generador de reportes no configurado")
	}
	report, counts, err := uc.alertReport(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.reports.GenerateLowStockReport(ctx, LowStockReport{
		Title:       "Reporte de stock bajo",
		GeneratedAt: uc.now(),
		Alerts:      report.Alerts,
		Counts:      counts,
		Missing:     len(report.Missing),
	})
	if err != nil {
		return nil, fmt.Errorf("stock: generar reporte: %w", err)
	}
	return out, nil
}

func (uc *UseCase) alertReport(ctx context.Context) (stockstatus.AlertReport, stockstatus.StatusCounts, error) {
	snap, err := uc.source.LoadSnapshot(ctx)
	if err != nil {
		return stockstatus.AlertReport{}, stockstatus.StatusCounts{}, fmt.Errorf("stock: cargar snapshot: %w", err)
	}
	now := uc.now()
	report := stockstatus.BuildLowStockAlerts(snap.Records, snap.Items, snap.Locations, now)
	uc.warnMissing("alertas", len(report.Missing))
	return report, stockstatus.CountByStatus(snap.Records, now), nil
}

func (uc *UseCase) warnMissing(view string, n int) {
	if n == 0 {
		return
	}
	uc.log.Warn().Str("view", view).Int("records", n).Msg("registros con artículo o ubicación inexistente omitidos")
}

// ── Mapeo a DTO ───────────────────────────────────────────────────────────────

func alertDTO(a stockstatus.LowStockAlert) dto.LowStockAlertDTO {
	return dto.LowStockAlertDTO{
		ItemID:                a.ItemID,
		ItemName:              a.ItemName,
		SKU:                   a.SKU,
		LocationID:            a.LocationID,
		LocationName:          a.LocationName,
		BatchNumber:           a.BatchNumber,
		CurrentStock:          a.Quantity,
		ReorderPoint:          a.ReorderPoint,
		Deficit:               a.Deficit,
		Status:                string(a.Status),
		StatusLabel:           a.Status.Label(),
		PreferredSupplierName: a.PreferredSupplierName,
	}
}

func missingDTOs(list []stockstatus.MissingReference) []dto.MissingReferenceDTO {
	out := make([]dto.MissingReferenceDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MissingReferenceDTO{
			ItemID: m.ItemID, LocationID: m.LocationID, BatchNumber: m.BatchNumber, Kind: m.Kind,
		})
	}
	return out
}

func countsDTO(c stockstatus.StatusCounts) dto.StatusCountsDTO {
	return dto.StatusCountsDTO{
		Normal:   c.Normal,
		Low:      c.Low,
		Critical: c.Critical,
		Expired:  c.Expired,
		Total:    c.Total(),
	}
}
