// Package pdf genera el reporte de stock bajo para compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título               │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Normal / Bajo / Crítico / Vencido                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | SKU | Ubicación | Lote | Cant | Reorden   │
//	│         | Déficit | Estado | Proveedor                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: registros omitidos por referencias inexistentes     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appstock "github.com/jhoicas/stockwatch-api/internal/application/stock"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorLow      = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appstock.LowStockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa stock.LowStockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockReport(_ context.Context, report appstock.LowStockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Counts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Alerts) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin artículos por debajo del punto de reorden.", props.Text{Size: 9, Top: 2, Color: colorGray}),
		)))
	}
	for _, a := range report.Alerts {
		m.AddRows(alertRow(a))
	}

	if report.Missing > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d registro(s) omitido(s) por artículo o ubicación inexistente.", report.Missing),
				props.Text{Size: 7, Top: 1, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report appstock.LowStockReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d artículo(s) para reponer", len(report.Alerts)), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(c stockstatus.StatusCounts) core.Row {
	cell := func(label string, n int, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5, Color: color,
			}),
		)
	}
	return row.New(12).Add(
		cell(stockstatus.StatusNormal.Label(), c.Normal, colorPrimary),
		cell(stockstatus.StatusLow.Label(), c.Low, colorLow),
		cell(stockstatus.StatusCritical.Label(), c.Critical, colorCritical),
		cell(stockstatus.StatusExpired.Label(), c.Expired, colorGray),
	)
}

// columnas: Artículo(3) SKU(1) Ubicación(2) Lote(1) Cant(1) Reorden(1) Déficit(1) Estado(1) Proveedor(1)
var columnSizes = []int{3, 1, 2, 1, 1, 1, 1, 1, 1}

func tableHeaderRow() core.Row {
	headers := []string{"Artículo", "SKU", "Ubicación", "Lote", "Cant.", "Reorden", "Déficit", "Estado", "Proveedor"}
	hdr := props.Text{Style: fontstyle.Bold, Size: 7, Color: colorWhite, Top: 1.5}
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		p := hdr
		if i >= 4 && i <= 6 {
			p.Align = align.Right
		}
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(h, p)))
	}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

func alertRow(a stockstatus.LowStockAlert) core.Row {
	base := props.Text{Size: 7, Top: 1.5}
	num := props.Text{Size: 7, Top: 1.5, Align: align.Right}

	statusProps := props.Text{Size: 7, Top: 1.5, Style: fontstyle.Bold, Color: colorLow}
	if a.Status == stockstatus.StatusCritical {
		statusProps.Color = colorCritical
	}

	supplier := "-"
	if a.PreferredSupplierName != nil {
		supplier = *a.PreferredSupplierName
	}

	return row.New(6).Add(
		col.New(columnSizes[0]).Add(text.New(a.ItemName, base)),
		col.New(columnSizes[1]).Add(text.New(a.SKU, base)),
		col.New(columnSizes[2]).Add(text.New(a.LocationName, base)),
		col.New(columnSizes[3]).Add(text.New(nonEmpty(a.BatchNumber, "-"), base)),
		col.New(columnSizes[4]).Add(text.New(a.Quantity.String(), num)),
		col.New(columnSizes[5]).Add(text.New(a.ReorderPoint.String(), num)),
		col.New(columnSizes[6]).Add(text.New(a.Deficit.String(), num)),
		col.New(columnSizes[7]).Add(text.New(a.Status.Label(), statusProps)),
		col.New(columnSizes[8]).Add(text.New(supplier, base)),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
