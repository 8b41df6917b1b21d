package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

// theme estilos del reporte. Los colores siguen los badges del panel web.
type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Box      lipgloss.Style
	Header   lipgloss.Style
	Badges   map[stockstatus.Status]lipgloss.Style
}

func newTheme() *theme {
	badge := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(bg)).
			Bold(true).
			Padding(0, 1)
	}
	return &theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DD3FC")).Padding(0, 1),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB")).MarginTop(1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Badges: map[stockstatus.Status]lipgloss.Style{
			stockstatus.StatusNormal:   badge("#15803D"),
			stockstatus.StatusLow:      badge("#B45309"),
			stockstatus.StatusCritical: badge("#B91C1C"),
			stockstatus.StatusExpired:  badge("#6D28D9"),
		},
	}
}

func (t *theme) badge(status string) string {
	s := stockstatus.Status(status)
	style, ok := t.Badges[s]
	if !ok {
		style = lipgloss.NewStyle().Padding(0, 1)
	}
	return style.Render(s.Label())
}

// column celda de ancho fijo.
type column struct {
	title string
	width int
	align lipgloss.Position
}

func (t *theme) table(cols []column, rows [][]string) string {
	cell := func(c column, v string) string {
		return lipgloss.NewStyle().Width(c.width).MaxWidth(c.width).Align(c.align).Render(v)
	}
	lines := make([]string, 0, len(rows)+1)

	head := make([]string, len(cols))
	for i, c := range cols {
		head[i] = t.Header.Render(cell(c, c.title))
	}
	lines = append(lines, strings.Join(head, " "))

	for _, r := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			v := ""
			if i < len(r) {
				v = r[i]
			}
			cells[i] = cell(c, v)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// report datos ya calculados por el caso de uso de stock.
type report struct {
	Source      string
	GeneratedAt time.Time
	Counts      dto.StatusCountsDTO
	Alerts      *dto.LowStockAlertsResponse
	Expired     *dto.ExpiredStockResponse
	Value       *dto.InventoryValueDTO
}

func render(w io.Writer, t *theme, r report) error {
	var sections []string

	sections = append(sections, t.Title.Render("Stockwatch · estado del inventario"))
	sections = append(sections, t.Label.Render(fmt.Sprintf("origen %s · %s", r.Source, r.GeneratedAt.Format("2006-01-02 15:04"))))

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Badges[stockstatus.StatusNormal].Render(fmt.Sprintf("%s %d", stockstatus.StatusNormal.Label(), r.Counts.Normal)), " ",
		t.Badges[stockstatus.StatusLow].Render(fmt.Sprintf("%s %d", stockstatus.StatusLow.Label(), r.Counts.Low)), " ",
		t.Badges[stockstatus.StatusCritical].Render(fmt.Sprintf("%s %d", stockstatus.StatusCritical.Label(), r.Counts.Critical)), " ",
		t.Badges[stockstatus.StatusExpired].Render(fmt.Sprintf("%s %d", stockstatus.StatusExpired.Label(), r.Counts.Expired)),
	)
	value := fmt.Sprintf("%s %s", t.Label.Render("Valor del inventario:"), r.Value.TotalValue.StringFixed(2))
	if r.Value.UnresolvedRecords > 0 {
		value += t.Muted.Render(fmt.Sprintf("  (%d registros sin artículo excluidos)", r.Value.UnresolvedRecords))
	}
	sections = append(sections, t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, summary, value)))

	sections = append(sections, t.Subtitle.Render(fmt.Sprintf("Stock bajo (%d de %d)", len(r.Alerts.Alerts), r.Alerts.Total)))
	if len(r.Alerts.Alerts) == 0 {
		sections = append(sections, t.Muted.Render("sin alertas"))
	} else {
		rows := make([][]string, 0, len(r.Alerts.Alerts))
		for _, a := range r.Alerts.Alerts {
			supplier := "-"
			if a.PreferredSupplierName != nil {
				supplier = *a.PreferredSupplierName
			}
			rows = append(rows, []string{
				a.SKU, a.ItemName, a.LocationName,
				a.CurrentStock.String(), a.ReorderPoint.String(), a.Deficit.String(),
				t.badge(a.Status), supplier,
			})
		}
		sections = append(sections, t.table([]column{
			{"SKU", 10, lipgloss.Left},
			{"Artículo", 22, lipgloss.Left},
			{"Ubicación", 16, lipgloss.Left},
			{"Stock", 8, lipgloss.Right},
			{"Reorden", 8, lipgloss.Right},
			{"Déficit", 8, lipgloss.Right},
			{"Estado", 10, lipgloss.Left},
			{"Proveedor", 24, lipgloss.Left},
		}, rows))
	}

	sections = append(sections, t.Subtitle.Render(fmt.Sprintf("Vencidos (%d)", len(r.Expired.Entries))))
	if len(r.Expired.Entries) == 0 {
		sections = append(sections, t.Muted.Render("sin lotes vencidos"))
	} else {
		rows := make([][]string, 0, len(r.Expired.Entries))
		for _, e := range r.Expired.Entries {
			rows = append(rows, []string{
				e.SKU, e.ItemName, e.LocationName, e.BatchNumber,
				e.Quantity.String(), e.ExpiryDate.Format("2006-01-02"),
			})
		}
		sections = append(sections, t.table([]column{
			{"SKU", 10, lipgloss.Left},
			{"Artículo", 22, lipgloss.Left},
			{"Ubicación", 16, lipgloss.Left},
			{"Lote", 10, lipgloss.Left},
			{"Cantidad", 8, lipgloss.Right},
			{"Venció", 10, lipgloss.Left},
		}, rows))
	}

	if n := len(r.Alerts.Missing) + len(r.Expired.Missing); n > 0 {
		sections = append(sections, t.Muted.Render(fmt.Sprintf("%d registros omitidos por referencias faltantes", n)))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}
