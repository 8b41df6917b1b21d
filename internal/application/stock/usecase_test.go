package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/stock"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakeSource struct {
	snap  *repository.Snapshot
	err   error
	calls int
}

func (f *fakeSource) LoadSnapshot(context.Context) (*repository.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

type fakeReports struct {
	got stock.LowStockReport
}

func (f *fakeReports) GenerateLowStockReport(_ context.Context, r stock.LowStockReport) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

var now = time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixture() *repository.Snapshot {
	yesterday := now.Add(-24 * time.Hour)
	nextMonth := now.AddDate(0, 1, 0)
	items := []entity.Item{
		{ID: "ron", Name: "Ron Blanco", SKU: "RUM-001", ReorderPoint: d("10"), CostPrice: d("12.50"), PreferredSupplierID: "s1"},
		{ID: "hielo", Name: "Hielo", SKU: "ICE-001", ReorderPoint: d("20"), CostPrice: d("1.80")},
		{ID: "limon", Name: "Limones", SKU: "LIME-001", ReorderPoint: d("5"), CostPrice: d("2.35")},
		{ID: "cerveza", Name: "Cerveza", SKU: "BEER-001", ReorderPoint: d("50"), CostPrice: d("1.10")},
	}
	locations := []entity.Location{{ID: "bar", Name: "Bar"}, {ID: "bodega", Name: "Bodega"}}
	suppliers := []entity.Supplier{{ID: "s1", Name: "Licores Andina"}}
	records := []entity.InventoryRecord{
		{ID: "1", ItemID: "ron", LocationID: "bar", Quantity: d("6"), ExpiryDate: &nextMonth},
		{ID: "2", ItemID: "ron", LocationID: "bodega", Quantity: d("48")},
		{ID: "3", ItemID: "hielo", LocationID: "bar", Quantity: d("0")},
		{ID: "4", ItemID: "limon", LocationID: "bodega", Quantity: d("25"), BatchNumber: "L1", ExpiryDate: &yesterday},
		{ID: "5", ItemID: "cerveza", LocationID: "bar", Quantity: d("24")},
		{ID: "6", ItemID: "fantasma", LocationID: "bar", Quantity: d("0")},
		{ID: "7", ItemID: "cerveza", LocationID: "terraza", Quantity: d("2")},
	}
	return repository.NewSnapshot(records, items, locations, suppliers)
}

func newUseCase(src *fakeSource, reports stock.LowStockReportGenerator) *stock.UseCase {
	return stock.NewUseCase(src, reports, nil, 0).WithClock(func() time.Time { return now })
}

// ─── ListStockLevels ─────────────────────────────────────────────────────────

func TestListStockLevels_SinFiltros(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)

	resp, err := uc.ListStockLevels(context.Background(), dto.StockLevelFilter{})
	require.NoError(t, err)

	assert.Len(t, resp.Levels, 5, "dos registros con referencias rotas se omiten")
	assert.Len(t, resp.Missing, 2)
	assert.Equal(t, dto.StatusCountsDTO{Normal: 1, Low: 3, Critical: 2, Expired: 1, Total: 7}, resp.Counts)

	byID := map[string]dto.StockLevelDTO{}
	for _, l := range resp.Levels {
		byID[l.ID] = l
	}
	assert.Equal(t, "low", byID["1"].Status)
	assert.Equal(t, "Stock bajo", byID["1"].StatusLabel)
	assert.Equal(t, "critical", byID["3"].Status)
	assert.Equal(t, "expired", byID["4"].Status)
	assert.Equal(t, "Bodega", byID["4"].LocationName)
}

func TestListStockLevels_Filtros(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter dto.StockLevelFilter
		ids    []string
	}{
		{"por estado", dto.StockLevelFilter{Status: "critical"}, []string{"3"}},
		{"estado en mayúsculas", dto.StockLevelFilter{Status: "EXPIRED"}, []string{"4"}},
		{"por ubicación", dto.StockLevelFilter{LocationID: "bodega"}, []string{"2", "4"}},
		{"búsqueda por nombre", dto.StockLevelFilter{Search: "ron"}, []string{"1", "2"}},
		{"búsqueda por SKU", dto.StockLevelFilter{Search: "ice-"}, []string{"3"}},
		{"combinados", dto.StockLevelFilter{LocationID: "bar", Status: "low"}, []string{"1", "5"}},
		{"all equivale a sin filtro", dto.StockLevelFilter{LocationID: "all", Status: "all"}, []string{"1", "2", "3", "4", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.ListStockLevels(ctx, tt.filter)
			require.NoError(t, err)
			var ids []string
			for _, l := range resp.Levels {
				ids = append(ids, l.ID)
			}
			assert.ElementsMatch(t, tt.ids, ids)
		})
	}
}

func TestListStockLevels_MissingPorUbicacion(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)
	ctx := context.Background()

	resp, err := uc.ListStockLevels(ctx, dto.StockLevelFilter{LocationID: "bodega"})
	require.NoError(t, err)
	assert.Empty(t, resp.Missing, "bodega no tiene registros con referencias rotas")

	resp, err = uc.ListStockLevels(ctx, dto.StockLevelFilter{LocationID: "bar"})
	require.NoError(t, err)
	require.Len(t, resp.Missing, 1)
	assert.Equal(t, "fantasma", resp.Missing[0].ItemID)
	assert.Equal(t, stockstatus.MissingItem, resp.Missing[0].Kind)

	resp, err = uc.ListStockLevels(ctx, dto.StockLevelFilter{LocationID: "terraza"})
	require.NoError(t, err)
	assert.Empty(t, resp.Levels)
	require.Len(t, resp.Missing, 1)
	assert.Equal(t, stockstatus.MissingLocation, resp.Missing[0].Kind)

	resp, err = uc.ListStockLevels(ctx, dto.StockLevelFilter{Status: "critical"})
	require.NoError(t, err)
	assert.Len(t, resp.Missing, 2, "estado y búsqueda no filtran los faltantes")
}

func TestListStockLevels_EstadoInvalido(t *testing.T) {
	src := &fakeSource{snap: fixture()}
	uc := newUseCase(src, nil)

	_, err := uc.ListStockLevels(context.Background(), dto.StockLevelFilter{Status: "agotado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, src.calls, "no se consulta la fuente con un filtro inválido")
}

// ─── LowStockAlerts ──────────────────────────────────────────────────────────

func TestLowStockAlerts_LimiteYTotal(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)

	resp, err := uc.LowStockAlerts(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total, "fantasma y cerveza@terraza se excluyen por referencias rotas")
	require.Len(t, resp.Alerts, 2)
	assert.Equal(t, "cerveza", resp.Alerts[0].ItemID, "24-50 = -26 es el mayor déficit")
	assert.Equal(t, "hielo", resp.Alerts[1].ItemID, "0-20 = -20")
	assert.Equal(t, "Crítico", resp.Alerts[1].StatusLabel)
	require.Len(t, resp.Missing, 2)
}

func TestLowStockAlerts_LimitePorDefecto(t *testing.T) {
	uc := stock.NewUseCase(&fakeSource{snap: fixture()}, nil, nil, 2).WithClock(func() time.Time { return now })

	resp, err := uc.LowStockAlerts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 2)
	assert.Equal(t, 3, resp.Total)
}

func TestLowStockAlerts_ProveedorPreferido(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)

	resp, err := uc.LowStockAlerts(context.Background(), 10)
	require.NoError(t, err)

	var ron *dto.LowStockAlertDTO
	for i := range resp.Alerts {
		if resp.Alerts[i].ItemID == "ron" {
			ron = &resp.Alerts[i]
		}
	}
	require.NotNil(t, ron)
	require.NotNil(t, ron.PreferredSupplierName)
	assert.Equal(t, "Licores Andina", *ron.PreferredSupplierName)
	assert.True(t, ron.Deficit.Equal(d("-4")))
}

func TestLowStockAlerts_ErrorDeFuente(t *testing.T) {
	uc := newUseCase(&fakeSource{err: errors.New("conexión rechazada")}, nil)
	_, err := uc.LowStockAlerts(context.Background(), 5)
	assert.ErrorContains(t, err, "conexión rechazada")
}

// ─── ExpiredStock / InventoryValue ───────────────────────────────────────────

func TestExpiredStock(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)

	resp, err := uc.ExpiredStock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "limon", resp.Entries[0].ItemID)
	assert.Equal(t, "L1", resp.Entries[0].BatchNumber)
	assert.Empty(t, resp.Missing)
}

func TestInventoryValue(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)

	resp, err := uc.InventoryValue(context.Background())
	require.NoError(t, err)

	// 6*12.50 + 48*12.50 + 0*1.80 + 25*2.35 + 24*1.10 + 2*1.10 = 75 + 600 + 0 + 58.75 + 26.40 + 2.20
	assert.True(t, resp.TotalValueExact.Equal(d("762.35")), "total: %s", resp.TotalValueExact)
	assert.True(t, resp.TotalValue.Equal(d("762.35")))
	assert.Equal(t, 6, resp.CountedRecords)
	assert.Equal(t, 1, resp.UnresolvedRecords)
	assert.Equal(t, []string{"fantasma"}, resp.UnresolvedItemIDs)
}

// ─── LowStockReportPDF ───────────────────────────────────────────────────────

func TestLowStockReportPDF_UsaTodasLasAlertas(t *testing.T) {
	reports := &fakeReports{}
	uc := stock.NewUseCase(&fakeSource{snap: fixture()}, reports, nil, 1).WithClock(func() time.Time { return now })

	out, err := uc.LowStockReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)

	assert.Len(t, reports.got.Alerts, 3, "el reporte ignora el límite del widget")
	assert.Equal(t, 2, reports.got.Missing)
	assert.Equal(t, now, reports.got.GeneratedAt)
	assert.Equal(t, stockstatus.StatusCounts{Normal: 1, Low: 3, Critical: 2, Expired: 1}, reports.got.Counts)
}

func TestLowStockReportPDF_SinGenerador(t *testing.T) {
	uc := newUseCase(&fakeSource{snap: fixture()}, nil)
	_, err := uc.LowStockReportPDF(context.Background())
	assert.Error(t, err)
}
