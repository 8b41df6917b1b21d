package demo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/demo"
)

var now = time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *demo.Store {
	t.Helper()
	s, err := demo.NewStore(now)
	require.NoError(t, err)
	return s
}

// ─── Snapshot y evaluador ────────────────────────────────────────────────────

func TestStore_SnapshotCompleto(t *testing.T) {
	snap, err := newStore(t).LoadSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Records, 13)
	assert.Len(t, snap.Items, 8)
	assert.Len(t, snap.Locations, 5)

	counts := stockstatus.CountByStatus(snap.Records, now)
	assert.Equal(t, stockstatus.StatusCounts{Normal: 4, Low: 6, Critical: 2, Expired: 1}, counts)
}

func TestStore_AlertasOrdenadas(t *testing.T) {
	snap, err := newStore(t).LoadSnapshot(context.Background())
	require.NoError(t, err)

	report := stockstatus.BuildLowStockAlerts(snap.Records, snap.Items, snap.Locations, now)
	assert.Empty(t, report.Missing, "los fixtures no tienen referencias rotas")

	var got []string
	for _, a := range report.Alerts {
		got = append(got, a.ItemID+"@"+a.LocationID)
	}
	assert.Equal(t, []string{
		"vasos-plasticos@bar-principal",
		"cerveza-nacional@bar-principal",
		"ginebra@bodega-bebidas",
		"limones@bar-principal",
		"ginebra@bar-principal",
		"ron-blanco@bar-principal",
		"hierbabuena@cocina",
		"hielo@bar-principal",
	}, got)

	require.NotNil(t, report.Alerts[0].PreferredSupplierName)
	assert.Equal(t, "Empaques y Desechables SAS", *report.Alerts[0].PreferredSupplierName)
	assert.Nil(t, report.Alerts[7].PreferredSupplierName, "el hielo no tiene proveedor")
}

func TestStore_ValorInventario(t *testing.T) {
	snap, err := newStore(t).LoadSnapshot(context.Background())
	require.NoError(t, err)

	sum := stockstatus.AggregateInventoryValue(snap.Records, snap.Items)
	assert.True(t, sum.Total.Equal(decimal.RequireFromString("1077.55")), "total: %s", sum.Total)
	assert.Equal(t, 13, sum.Counted)
	assert.Zero(t, sum.Unresolved)
}

func TestStore_FechasRelativas(t *testing.T) {
	snap, err := newStore(t).LoadSnapshot(context.Background())
	require.NoError(t, err)

	expired := stockstatus.BuildExpiredView(snap.Records, snap.Items, snap.Locations, now)
	require.Len(t, expired.Entries, 1)
	assert.Equal(t, "limones", expired.Entries[0].ItemID)
	assert.True(t, expired.Entries[0].ExpiryDate.Equal(now.AddDate(0, 0, -3)))
}

// ─── Libro de transacciones ──────────────────────────────────────────────────

func TestStore_Transacciones(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	n, err := s.CountSince(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	list, err := s.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "tx-01", list[0].ID)
	assert.Equal(t, "Ron Blanco", list[0].ItemName)
	assert.Equal(t, "Bodega Bebidas", list[0].LocationName)
	assert.Equal(t, "Demo Admin", list[0].CreatedByName)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))

	active, err := s.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, active, "el jarabe está inactivo")
}

// ─── Perfiles ────────────────────────────────────────────────────────────────

func TestStore_AdminDemo(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	admin, err := s.FindByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	err = s.Create(ctx, &entity.Profile{ID: "x", Email: "admin@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	require.NoError(t, s.Create(ctx, &entity.Profile{ID: "u-2", Email: "nuevo@example.com", Role: "viewer"}))
	found, err := s.FindByEmail(ctx, "nuevo@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u-2", found.ID)
}
