package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/sqlite"
)

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "stock.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func dataset() *repository.Dataset {
	expiry := base.Add(-24 * time.Hour)
	shelf := 5
	return &repository.Dataset{
		Suppliers: []entity.Supplier{{ID: "sup-1", Name: "Lácteos La Vaca", Currency: "USD", IsActive: true, CreatedAt: base, UpdatedAt: base}},
		Locations: []entity.Location{{ID: "cocina", Name: "Cocina", LocationType: entity.LocationTypeKitchen, IsActive: true, CreatedAt: base, UpdatedAt: base}},
		Items: []entity.Item{
			{ID: "leche", SKU: "LAC-001", Name: "Leche entera", UnitOfMeasure: "l", CostPrice: decimal.RequireFromString("1.15"),
				ReorderPoint: decimal.NewFromInt(12), PreferredSupplierID: "sup-1", IsActive: true, ShelfLifeDays: &shelf, CreatedAt: base, UpdatedAt: base},
			{ID: "sal", SKU: "SAL-001", Name: "Sal", UnitOfMeasure: "kg", CostPrice: decimal.RequireFromString("0.40"),
				ReorderPoint: decimal.NewFromInt(2), IsActive: false, CreatedAt: base, UpdatedAt: base},
		},
		Records: []entity.InventoryRecord{
			{ID: "r1", ItemID: "leche", LocationID: "cocina", Quantity: decimal.RequireFromString("8.5"), BatchNumber: "L-01", ExpiryDate: &expiry, UpdatedAt: base},
			{ID: "r2", ItemID: "sal", LocationID: "cocina", Quantity: decimal.NewFromInt(10), UpdatedAt: base},
		},
		Transactions: []entity.InventoryTransaction{
			{ID: "t1", ItemID: "leche", LocationID: "cocina", Type: entity.TransactionPurchase, QuantityChange: decimal.NewFromInt(10),
				QuantityAfter: decimal.NewFromInt(10), CreatedBy: "u-1", CreatedAt: base.Add(-10 * 24 * time.Hour)},
			{ID: "t2", ItemID: "leche", LocationID: "cocina", Type: entity.TransactionSale, QuantityChange: decimal.RequireFromString("-1.5"),
				QuantityBefore: decimal.NewFromInt(10), QuantityAfter: decimal.RequireFromString("8.5"), CreatedBy: "u-1", CreatedAt: base.Add(-time.Hour)},
		},
		Profiles: []entity.Profile{{ID: "u-1", Email: "chef@bistro.com", FullName: "Chef", Role: "operator", IsActive: true, CreatedAt: base, UpdatedAt: base}},
	}
}

func TestImportYLoadSnapshot(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, sqlite.Import(ctx, db, dataset()))

	snap, err := sqlite.NewSnapshotRepository(db).LoadSnapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snap.Records, 2)
	leche := snap.Records[0]
	assert.Equal(t, "leche", leche.ItemID)
	assert.True(t, leche.Quantity.Equal(decimal.RequireFromString("8.5")), "cantidad decimal sin pérdida")
	assert.True(t, leche.ReorderPoint.Equal(decimal.NewFromInt(12)), "punto de reorden tomado del artículo")
	require.NotNil(t, leche.ExpiryDate)
	assert.True(t, leche.ExpiryDate.Equal(base.Add(-24*time.Hour)))
	assert.Nil(t, snap.Records[1].ExpiryDate)

	require.Contains(t, snap.Items, "leche")
	require.NotNil(t, snap.Items["leche"].PreferredSupplierName)
	assert.Equal(t, "Lácteos La Vaca", *snap.Items["leche"].PreferredSupplierName)
	assert.True(t, snap.Items["leche"].CostPrice.Equal(decimal.RequireFromString("1.15")))
	assert.Equal(t, "Cocina", snap.Locations["cocina"].Name)
}

func TestImport_Idempotente(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, sqlite.Import(ctx, db, dataset()))
	require.NoError(t, sqlite.Import(ctx, db, dataset()))

	snap, err := sqlite.NewSnapshotRepository(db).LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 2)
}

func TestItemRepo_CountActive(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, sqlite.Import(ctx, db, dataset()))

	n, err := sqlite.NewItemRepository(db).CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTransactionRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, sqlite.Import(ctx, db, dataset()))
	repo := sqlite.NewTransactionRepository(db)

	n, err := repo.CountSince(ctx, base.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "solo el asiento de la última semana")

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t2", list[0].ID, "más reciente primero")
	assert.Equal(t, "Leche entera", list[0].ItemName)
	assert.Equal(t, "Cocina", list[0].LocationName)
	assert.Equal(t, "Chef", list[0].CreatedByName)
	assert.True(t, list[0].QuantityChange.Equal(decimal.RequireFromString("-1.5")))
}

func TestProfileRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := sqlite.NewProfileRepository(db)

	p := &entity.Profile{ID: "u-9", Email: "Ana@Bar.com", FullName: "Ana", Role: "viewer", PasswordHash: "hash", IsActive: true, CreatedAt: base, UpdatedAt: base}
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.FindByEmail(ctx, "ana@bar.com")
	require.NoError(t, err)
	require.NotNil(t, found, "email sin distinguir mayúsculas")
	assert.Equal(t, "u-9", found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.True(t, found.IsActive)

	dup := *p
	dup.ID = "u-10"
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrEmailAlreadyExists)

	missing, err := repo.FindByEmail(ctx, "nadie@bar.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
