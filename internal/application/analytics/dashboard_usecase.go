// Package analytics contiene los casos de uso de las tarjetas y widgets del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

const (
	defaultRecentDays    = 7  // ventana de "transacciones recientes"
	defaultActivityLimit = 10 // asientos en el widget de actividad
	maxActivityLimit     = 100
)

// DashboardUseCase arma las tarjetas del dashboard y la actividad reciente.
//
// Fuentes de datos: snapshot de inventario, conteo de artículos activos y libro de transacciones.
type DashboardUseCase struct {
	snapshots    repository.InventorySnapshotSource
	items        repository.ItemCounter
	transactions repository.TransactionRepository
	recentDays   int
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso. recentDays <= 0 usa 7 días.
func NewDashboardUseCase(
	snapshots repository.InventorySnapshotSource,
	items repository.ItemCounter,
	transactions repository.TransactionRepository,
	recentDays int,
) *DashboardUseCase {
	if recentDays <= 0 {
		recentDays = defaultRecentDays
	}
	return &DashboardUseCase{
		snapshots:    snapshots,
		items:        items,
		transactions: transactions,
		recentDays:   recentDays,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetStats construye el DashboardStatsDTO.
//
// Tres lecturas en paralelo:
//  1. LoadSnapshot          → LowStockItems, ExpiredItems, TotalValue
//  2. CountActive           → TotalItems
//  3. CountSince(now - N d) → RecentTransactions
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	since := now.AddDate(0, 0, -uc.recentDays)

	type snapshotResult struct {
		snap *repository.Snapshot
		err  error
	}
	type countResult struct {
		n   int
		err error
	}

	snapCh := make(chan snapshotResult, 1)
	itemsCh := make(chan countResult, 1)
	txCh := make(chan countResult, 1)

	go func() {
		snap, err := uc.snapshots.LoadSnapshot(ctx)
		snapCh <- snapshotResult{snap, err}
	}()
	go func() {
		n, err := uc.items.CountActive(ctx)
		itemsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.transactions.CountSince(ctx, since)
		txCh <- countResult{n, err}
	}()

	snap := <-snapCh
	items := <-itemsCh
	txs := <-txCh

	if snap.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot: %w", snap.err)
	}
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: artículos activos: %w", items.err)
	}
	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones recientes: %w", txs.err)
	}

	s := snap.snap
	alerts := stockstatus.BuildLowStockAlerts(s.Records, s.Items, s.Locations, now)
	expired := stockstatus.BuildExpiredView(s.Records, s.Items, s.Locations, now)
	value := stockstatus.AggregateInventoryValue(s.Records, s.Items)

	return &dto.DashboardStatsDTO{
		TotalItems:             items.n,
		LowStockItems:          len(alerts.Alerts),
		ExpiredItems:           len(expired.Entries),
		TotalValue:             value.Total.Round(2),
		UnresolvedValueRecords: value.Unresolved,
		RecentTransactions:     txs.n,
		RecentDays:             uc.recentDays,
	}, nil
}

// RecentActivity devuelve los últimos asientos del libro, más reciente primero.
// limit <= 0 usa 10; se acota a 100.
func (uc *DashboardUseCase) RecentActivity(ctx context.Context, limit int) ([]dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	list, err := uc.transactions.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", err)
	}

	out := make([]dto.ActivityDTO, 0, len(list))
	for _, t := range list {
		out = append(out, dto.ActivityDTO{
			ID:             t.ID,
			Type:           t.Type,
			QuantityChange: t.QuantityChange,
			ItemName:       t.ItemName,
			SKU:            t.ItemSKU,
			LocationName:   t.LocationName,
			UserName:       t.CreatedByName,
			Notes:          t.Notes,
			CreatedAt:      t.CreatedAt,
		})
	}
	return out, nil
}
