package stock

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

// ListItems catálogo de artículos ordenado por nombre, con el stock sumado de todas sus ubicaciones.
// Solo se consideran registros cuyo artículo y ubicación existen.
func (uc *UseCase) ListItems(ctx context.Context, filter dto.ItemFilter) (*dto.ItemsResponse, error) {
	snap, err := uc.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock: cargar snapshot: %w", err)
	}
	now := uc.now()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	byItem := make(map[string]*dto.ItemDTO, len(snap.Items))
	for id, ref := range snap.Items {
		if filter.ActiveOnly && !ref.IsActive {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(ref.Name), search) &&
			!strings.Contains(strings.ToLower(ref.SKU), search) {
			continue
		}
		byItem[id] = &dto.ItemDTO{
			ID:                    id,
			SKU:                   ref.SKU,
			Name:                  ref.Name,
			CostPrice:             ref.CostPrice,
			ReorderPoint:          ref.ReorderPoint,
			IsActive:              ref.IsActive,
			PreferredSupplierName: ref.PreferredSupplierName,
			TotalStock:            decimal.Zero,
		}
	}
	for _, rec := range snap.Records {
		it, ok := byItem[rec.ItemID]
		if !ok {
			continue
		}
		if _, ok := snap.Locations[rec.LocationID]; !ok {
			continue
		}
		it.TotalStock = it.TotalStock.Add(rec.Quantity)
		it.Records++
		if stockstatus.Classify(rec, now).NeedsReorder() {
			it.Alerts++
		}
	}

	resp := &dto.ItemsResponse{Items: make([]dto.ItemDTO, 0, len(byItem))}
	for _, it := range byItem {
		resp.Items = append(resp.Items, *it)
	}
	sort.Slice(resp.Items, func(i, j int) bool {
		a, b := resp.Items[i], resp.Items[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	resp.Total = len(resp.Items)
	return resp, nil
}

// ListLocations ubicaciones ordenadas por nombre con sus conteos y valor al costo.
// Las ubicaciones sin registros aparecen con ceros.
func (uc *UseCase) ListLocations(ctx context.Context) (*dto.LocationsResponse, error) {
	snap, err := uc.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock: cargar snapshot: %w", err)
	}
	now := uc.now()

	records := make(map[string][]entity.InventoryRecord, len(snap.Locations))
	for _, rec := range snap.Records {
		if _, ok := snap.Items[rec.ItemID]; !ok {
			continue
		}
		records[rec.LocationID] = append(records[rec.LocationID], rec)
	}

	resp := &dto.LocationsResponse{Locations: make([]dto.LocationDTO, 0, len(snap.Locations))}
	for id, ref := range snap.Locations {
		loc := dto.LocationDTO{ID: id, Name: ref.Name, Records: len(records[id])}
		counts := stockstatus.CountByStatus(records[id], now)
		loc.Alerts = counts.Low + counts.Critical
		loc.Expired = counts.Expired
		loc.Value = stockstatus.AggregateInventoryValue(records[id], snap.Items).Total.Round(2)
		resp.Locations = append(resp.Locations, loc)
	}
	sort.Slice(resp.Locations, func(i, j int) bool {
		a, b := resp.Locations[i], resp.Locations[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return resp, nil
}
