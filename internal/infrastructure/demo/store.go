package demo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var (
	_ repository.InventorySnapshotSource = (*Store)(nil)
	_ repository.ItemCounter             = (*Store)(nil)
	_ repository.TransactionRepository   = (*Store)(nil)
	_ repository.ProfileRepository       = (*Store)(nil)
)

// Store fuente en memoria sobre un Dataset. Los perfiles registrados viven mientras dure el proceso.
type Store struct {
	mu sync.RWMutex
	ds *repository.Dataset
}

// NewStore carga los fixtures embebidos resolviendo fechas contra now.
func NewStore(now time.Time) (*Store, error) {
	ds, err := LoadDataset(now)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDataset(ds), nil
}

// NewStoreFromDataset envuelve un Dataset ya construido.
func NewStoreFromDataset(ds *repository.Dataset) *Store {
	return &Store{ds: ds}
}

// LoadSnapshot arma el snapshot desde los datos en memoria.
func (s *Store) LoadSnapshot(ctx context.Context) (*repository.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Snapshot(), nil
}

// CountActive cuenta los artículos activos.
func (s *Store) CountActive(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.ds.Items {
		if it.IsActive {
			n++
		}
	}
	return n, nil
}

// CountSince cuenta los asientos con CreatedAt >= since.
func (s *Store) CountSince(ctx context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, t := range s.ds.Transactions {
		if !t.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// ListRecent devuelve los últimos asientos con nombres resueltos, más reciente primero.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*entity.InventoryTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make(map[string]entity.Item, len(s.ds.Items))
	for _, it := range s.ds.Items {
		items[it.ID] = it
	}
	locations := make(map[string]string, len(s.ds.Locations))
	for _, l := range s.ds.Locations {
		locations[l.ID] = l.Name
	}
	people := make(map[string]string, len(s.ds.Profiles))
	for _, p := range s.ds.Profiles {
		people[p.ID] = p.FullName
	}

	list := make([]*entity.InventoryTransaction, 0, len(s.ds.Transactions))
	for _, t := range s.ds.Transactions {
		t := t
		t.ItemName = items[t.ItemID].Name
		t.ItemSKU = items[t.ItemID].SKU
		t.LocationName = locations[t.LocationID]
		t.CreatedByName = people[t.CreatedBy]
		list = append(list, &t)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// FindByEmail busca sin distinguir mayúsculas; nil, nil si no existe.
func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.ds.Profiles {
		if strings.EqualFold(p.Email, email) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// Create agrega un perfil en memoria.
func (s *Store) Create(ctx context.Context, profile *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.ds.Profiles {
		if strings.EqualFold(p.Email, profile.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	s.ds.Profiles = append(s.ds.Profiles, *profile)
	return nil
}
