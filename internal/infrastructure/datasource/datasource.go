// Package datasource arma los puertos de lectura según DATA_SOURCE (postgres, sqlite o demo).
package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/demo"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// Sources puertos que consumen los casos de uso. Close libera la conexión subyacente.
type Sources struct {
	Kind         string
	Snapshots    repository.InventorySnapshotSource
	Items        repository.ItemCounter
	Transactions repository.TransactionRepository
	Profiles     repository.ProfileRepository
	close        func()
}

// Close libera pool o archivo; es seguro llamarlo más de una vez.
func (s *Sources) Close() {
	if s.close != nil {
		s.close()
		s.close = nil
	}
}

// Open abre el origen indicado por cfg.Data (DEMO_MODE tiene prioridad).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Sources, error) {
	if log == nil {
		log = logger.Nop()
	}
	kind := cfg.Data.EffectiveSource()
	switch kind {
	case config.SourceDemo:
		store, err := demo.NewStore(time.Now())
		if err != nil {
			return nil, err
		}
		log.Warn().Msg("modo demo: datos en memoria, los registros nuevos se pierden al reiniciar")
		return &Sources{
			Kind:      kind,
			Snapshots: store, Items: store, Transactions: store, Profiles: store,
		}, nil

	case config.SourceSQLite:
		db, err := sqlite.Open(ctx, cfg.Data.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Data.SQLitePath).Msg("SQLite listo")
		return fromSQLite(db), nil

	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("PostgreSQL listo")
		return &Sources{
			Kind:         kind,
			Snapshots:    postgres.NewSnapshotRepository(pool),
			Items:        postgres.NewItemRepository(pool),
			Transactions: postgres.NewTransactionRepository(pool),
			Profiles:     postgres.NewProfileRepository(pool),
			close:        pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("origen de datos desconocido: %q", kind)
	}
}

func fromSQLite(db *sql.DB) *Sources {
	return &Sources{
		Kind:         config.SourceSQLite,
		Snapshots:    sqlite.NewSnapshotRepository(db),
		Items:        sqlite.NewItemRepository(db),
		Transactions: sqlite.NewTransactionRepository(db),
		Profiles:     sqlite.NewProfileRepository(db),
		close:        func() { _ = db.Close() },
	}
}
