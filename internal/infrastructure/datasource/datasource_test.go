package datasource_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/infrastructure/datasource"
	"github.com/jhoicas/stockwatch-api/pkg/config"
)

func TestOpen_Demo(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: config.SourcePostgres, DemoMode: true}}

	src, err := datasource.Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, config.SourceDemo, src.Kind, "DEMO_MODE tiene prioridad sobre DATA_SOURCE")
	snap, err := src.Snapshots.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Records)

	profile, err := src.Profiles.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, profile)
}

func TestOpen_SQLiteVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "stock.db")
	cfg := &config.Config{Data: config.DataConfig{Source: config.SourceSQLite, SQLitePath: path}}

	src, err := datasource.Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, config.SourceSQLite, src.Kind)
	n, err := src.Items.CountActive(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "base recién migrada")

	src.Close()
	src.Close()
}

func TestOpen_OrigenDesconocido(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: "mongo"}}
	_, err := datasource.Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}
