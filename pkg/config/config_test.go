package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("ALERTS_LIMIT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Alerts.Limit)
	assert.Equal(t, 7, cfg.Alerts.RecentDays)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_DemoModeFuerzaDemo(t *testing.T) {
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("DEMO_MODE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.SourceDemo, cfg.Data.EffectiveSource())
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("DATA_SOURCE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/stock.db")
	t.Setenv("ALERTS_LIMIT", "12")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.SourceSQLite, cfg.Data.EffectiveSource())
	assert.Equal(t, "/tmp/stock.db", cfg.Data.SQLitePath)
	assert.Equal(t, 12, cfg.Alerts.Limit)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_OrigenInvalido(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mongodb")
	t.Setenv("DEMO_MODE", "false")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "stock", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/stock?sslmode=require", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
