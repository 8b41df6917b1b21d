// stockreport imprime en la terminal el estado del inventario: conteos por estado,
// alertas de stock bajo, lotes vencidos y valor al costo.
//
// Uso: go run ./cmd/stockreport [-source demo|sqlite|postgres] [-limit 20]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	appstock "github.com/jhoicas/stockwatch-api/internal/application/stock"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/datasource"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

func main() {
	source := flag.String("source", "", "origen de datos (sobrescribe DATA_SOURCE)")
	limit := flag.Int("limit", 20, "máximo de alertas a listar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	overrideSource(cfg, *source)

	// Los avisos van a stderr para no mezclarse con el reporte.
	log := logger.New(logger.Config{Env: "development", Level: "warn", Out: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src, err := datasource.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir origen de datos: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	uc := appstock.NewUseCase(src.Snapshots, nil, log, *limit)
	r, err := collect(ctx, uc, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Calcular reporte: %v\n", err)
		os.Exit(1)
	}
	r.Source = src.Kind

	if err := render(os.Stdout, newTheme(), r); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir reporte: %v\n", err)
		os.Exit(1)
	}
}

// overrideSource aplica -source. El flag gana también sobre DEMO_MODE.
func overrideSource(cfg *config.Config, source string) {
	if source == "" {
		return
	}
	cfg.Data.Source = source
	cfg.Data.DemoMode = false
}

// collect ejecuta las vistas del caso de uso sobre el mismo reloj.
func collect(ctx context.Context, uc *appstock.UseCase, limit int) (report, error) {
	now := time.Now()
	uc.WithClock(func() time.Time { return now })

	levels, err := uc.ListStockLevels(ctx, dto.StockLevelFilter{})
	if err != nil {
		return report{}, err
	}
	alerts, err := uc.LowStockAlerts(ctx, limit)
	if err != nil {
		return report{}, err
	}
	expired, err := uc.ExpiredStock(ctx)
	if err != nil {
		return report{}, err
	}
	value, err := uc.InventoryValue(ctx)
	if err != nil {
		return report{}, err
	}
	return report{
		GeneratedAt: now,
		Counts:      levels.Counts,
		Alerts:      alerts,
		Expired:     expired,
		Value:       value,
	}, nil
}
