package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/stockwatch-api/internal/application/analytics"
	"github.com/jhoicas/stockwatch-api/internal/application/auth"
	appstock "github.com/jhoicas/stockwatch-api/internal/application/stock"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/datasource"
	infrapdf "github.com/jhoicas/stockwatch-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/stockwatch-api/internal/interfaces/http"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.Data.EffectiveSource()).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	src, err := datasource.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("data_source", cfg.Data.EffectiveSource()).Msg("abrir origen de datos")
	}
	defer src.Close()

	stockUC := appstock.NewUseCase(src.Snapshots, infrapdf.NewMarotoReportGenerator(), log, cfg.Alerts.Limit)
	dashboardUC := appanalytics.NewDashboardUseCase(src.Snapshots, src.Items, src.Transactions, cfg.Alerts.RecentDays)
	authUC := auth.NewAuthUseCase(src.Profiles, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// El panel web corre en otro origen.
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockwatch API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     cfg.App.Name,
			"data_source": src.Kind,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
