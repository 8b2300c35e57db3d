package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/southgenetics/inventario-api/internal/application/analytics"
	"github.com/southgenetics/inventario-api/internal/application/inventory"
	"github.com/southgenetics/inventario-api/internal/application/reports"
	"github.com/southgenetics/inventario-api/internal/application/usecase"
	infrapdf "github.com/southgenetics/inventario-api/internal/infrastructure/pdf"
	"github.com/southgenetics/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/southgenetics/inventario-api/internal/interfaces/http"
	"github.com/southgenetics/inventario-api/pkg/config"
	"github.com/southgenetics/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool. Los del flujo de movimientos se reconstruyen
	// sobre la transacción dentro del TxRunner.
	productoRepo := postgres.NewProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	alertaRepo := postgres.NewAlertaRepository(pool)
	metricsRepo := postgres.NewMetricsRepository(pool, cfg.Inventario.UmbralStockBajo)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	movimientoQueryUC := usecase.NewMovimientoQueryUseCase(movimientoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	alertaUC := usecase.NewAlertaUseCase(alertaRepo)
	metricsUC := analytics.NewMetricsUseCase(metricsRepo, log)

	// PDF: reporte de inventario imprimible
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewInventoryReportUseCase(productoRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el PDF de inventario puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SouthGenetics Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:       productoUC,
		CategoriaUC:      categoriaUC,
		ProveedorUC:      proveedorUC,
		AlertaUC:         alertaUC,
		MovimientoQuery:  movimientoQueryUC,
		RegisterMovement: registerMovementUC,
		MetricsUC:        metricsUC,
		ReportUC:         reportUC,
		Config:           cfg,
		JWTSecret:        cfg.JWT.Secret,
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
