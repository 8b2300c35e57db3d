package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/southgenetics/inventario-api/internal/application/analytics"
	"github.com/southgenetics/inventario-api/internal/application/inventory"
	"github.com/southgenetics/inventario-api/internal/application/reports"
	"github.com/southgenetics/inventario-api/internal/application/usecase"
	"github.com/southgenetics/inventario-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC       *usecase.ProductoUseCase
	CategoriaUC      *usecase.CategoriaUseCase
	ProveedorUC      *usecase.ProveedorUseCase
	AlertaUC         *usecase.AlertaUseCase
	MovimientoQuery  *usecase.MovimientoQueryUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MetricsUC        *analytics.MetricsUseCase
	ReportUC         *reports.InventoryReportUseCase
	Config           *config.Config
	JWTSecret        string
}

// Router registra las rutas de la API. Toda la API es protegida: los tokens
// los emite el proveedor de identidad, aquí solo se validan.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Movimientos de inventario
	movimientos := api.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.RegisterMovement, deps.MovimientoQuery)
	movimientos.Post("/", movimientoHandler.Registrar)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)
	movimientos.Delete("/:id", movimientoHandler.Delete)

	// Categorías
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Proveedores
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Alertas
	alertas := api.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.AlertaUC)
	alertas.Get("/", alertaHandler.List)
	alertas.Patch("/:id/estado", alertaHandler.UpdateEstado)

	// Métricas por página
	metricas := api.Group("/metricas")
	metricsHandler := NewMetricsHandler(deps.MetricsUC)
	metricas.Get("/dashboard", metricsHandler.Dashboard)
	metricas.Get("/movimientos", metricsHandler.Movimientos)
	metricas.Get("/productos", metricsHandler.Productos)
	metricas.Get("/proveedores", metricsHandler.Proveedores)

	// Reportes
	reportes := api.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReportUC)
	reportes.Get("/inventario.pdf", reporteHandler.InventarioPDF)

	// Configuración (solo lectura)
	configHandler := NewConfiguracionHandler(deps.Config)
	api.Get("/configuracion", configHandler.Get)
}
