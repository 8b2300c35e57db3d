package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics agregados para la portada del dashboard.
type DashboardMetrics struct {
	TotalProductos  int
	ValorInventario decimal.Decimal // Σ precio × stock_actual de productos activos
	MovimientosHoy  int
	AlertasStock    int // productos con stock_actual < 10
}

// MovimientoMetrics agregados para la página de movimientos.
type MovimientoMetrics struct {
	TotalMovimientos   int
	MovimientosHoy     int
	EntradasHoy        int
	SalidasHoy         int
	AjustesHoy         int
	TransferenciasHoy  int
	ValorEntradasHoy   decimal.Decimal // Σ cantidad × precio del producto
	ValorSalidasHoy    decimal.Decimal
}

// ProductoMetrics agregados para la página de productos.
type ProductoMetrics struct {
	TotalProductos int
	StockBajo      int
	ValorTotal     decimal.Decimal
}

// ProveedorMetrics agregados para la página de proveedores.
type ProveedorMetrics struct {
	TotalProveedores     int
	ProveedoresActivos   int
	CalificacionPromedio decimal.Decimal
}

// MetricsRepository define las consultas de agregación de solo lectura
// (counts y sums contra el almacén remoto; no se calcula nada localmente).
// Cada método corresponde a los widgets de una página del dashboard.
type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context, hoy time.Time) (*DashboardMetrics, error)
	GetMovimientoMetrics(ctx context.Context, hoy time.Time) (*MovimientoMetrics, error)
	GetProductoMetrics(ctx context.Context) (*ProductoMetrics, error)
	GetProveedorMetrics(ctx context.Context) (*ProveedorMetrics, error)
}
