package dto

import "github.com/shopspring/decimal"

// DashboardMetricsResponse widgets de la portada del dashboard.
type DashboardMetricsResponse struct {
	TotalProductos  int             `json:"total_productos"`
	ValorInventario decimal.Decimal `json:"valor_inventario"`
	MovimientosHoy  int             `json:"movimientos_hoy"`
	AlertasStock    int             `json:"alertas_stock"`
}

// MovimientoMetricsResponse widgets de la página de movimientos.
type MovimientoMetricsResponse struct {
	TotalMovimientos  int             `json:"total_movimientos"`
	MovimientosHoy    int             `json:"movimientos_hoy"`
	EntradasHoy       int             `json:"entradas_hoy"`
	SalidasHoy        int             `json:"salidas_hoy"`
	AjustesHoy        int             `json:"ajustes_hoy"`
	TransferenciasHoy int             `json:"transferencias_hoy"`
	ValorEntradasHoy  decimal.Decimal `json:"valor_entradas_hoy"`
	ValorSalidasHoy   decimal.Decimal `json:"valor_salidas_hoy"`
}

// ProductoMetricsResponse widgets de la página de productos.
type ProductoMetricsResponse struct {
	TotalProductos int             `json:"total_productos"`
	StockBajo      int             `json:"stock_bajo"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
}

// ProveedorMetricsResponse widgets de la página de proveedores.
type ProveedorMetricsResponse struct {
	TotalProveedores     int             `json:"total_proveedores"`
	ProveedoresActivos   int             `json:"proveedores_activos"`
	CalificacionPromedio decimal.Decimal `json:"calificacion_promedio"`
}
