// Package analytics contiene los casos de uso de métricas de las páginas del
// dashboard. Todas las cifras son counts/sums calculados por el almacén; aquí
// solo se orquesta la consulta con timeout y, en el dashboard, un reintento.
package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
	"github.com/southgenetics/inventario-api/pkg/logger"
)

const (
	// Timeout de pared para las consultas de métricas.
	dashboardTimeout = 10 * time.Second
	pageTimeout      = 8 * time.Second

	// Espera fija antes del único reintento del dashboard.
	retryDelay = 2 * time.Second
)

// MetricsUseCase expone las métricas agregadas de cada página.
//
// Política de fallo: el dashboard registra el timeout y reintenta una vez tras
// una espera fija; las métricas de página propagan el error al usuario sin
// reintentar.
type MetricsUseCase struct {
	repo repository.MetricsRepository
	log  *logger.Logger
}

// NewMetricsUseCase construye el caso de uso.
func NewMetricsUseCase(repo repository.MetricsRepository, log *logger.Logger) *MetricsUseCase {
	return &MetricsUseCase{repo: repo, log: log}
}

// GetDashboard métricas de la portada. Reintenta una sola vez si la primera
// consulta excede el timeout.
func (uc *MetricsUseCase) GetDashboard(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	hoy := inicioDeHoy()

	m, err := uc.consultarDashboard(ctx, hoy)
	if errors.Is(err, context.DeadlineExceeded) {
		uc.log.Warn().Dur("retry_delay", retryDelay).Msg("métricas de dashboard: timeout, reintentando")
		time.Sleep(retryDelay)
		m, err = uc.consultarDashboard(ctx, hoy)
	}
	if err != nil {
		return nil, err
	}
	return &dto.DashboardMetricsResponse{
		TotalProductos:  m.TotalProductos,
		ValorInventario: m.ValorInventario,
		MovimientosHoy:  m.MovimientosHoy,
		AlertasStock:    m.AlertasStock,
	}, nil
}

func (uc *MetricsUseCase) consultarDashboard(ctx context.Context, hoy time.Time) (*repository.DashboardMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, dashboardTimeout)
	defer cancel()
	return uc.repo.GetDashboardMetrics(ctx, hoy)
}

// GetMovimientos métricas de la página de movimientos. Sin reintento.
func (uc *MetricsUseCase) GetMovimientos(ctx context.Context) (*dto.MovimientoMetricsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	m, err := uc.repo.GetMovimientoMetrics(ctx, inicioDeHoy())
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoMetricsResponse{
		TotalMovimientos:  m.TotalMovimientos,
		MovimientosHoy:    m.MovimientosHoy,
		EntradasHoy:       m.EntradasHoy,
		SalidasHoy:        m.SalidasHoy,
		AjustesHoy:        m.AjustesHoy,
		TransferenciasHoy: m.TransferenciasHoy,
		ValorEntradasHoy:  m.ValorEntradasHoy,
		ValorSalidasHoy:   m.ValorSalidasHoy,
	}, nil
}

// GetProductos métricas de la página de productos. Sin reintento.
func (uc *MetricsUseCase) GetProductos(ctx context.Context) (*dto.ProductoMetricsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	m, err := uc.repo.GetProductoMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductoMetricsResponse{
		TotalProductos: m.TotalProductos,
		StockBajo:      m.StockBajo,
		ValorTotal:     m.ValorTotal,
	}, nil
}

// GetProveedores métricas de la página de proveedores. Sin reintento.
func (uc *MetricsUseCase) GetProveedores(ctx context.Context) (*dto.ProveedorMetricsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	m, err := uc.repo.GetProveedorMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProveedorMetricsResponse{
		TotalProveedores:     m.TotalProveedores,
		ProveedoresActivos:   m.ProveedoresActivos,
		CalificacionPromedio: m.CalificacionPromedio,
	}, nil
}

// inicioDeHoy devuelve las 00:00:00 locales de hoy; el rango "hoy" de las
// métricas es [inicio, ahora].
func inicioDeHoy() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
