package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario-api/internal/application/analytics"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
	"github.com/southgenetics/inventario-api/pkg/logger"
)

// fakeMetricsRepo permite inyectar errores por llamada para probar la política
// de reintento del dashboard.
type fakeMetricsRepo struct {
	dashboardErrs []error // errores a devolver en llamadas sucesivas; luego éxito
	llamadas      int
	pageErr       error
}

func (f *fakeMetricsRepo) GetDashboardMetrics(ctx context.Context, _ time.Time) (*repository.DashboardMetrics, error) {
	f.llamadas++
	if len(f.dashboardErrs) > 0 {
		err := f.dashboardErrs[0]
		f.dashboardErrs = f.dashboardErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &repository.DashboardMetrics{
		TotalProductos:  42,
		ValorInventario: decimal.NewFromInt(15000),
		MovimientosHoy:  7,
		AlertasStock:    3,
	}, nil
}

func (f *fakeMetricsRepo) GetMovimientoMetrics(context.Context, time.Time) (*repository.MovimientoMetrics, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return &repository.MovimientoMetrics{TotalMovimientos: 100, EntradasHoy: 4}, nil
}

func (f *fakeMetricsRepo) GetProductoMetrics(context.Context) (*repository.ProductoMetrics, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return &repository.ProductoMetrics{TotalProductos: 42, StockBajo: 3}, nil
}

func (f *fakeMetricsRepo) GetProveedorMetrics(context.Context) (*repository.ProveedorMetrics, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return &repository.ProveedorMetrics{TotalProveedores: 5, ProveedoresActivos: 4}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestGetDashboard_Exito(t *testing.T) {
	repo := &fakeMetricsRepo{}
	uc := analytics.NewMetricsUseCase(repo, testLogger())

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, out.TotalProductos)
	assert.Equal(t, 7, out.MovimientosHoy)
	assert.Equal(t, 3, out.AlertasStock)
	assert.True(t, out.ValorInventario.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, 1, repo.llamadas)
}

// Un timeout en la primera consulta del dashboard dispara exactamente un
// reintento; si el segundo intento responde, el resultado se entrega normal.
func TestGetDashboard_ReintentaUnaVezTrasTimeout(t *testing.T) {
	repo := &fakeMetricsRepo{dashboardErrs: []error{context.DeadlineExceeded}}
	uc := analytics.NewMetricsUseCase(repo, testLogger())

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, out.TotalProductos)
	assert.Equal(t, 2, repo.llamadas, "debe haber exactamente un reintento")
}

// Dos timeouts seguidos: el error del segundo intento se propaga; no hay
// tercer intento.
func TestGetDashboard_SegundoTimeoutSePropaga(t *testing.T) {
	repo := &fakeMetricsRepo{dashboardErrs: []error{context.DeadlineExceeded, context.DeadlineExceeded}}
	uc := analytics.NewMetricsUseCase(repo, testLogger())

	_, err := uc.GetDashboard(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, repo.llamadas)
}

// Un error que no es timeout no se reintenta.
func TestGetDashboard_ErrorNoTimeoutNoReintenta(t *testing.T) {
	fallo := errors.New("conexión rechazada")
	repo := &fakeMetricsRepo{dashboardErrs: []error{fallo}}
	uc := analytics.NewMetricsUseCase(repo, testLogger())

	_, err := uc.GetDashboard(context.Background())
	assert.ErrorIs(t, err, fallo)
	assert.Equal(t, 1, repo.llamadas)
}

// Las métricas de página no reintentan: el error llega tal cual al caller.
func TestGetMovimientos_ErrorSePropagaSinReintento(t *testing.T) {
	fallo := errors.New("timeout: la consulta tardó demasiado")
	repo := &fakeMetricsRepo{pageErr: fallo}
	uc := analytics.NewMetricsUseCase(repo, testLogger())

	_, err := uc.GetMovimientos(context.Background())
	assert.ErrorIs(t, err, fallo)
}

func TestGetProductosYProveedores(t *testing.T) {
	repo := &fakeMetricsRepo{}
	uc := analytics.NewMetricsUseCase(repo, testLogger())

	productos, err := uc.GetProductos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, productos.TotalProductos)
	assert.Equal(t, 3, productos.StockBajo)

	proveedores, err := uc.GetProveedores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, proveedores.TotalProveedores)
	assert.Equal(t, 4, proveedores.ProveedoresActivos)
}
