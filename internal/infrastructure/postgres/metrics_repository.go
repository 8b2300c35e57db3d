package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas de agregación de solo lectura para los widgets del
// dashboard. Todos los agregados se calculan en el servidor de base de datos;
// aquí solo se escanean los resultados.
type MetricsRepo struct {
	pool            *pgxpool.Pool
	umbralStockBajo int
}

// NewMetricsRepository construye el adaptador de métricas. umbralStockBajo es
// el corte de "stock bajo" para los contadores (UMBRAL_STOCK_BAJO, default 10).
func NewMetricsRepository(pool *pgxpool.Pool, umbralStockBajo int) *MetricsRepo {
	return &MetricsRepo{pool: pool, umbralStockBajo: umbralStockBajo}
}

// enParalelo ejecuta las funciones en goroutines y devuelve el primer error.
// Las consultas de cada grupo de métricas son independientes entre sí.
func enParalelo(fns ...func() error) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(fns))
	for _, fn := range fns {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				errs <- err
			}
		}(fn)
	}
	wg.Wait()
	close(errs)
	return <-errs
}

// GetDashboardMetrics calcula los cuatro widgets de la portada. hoy es el
// inicio del día local; "movimientos de hoy" cubre [hoy, hoy+1d).
func (r *MetricsRepo) GetDashboardMetrics(ctx context.Context, hoy time.Time) (*repository.DashboardMetrics, error) {
	manana := hoy.AddDate(0, 0, 1)
	var m repository.DashboardMetrics

	err := enParalelo(
		func() error {
			return r.pool.QueryRow(ctx,
				`SELECT COUNT(*) FROM productos WHERE activo`).Scan(&m.TotalProductos)
		},
		func() error {
			return r.pool.QueryRow(ctx,
				`SELECT COALESCE(SUM(precio * stock_actual), 0) FROM productos WHERE activo`).Scan(&m.ValorInventario)
		},
		func() error {
			return r.pool.QueryRow(ctx,
				`SELECT COUNT(*) FROM movimientos WHERE created_at >= $1 AND created_at < $2`,
				hoy, manana).Scan(&m.MovimientosHoy)
		},
		func() error {
			return r.pool.QueryRow(ctx,
				`SELECT COUNT(*) FROM productos WHERE activo AND stock_actual < $1`,
				r.umbralStockBajo).Scan(&m.AlertasStock)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("metrics.GetDashboardMetrics: %w", err)
	}
	return &m, nil
}

// GetMovimientoMetrics calcula los widgets de la página de movimientos.
func (r *MetricsRepo) GetMovimientoMetrics(ctx context.Context, hoy time.Time) (*repository.MovimientoMetrics, error) {
	manana := hoy.AddDate(0, 0, 1)
	var m repository.MovimientoMetrics

	err := enParalelo(
		func() error {
			return r.pool.QueryRow(ctx,
				`SELECT COUNT(*),
				        COUNT(*) FILTER (WHERE created_at >= $1 AND created_at < $2)
				 FROM movimientos`, hoy, manana).Scan(&m.TotalMovimientos, &m.MovimientosHoy)
		},
		func() error {
			rows, err := r.pool.Query(ctx,
				`SELECT tipo, COUNT(*) FROM movimientos
				 WHERE created_at >= $1 AND created_at < $2
				 GROUP BY tipo`, hoy, manana)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var tipo string
				var n int
				if err := rows.Scan(&tipo, &n); err != nil {
					return err
				}
				switch tipo {
				case "entrada":
					m.EntradasHoy = n
				case "salida":
					m.SalidasHoy = n
				case "ajuste":
					m.AjustesHoy = n
				case "transferencia":
					m.TransferenciasHoy = n
				}
			}
			return rows.Err()
		},
		func() error {
			return r.pool.QueryRow(ctx,
				`SELECT COALESCE(SUM(m.cantidad * p.precio) FILTER (WHERE m.tipo = 'entrada'), 0),
				        COALESCE(SUM(m.cantidad * p.precio) FILTER (WHERE m.tipo IN ('salida', 'transferencia')), 0)
				 FROM movimientos m
				 JOIN productos p ON p.id = m.producto_id
				 WHERE m.created_at >= $1 AND m.created_at < $2`,
				hoy, manana).Scan(&m.ValorEntradasHoy, &m.ValorSalidasHoy)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("metrics.GetMovimientoMetrics: %w", err)
	}
	return &m, nil
}

// GetProductoMetrics calcula los widgets de la página de productos.
func (r *MetricsRepo) GetProductoMetrics(ctx context.Context) (*repository.ProductoMetrics, error) {
	var m repository.ProductoMetrics
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE stock_actual < $1),
		        COALESCE(SUM(precio * stock_actual), 0)
		 FROM productos WHERE activo`,
		r.umbralStockBajo).Scan(&m.TotalProductos, &m.StockBajo, &m.ValorTotal)
	if err != nil {
		return nil, fmt.Errorf("metrics.GetProductoMetrics: %w", err)
	}
	return &m, nil
}

// GetProveedorMetrics calcula los widgets de la página de proveedores. La
// calificación promedio solo considera proveedores activos.
func (r *MetricsRepo) GetProveedorMetrics(ctx context.Context) (*repository.ProveedorMetrics, error) {
	var m repository.ProveedorMetrics
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE activo),
		        COALESCE(ROUND(AVG(calificacion) FILTER (WHERE activo), 2), 0)
		 FROM proveedores`).Scan(&m.TotalProveedores, &m.ProveedoresActivos, &m.CalificacionPromedio)
	if err != nil {
		return nil, fmt.Errorf("metrics.GetProveedorMetrics: %w", err)
	}
	return &m, nil
}
