package reports

import (
	"context"
	"time"

	"github.com/southgenetics/inventario-api/internal/domain/entity"
)

// InventoryPDFGenerator genera la representación PDF del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerarReporteInventario(ctx context.Context, productos []*entity.Producto, generadoEn time.Time) ([]byte, error)
}
