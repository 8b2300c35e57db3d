package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// Tope de filas del reporte. Más allá de esto el PDF deja de ser útil y el
// usuario debería filtrar desde la página de productos.
const maxFilasReporte = 1000

// InventoryReportUseCase arma el reporte de inventario en PDF: listado completo
// de productos con su stock, y una sección de productos bajo mínimo.
type InventoryReportUseCase struct {
	productoRepo repository.ProductoRepository
	generator    InventoryPDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(productoRepo repository.ProductoRepository, generator InventoryPDFGenerator) *InventoryReportUseCase {
	return &InventoryReportUseCase{productoRepo: productoRepo, generator: generator}
}

// GenerarPDF devuelve los bytes del reporte de inventario al momento de la
// llamada, ordenado por nombre.
func (uc *InventoryReportUseCase) GenerarPDF(ctx context.Context) ([]byte, error) {
	filtros := dto.ProductoFiltros{SortBy: "nombre", SortOrder: "asc"}
	filtros.Normalizar()

	productos, err := uc.productoRepo.List(filtros, maxFilasReporte, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: listar productos: %w", err)
	}
	return uc.generator.GenerarReporteInventario(ctx, productos, time.Now())
}
