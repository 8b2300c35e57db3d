package inventory

import (
	"context"

	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el insert del movimiento y el
// update del stock se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		alertaRepo repository.AlertaRepository,
	) error) error
}
