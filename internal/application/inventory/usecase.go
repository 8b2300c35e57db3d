package inventory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (entrada, salida,
// ajuste, transferencia) y ajusta el stock del producto de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) sobre el producto.
//
// Aritmética por tipo:
//
//	entrada:                nuevo = actual + cantidad
//	salida/transferencia:   nuevo = actual - cantidad  (falla si queda negativo)
//	ajuste:                 nuevo = cantidad           (valor absoluto)
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovimientoInput entrada para registrar un movimiento.
type MovimientoInput struct {
	ProductoID string
	Tipo       entity.TipoMovimiento
	Cantidad   int
	Motivo     string
	Referencia string
	Notas      string
	Usuario    string
}

// RegistrarDesdeRequest adapta el request HTTP al caso de uso: parsea la
// cantidad (la UI la envía como texto) y delega en Registrar.
func (uc *RegisterMovementUseCase) RegistrarDesdeRequest(ctx context.Context, usuario string, in dto.RegistrarMovimientoRequest) error {
	cantidad, err := strconv.Atoi(in.Cantidad)
	if err != nil {
		return domain.ErrCantidadInvalida
	}
	return uc.Registrar(ctx, MovimientoInput{
		ProductoID: in.ProductoID,
		Tipo:       entity.TipoMovimiento(in.Tipo),
		Cantidad:   cantidad,
		Motivo:     in.Motivo,
		Referencia: in.Referencia,
		Notas:      in.Notas,
		Usuario:    usuario,
	})
}

// Registrar valida la entrada, persiste el movimiento y escribe el nuevo stock
// del producto, todo dentro de una transacción. Si el stock resultante de una
// salida o transferencia fuera negativo, retorna InsufficientStockError y la
// transacción se revierte completa: no queda registrado el movimiento.
//
// Dos llamadas con los mismos argumentos producen dos movimientos y dos deltas
// de stock: el registro no es idempotente y no hay clave de deduplicación.
func (uc *RegisterMovementUseCase) Registrar(ctx context.Context, input MovimientoInput) error {
	// Validación previa a cualquier escritura.
	if input.Cantidad <= 0 {
		return domain.ErrCantidadInvalida
	}
	if !input.Tipo.Valido() {
		return domain.ErrTipoInvalido
	}
	if input.ProductoID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		alertaRepo repository.AlertaRepository,
	) error {
		// Paso 1: registrar el movimiento.
		mov := &entity.Movimiento{
			ID:         uuid.New().String(),
			ProductoID: input.ProductoID,
			Tipo:       input.Tipo,
			Cantidad:   input.Cantidad,
			Motivo:     input.Motivo,
			Referencia: input.Referencia,
			Notas:      input.Notas,
			Usuario:    input.Usuario,
			CreatedAt:  now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		// Paso 2: leer el stock actual bloqueando la fila. El bloqueo evita el
		// lost-update entre dos movimientos concurrentes del mismo producto.
		producto, err := productoRepo.GetForUpdate(input.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		// Paso 3: calcular el nuevo stock según el tipo.
		nuevoStock, err := aplicarMovimiento(producto.StockActual, input.Tipo, input.Cantidad)
		if err != nil {
			return err
		}

		// Paso 4: escribir el nuevo stock.
		if err := productoRepo.UpdateStock(producto.ID, nuevoStock); err != nil {
			return err
		}

		// Si el producto queda en o por debajo de su mínimo, se mantiene una
		// alerta stock_bajo activa en la misma transacción.
		if nuevoStock <= producto.StockMinimo {
			return alertaRepo.UpsertStockBajo(&entity.Alerta{
				ID:         uuid.New().String(),
				ProductoID: producto.ID,
				Tipo:       entity.AlertaStockBajo,
				Severidad:  severidadStockBajo(nuevoStock),
				Titulo:     fmt.Sprintf("Stock bajo: %s", producto.Nombre),
				Descripcion: fmt.Sprintf("El producto %s quedó con %d unidades (mínimo %d)",
					producto.Codigo, nuevoStock, producto.StockMinimo),
				Estado:            entity.EstadoActiva,
				AccionRecomendada: "Generar orden de compra al proveedor",
				CreatedAt:         now,
			})
		}
		return nil
	})
}

// aplicarMovimiento calcula el stock resultante. El default es inalcanzable en
// operación normal (el tipo se valida en el borde) pero se maneja igual.
func aplicarMovimiento(stockActual int, tipo entity.TipoMovimiento, cantidad int) (int, error) {
	switch tipo {
	case entity.TipoEntrada:
		return stockActual + cantidad, nil
	case entity.TipoSalida, entity.TipoTransferencia:
		nuevo := stockActual - cantidad
		if nuevo < 0 {
			return 0, &domain.InsufficientStockError{StockActual: stockActual, Solicitada: cantidad}
		}
		return nuevo, nil
	case entity.TipoAjuste:
		// Valor absoluto, sin chequeo de cota: la cantidad ya se validó positiva.
		return cantidad, nil
	default:
		return 0, domain.ErrTipoInvalido
	}
}

// severidadStockBajo gradúa la alerta: sin stock es crítica, el resto alta.
func severidadStockBajo(stock int) string {
	if stock == 0 {
		return entity.SeveridadCritica
	}
	return entity.SeveridadAlta
}
