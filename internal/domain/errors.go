package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrCantidadInvalida  = errors.New("cantidad inválida: debe ser un entero positivo")
	ErrTipoInvalido      = errors.New("tipo de movimiento inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError lleva el stock actual y la cantidad solicitada para que
// el mensaje al usuario incluya ambos valores. Envuelve ErrInsufficientStock,
// así errors.Is(err, ErrInsufficientStock) sigue funcionando en los handlers.
type InsufficientStockError struct {
	StockActual int
	Solicitada  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.StockActual, e.Solicitada)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
