package entity

import "time"

// TipoMovimiento es el conjunto cerrado de tipos de movimiento de inventario.
type TipoMovimiento string

// Tipos de movimiento.
const (
	TipoEntrada       TipoMovimiento = "entrada"       // suma al stock
	TipoSalida        TipoMovimiento = "salida"        // resta del stock
	TipoAjuste        TipoMovimiento = "ajuste"        // fija el stock a un valor absoluto
	TipoTransferencia TipoMovimiento = "transferencia" // se trata como salida
)

// Valido reporta si el tipo pertenece al conjunto permitido.
func (t TipoMovimiento) Valido() bool {
	switch t {
	case TipoEntrada, TipoSalida, TipoAjuste, TipoTransferencia:
		return true
	}
	return false
}

// Movimiento representa un evento de cambio de stock sobre un producto.
// Es inmutable después de creado; borrarlo NO revierte su efecto sobre el stock.
type Movimiento struct {
	ID         string
	ProductoID string
	Tipo       TipoMovimiento
	Cantidad   int // siempre positivo; el signo lo decide el tipo
	Motivo     string
	Referencia string
	Notas      string
	Usuario    string
	CreatedAt  time.Time
}
