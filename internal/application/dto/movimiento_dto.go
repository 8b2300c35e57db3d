package dto

import "time"

// RegistrarMovimientoRequest body para POST /api/movimientos.
// Cantidad llega como string porque la UI la envía tal cual del input de texto;
// el caso de uso la parsea y rechaza valores no numéricos, cero o negativos.
type RegistrarMovimientoRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
	Tipo       string `json:"tipo" validate:"required"`
	Cantidad   string `json:"cantidad" validate:"required"`
	Motivo     string `json:"motivo"`
	Referencia string `json:"referencia"`
	Notas      string `json:"notas"`
}

// MovimientoResponse salida de un movimiento.
type MovimientoResponse struct {
	ID         string    `json:"id"`
	ProductoID string    `json:"producto_id"`
	Tipo       string    `json:"tipo"`
	Cantidad   int       `json:"cantidad"`
	Motivo     string    `json:"motivo,omitempty"`
	Referencia string    `json:"referencia,omitempty"`
	Notas      string    `json:"notas,omitempty"`
	Usuario    string    `json:"usuario,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MovimientoListResponse lista paginada de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
