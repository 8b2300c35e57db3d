package dto

import "time"

// AlertaResponse salida de una alerta.
type AlertaResponse struct {
	ID                string     `json:"id"`
	ProductoID        string     `json:"producto_id"`
	Tipo              string     `json:"tipo"`
	Severidad         string     `json:"severidad"`
	Titulo            string     `json:"titulo"`
	Descripcion       string     `json:"descripcion,omitempty"`
	Estado            string     `json:"estado"`
	AccionRecomendada string     `json:"accion_recomendada,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
}

// UpdateAlertaEstadoRequest body para PATCH /api/alertas/:id/estado.
type UpdateAlertaEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=activa revisada resuelta"`
}
