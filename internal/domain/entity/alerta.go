package entity

import "time"

// Tipos de alerta.
const (
	AlertaStockBajo         = "stock_bajo"
	AlertaVencimiento       = "vencimiento"
	AlertaMovimientoAnomalo = "movimiento_anomalo"
	AlertaProveedor         = "proveedor"
)

// Severidades de alerta.
const (
	SeveridadCritica = "critica"
	SeveridadAlta    = "alta"
	SeveridadMedia   = "media"
	SeveridadBaja    = "baja"
)

// Estados de alerta.
const (
	EstadoActiva   = "activa"
	EstadoRevisada = "revisada"
	EstadoResuelta = "resuelta"
)

// Alerta representa una alerta operativa ligada a un producto.
type Alerta struct {
	ID                string
	ProductoID        string
	Tipo              string
	Severidad         string
	Titulo            string
	Descripcion       string
	Estado            string
	AccionRecomendada string
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}
