package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario de SouthGenetics.
// StockActual es un entero no negativo; solo se muta vía el motor de movimientos
// o la edición directa del formulario de productos.
type Producto struct {
	ID               string
	Codigo           string // código único de producto
	Nombre           string
	Descripcion      string
	CategoriaID      string // vacío si no tiene categoría
	ProveedorID      string // vacío si no tiene proveedor
	StockActual      int
	StockMinimo      int
	Precio           decimal.Decimal // precio de venta
	Costo            decimal.Decimal
	UnidadMedida     string
	Ubicacion        string
	FechaVencimiento *time.Time
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StockBajo indica si el producto está en o por debajo de su stock mínimo.
func (p *Producto) StockBajo() bool {
	return p.StockActual <= p.StockMinimo
}
