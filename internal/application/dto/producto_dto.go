package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Codigo           string          `json:"codigo" validate:"required,min=1,max=50"`
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      string          `json:"categoria_id"`
	ProveedorID      string          `json:"proveedor_id"`
	StockActual      int             `json:"stock_actual" validate:"min=0"`
	StockMinimo      int             `json:"stock_minimo" validate:"min=0"`
	Precio           decimal.Decimal `json:"precio"`
	Costo            decimal.Decimal `json:"costo"`
	UnidadMedida     string          `json:"unidad_medida"`
	Ubicacion        string          `json:"ubicacion"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento"`
}

// UpdateProductoRequest entrada para actualizar un producto. Campos nil no se tocan.
type UpdateProductoRequest struct {
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion      *string          `json:"descripcion"`
	CategoriaID      *string          `json:"categoria_id"`
	ProveedorID      *string          `json:"proveedor_id"`
	StockActual      *int             `json:"stock_actual" validate:"omitempty,min=0"`
	StockMinimo      *int             `json:"stock_minimo" validate:"omitempty,min=0"`
	Precio           *decimal.Decimal `json:"precio"`
	Costo            *decimal.Decimal `json:"costo"`
	UnidadMedida     *string          `json:"unidad_medida"`
	Ubicacion        *string          `json:"ubicacion"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento"`
	Activo           *bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               string          `json:"id"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion,omitempty"`
	CategoriaID      string          `json:"categoria_id,omitempty"`
	ProveedorID      string          `json:"proveedor_id,omitempty"`
	StockActual      int             `json:"stock_actual"`
	StockMinimo      int             `json:"stock_minimo"`
	StockBajo        bool            `json:"stock_bajo"`
	Precio           decimal.Decimal `json:"precio"`
	Costo            decimal.Decimal `json:"costo"`
	UnidadMedida     string          `json:"unidad_medida,omitempty"`
	Ubicacion        string          `json:"ubicacion,omitempty"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
	Activo           bool            `json:"activo"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
