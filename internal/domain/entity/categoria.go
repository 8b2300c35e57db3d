package entity

import "time"

// Categoria representa una categoría de productos.
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	Color       string // color hex para la UI
	Activa      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
