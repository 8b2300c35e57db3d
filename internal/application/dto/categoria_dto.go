package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Activa      *bool   `json:"activa"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Color       string    `json:"color"`
	Activa      bool      `json:"activa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
