package dto

import "time"

// CreateProveedorRequest entrada para crear un proveedor.
type CreateProveedorRequest struct {
	Nombre       string `json:"nombre" validate:"required,min=1,max=200"`
	Contacto     string `json:"contacto"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email" validate:"omitempty,email"`
	Direccion    string `json:"direccion"`
	Calificacion int    `json:"calificacion" validate:"min=0,max=5"`
}

// UpdateProveedorRequest entrada para actualizar un proveedor.
type UpdateProveedorRequest struct {
	Nombre       *string    `json:"nombre" validate:"omitempty,min=1,max=200"`
	Contacto     *string    `json:"contacto"`
	Telefono     *string    `json:"telefono"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Direccion    *string    `json:"direccion"`
	Calificacion *int       `json:"calificacion" validate:"omitempty,min=0,max=5"`
	Activo       *bool      `json:"activo"`
	UltimaCompra *time.Time `json:"ultima_compra"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID           string     `json:"id"`
	Nombre       string     `json:"nombre"`
	Contacto     string     `json:"contacto,omitempty"`
	Telefono     string     `json:"telefono,omitempty"`
	Email        string     `json:"email,omitempty"`
	Direccion    string     `json:"direccion,omitempty"`
	Calificacion int        `json:"calificacion"`
	Activo       bool       `json:"activo"`
	UltimaCompra *time.Time `json:"ultima_compra,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
