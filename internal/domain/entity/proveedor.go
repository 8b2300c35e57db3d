package entity

import "time"

// Proveedor representa un proveedor de productos.
// Calificacion va de 0 a 5.
type Proveedor struct {
	ID           string
	Nombre       string
	Contacto     string
	Telefono     string
	Email        string
	Direccion    string
	Calificacion int
	Activo       bool
	UltimaCompra *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
