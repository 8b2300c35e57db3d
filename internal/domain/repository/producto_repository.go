package repository

import (
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (bloqueo de fila).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	GetForUpdate(id string) (*entity.Producto, error)
	UpdateStock(id string, stockActual int) error
	Update(producto *entity.Producto) error
	List(filtros dto.ProductoFiltros, limit, offset int) ([]*entity.Producto, error)
	Count(filtros dto.ProductoFiltros) (int, error)
	Delete(id string) error
}
