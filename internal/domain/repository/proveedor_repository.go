package repository

import (
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
)

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	List(filtros dto.ProveedorFiltros, limit, offset int) ([]*entity.Proveedor, error)
	Delete(id string) error
}
