package repository

import "github.com/southgenetics/inventario-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	List(limit, offset int) ([]*entity.Categoria, error)
	Delete(id string) error
}
