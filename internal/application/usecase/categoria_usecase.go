package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

const colorCategoriaDefault = "#6B7280"

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría. El nombre debe ser único.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	existente, _ := uc.repo.GetByNombre(in.Nombre)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Color == "" {
		in.Color = colorCategoriaDefault
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Color:       in.Color,
		Activa:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// GetByID obtiene una categoría por ID. Retorna nil si no existe.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	return toCategoriaResponse(categoria), nil
}

// Update actualiza una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		categoria.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = *in.Descripcion
	}
	if in.Color != nil {
		categoria.Color = *in.Color
	}
	if in.Activa != nil {
		categoria.Activa = *in.Activa
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// List lista categorías con paginación.
func (uc *CategoriaUseCase) List(page dto.PageRequest) ([]dto.CategoriaResponse, error) {
	page.DefaultPage()
	categorias, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, *toCategoriaResponse(c))
	}
	return out, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoriaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Color:       c.Color,
		Activa:      c.Activa,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
