package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Contacto:     in.Contacto,
		Telefono:     in.Telefono,
		Email:        in.Email,
		Direccion:    in.Direccion,
		Calificacion: in.Calificacion,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID. Retorna nil si no existe.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	return toProveedorResponse(proveedor), nil
}

// Update actualiza un proveedor.
func (uc *ProveedorUseCase) Update(id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		proveedor.Nombre = *in.Nombre
	}
	if in.Contacto != nil {
		proveedor.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	if in.Email != nil {
		proveedor.Email = *in.Email
	}
	if in.Direccion != nil {
		proveedor.Direccion = *in.Direccion
	}
	if in.Calificacion != nil {
		proveedor.Calificacion = *in.Calificacion
	}
	if in.Activo != nil {
		proveedor.Activo = *in.Activo
	}
	if in.UltimaCompra != nil {
		proveedor.UltimaCompra = in.UltimaCompra
	}
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// List lista proveedores con filtros y paginación.
func (uc *ProveedorUseCase) List(filtros dto.ProveedorFiltros, page dto.PageRequest) ([]dto.ProveedorResponse, error) {
	filtros.Normalizar()
	page.DefaultPage()
	proveedores, err := uc.repo.List(filtros, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, *toProveedorResponse(p))
	}
	return out, nil
}

// Delete elimina un proveedor por ID.
func (uc *ProveedorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Contacto:     p.Contacto,
		Telefono:     p.Telefono,
		Email:        p.Email,
		Direccion:    p.Direccion,
		Calificacion: p.Calificacion,
		Activo:       p.Activo,
		UltimaCompra: p.UltimaCompra,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
