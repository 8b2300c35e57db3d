package usecase

import (
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// MovimientoQueryUseCase consultas de solo lectura sobre el historial de
// movimientos, más el borrado administrativo. El registro de movimientos vive
// en el paquete inventory porque es transaccional.
type MovimientoQueryUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoQueryUseCase construye el caso de uso.
func NewMovimientoQueryUseCase(repo repository.MovimientoRepository) *MovimientoQueryUseCase {
	return &MovimientoQueryUseCase{repo: repo}
}

// List lista movimientos con filtros y paginación.
func (uc *MovimientoQueryUseCase) List(filtros dto.MovimientoFiltros, page dto.PageRequest) (*dto.MovimientoListResponse, error) {
	filtros.Normalizar()
	page.DefaultPage()

	movimientos, err := uc.repo.List(filtros, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filtros)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		items = append(items, *toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene un movimiento; nil si no existe.
func (uc *MovimientoQueryUseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMovimientoResponse(m), nil
}

// Delete borra el registro del movimiento sin revertir su efecto en el stock:
// el historial se corrige registrando un ajuste, no borrando eventos.
func (uc *MovimientoQueryUseCase) Delete(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:         m.ID,
		ProductoID: m.ProductoID,
		Tipo:       string(m.Tipo),
		Cantidad:   m.Cantidad,
		Motivo:     m.Motivo,
		Referencia: m.Referencia,
		Notas:      m.Notas,
		Usuario:    m.Usuario,
		CreatedAt:  m.CreatedAt,
	}
}
