package usecase

import (
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// AlertaUseCase listado y cambio de estado de alertas. Las alertas de stock
// bajo las crea el motor de movimientos; aquí solo se consultan y gestionan.
type AlertaUseCase struct {
	repo repository.AlertaRepository
}

// NewAlertaUseCase construye el caso de uso.
func NewAlertaUseCase(repo repository.AlertaRepository) *AlertaUseCase {
	return &AlertaUseCase{repo: repo}
}

// ListByEstado lista alertas por estado (activa, revisada, resuelta).
func (uc *AlertaUseCase) ListByEstado(estado string, page dto.PageRequest) ([]dto.AlertaResponse, error) {
	if estado == "" {
		estado = entity.EstadoActiva
	}
	switch estado {
	case entity.EstadoActiva, entity.EstadoRevisada, entity.EstadoResuelta:
	default:
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	alertas, err := uc.repo.ListByEstado(estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertaResponse, 0, len(alertas))
	for _, a := range alertas {
		out = append(out, dto.AlertaResponse{
			ID:                a.ID,
			ProductoID:        a.ProductoID,
			Tipo:              a.Tipo,
			Severidad:         a.Severidad,
			Titulo:            a.Titulo,
			Descripcion:       a.Descripcion,
			Estado:            a.Estado,
			AccionRecomendada: a.AccionRecomendada,
			CreatedAt:         a.CreatedAt,
			ResolvedAt:        a.ResolvedAt,
		})
	}
	return out, nil
}

// UpdateEstado cambia el estado de una alerta.
func (uc *AlertaUseCase) UpdateEstado(id string, in dto.UpdateAlertaEstadoRequest) error {
	switch in.Estado {
	case entity.EstadoActiva, entity.EstadoRevisada, entity.EstadoResuelta:
	default:
		return domain.ErrInvalidInput
	}
	alerta, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alerta == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstado(id, in.Estado)
}
