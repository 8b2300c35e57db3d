package repository

import "github.com/southgenetics/inventario-api/internal/domain/entity"

// AlertaRepository define el puerto de persistencia para Alerta.
// UpsertStockBajo mantiene a lo sumo una alerta stock_bajo activa por producto:
// si ya existe una activa la actualiza, si no crea una nueva.
type AlertaRepository interface {
	UpsertStockBajo(alerta *entity.Alerta) error
	GetByID(id string) (*entity.Alerta, error)
	ListByEstado(estado string, limit, offset int) ([]*entity.Alerta, error)
	UpdateEstado(id, estado string) error
}
