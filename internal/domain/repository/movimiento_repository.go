package repository

import (
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia para Movimiento.
// Los movimientos son inmutables: no hay Update; Delete no revierte stock.
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	List(filtros dto.MovimientoFiltros, limit, offset int) ([]*entity.Movimiento, error)
	Count(filtros dto.MovimientoFiltros) (int, error)
	Delete(id string) error
}
