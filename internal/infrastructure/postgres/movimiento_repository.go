package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoCols = `m.id, m.producto_id, m.tipo, m.cantidad, COALESCE(m.motivo, ''),
		COALESCE(m.referencia, ''), COALESCE(m.notas, ''), m.usuario, m.created_at`

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento. Los movimientos nunca se actualizan después.
func (r *MovimientoRepo) Create(movimiento *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, motivo, referencia, notas, usuario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movimiento.ID, movimiento.ProductoID, string(movimiento.Tipo), movimiento.Cantidad,
		movimiento.Motivo, movimiento.Referencia, movimiento.Notas, movimiento.Usuario,
		movimiento.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoCols + ` FROM movimientos m WHERE m.id = $1`
	m, err := scanMovimiento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List lista movimientos aplicando filtros, orden y paginación.
func (r *MovimientoRepo) List(filtros dto.MovimientoFiltros, limit, offset int) ([]*entity.Movimiento, error) {
	where, args := movimientoFiltroSQL(filtros)
	query := `SELECT ` + movimientoCols + ` FROM movimientos m` + where + movimientoOrdenSQL(filtros) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var movimientos []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movimientos = append(movimientos, m)
	}
	return movimientos, rows.Err()
}

// Count cuenta los movimientos que pasan los filtros (para la paginación).
func (r *MovimientoRepo) Count(filtros dto.MovimientoFiltros) (int, error) {
	where, args := movimientoFiltroSQL(filtros)
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM movimientos m`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movimientos: %w", err)
	}
	return total, nil
}

// Delete borra el registro del movimiento. NO revierte el stock.
func (r *MovimientoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var tipo string
	err := row.Scan(
		&m.ID, &m.ProductoID, &tipo, &m.Cantidad, &m.Motivo,
		&m.Referencia, &m.Notas, &m.Usuario, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Tipo = entity.TipoMovimiento(tipo)
	return &m, nil
}
