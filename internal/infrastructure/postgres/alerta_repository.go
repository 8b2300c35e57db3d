package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

const alertaCols = `id, producto_id, tipo, severidad, titulo, COALESCE(descripcion, ''),
		estado, COALESCE(accion_recomendada, ''), created_at, resolved_at`

// AlertaRepo implementación del puerto AlertaRepository sobre PostgreSQL (usable con pool o tx).
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador de persistencia para alertas. Pasar pool o tx (Querier).
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

// UpsertStockBajo mantiene a lo sumo una alerta stock_bajo activa por producto:
// si ya hay una activa actualiza severidad, título y descripción; si no, inserta.
// Se apoya en el índice único parcial sobre (producto_id) WHERE tipo = 'stock_bajo'
// AND estado = 'activa'.
func (r *AlertaRepo) UpsertStockBajo(alerta *entity.Alerta) error {
	query := `
		INSERT INTO alertas (id, producto_id, tipo, severidad, titulo, descripcion, estado, accion_recomendada, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (producto_id) WHERE tipo = 'stock_bajo' AND estado = 'activa'
		DO UPDATE SET severidad = EXCLUDED.severidad,
			titulo = EXCLUDED.titulo,
			descripcion = EXCLUDED.descripcion,
			accion_recomendada = EXCLUDED.accion_recomendada`
	_, err := r.q.Exec(context.Background(), query,
		alerta.ID, alerta.ProductoID, alerta.Tipo, alerta.Severidad,
		alerta.Titulo, alerta.Descripcion, alerta.Estado, alerta.AccionRecomendada,
		alerta.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert alerta stock_bajo: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertaRepo) GetByID(id string) (*entity.Alerta, error) {
	query := `SELECT ` + alertaCols + ` FROM alertas WHERE id = $1`
	a, err := scanAlerta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta: %w", err)
	}
	return a, nil
}

// ListByEstado lista alertas por estado, las más recientes primero.
func (r *AlertaRepo) ListByEstado(estado string, limit, offset int) ([]*entity.Alerta, error) {
	query := `SELECT ` + alertaCols + ` FROM alertas WHERE estado = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()

	var alertas []*entity.Alerta
	for rows.Next() {
		a, err := scanAlerta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		alertas = append(alertas, a)
	}
	return alertas, rows.Err()
}

// UpdateEstado cambia el estado de una alerta; al pasar a resuelta registra
// resolved_at.
func (r *AlertaRepo) UpdateEstado(id, estado string) error {
	query := `
		UPDATE alertas SET estado = $2,
			resolved_at = CASE WHEN $2 = 'resuelta' THEN now() ELSE resolved_at END
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, estado)
	if err != nil {
		return fmt.Errorf("update estado alerta: %w", err)
	}
	return nil
}

func scanAlerta(row pgx.Row) (*entity.Alerta, error) {
	var a entity.Alerta
	err := row.Scan(
		&a.ID, &a.ProductoID, &a.Tipo, &a.Severidad, &a.Titulo, &a.Descripcion,
		&a.Estado, &a.AccionRecomendada, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
