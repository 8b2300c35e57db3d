package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

const categoriaCols = `id, nombre, COALESCE(descripcion, ''), COALESCE(color, ''), activa, created_at, updated_at`

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nombre, descripcion, color, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nombre, categoria.Descripcion, categoria.Color,
		categoria.Activa, categoria.CreatedAt, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE id = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, id), "get categoria")
}

// GetByNombre obtiene una categoría por nombre exacto (el nombre es único).
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE nombre = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, nombre), "get categoria by nombre")
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, color = $4, activa = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nombre, categoria.Descripcion, categoria.Color,
		categoria.Activa, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// List lista categorías ordenadas por nombre.
func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias ORDER BY nombre ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Color, &c.Activa, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, &c)
	}
	return categorias, rows.Err()
}

// Delete elimina una categoría. Los productos asociados quedan sin categoría.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) scanUna(row pgx.Row, op string) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Color, &c.Activa, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
