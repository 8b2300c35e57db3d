package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

const proveedorCols = `id, nombre, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, ''),
		COALESCE(direccion, ''), calificacion, activo, ultima_compra, created_at, updated_at`

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre, contacto, telefono, email, direccion,
			calificacion, activo, ultima_compra, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.Contacto, proveedor.Telefono,
		proveedor.Email, proveedor.Direccion, proveedor.Calificacion, proveedor.Activo,
		proveedor.UltimaCompra, proveedor.CreatedAt, proveedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE id = $1`
	p, err := scanProveedor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return p, nil
}

// Update actualiza un proveedor existente.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, contacto = $3, telefono = $4, email = $5,
			direccion = $6, calificacion = $7, activo = $8, ultima_compra = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.Contacto, proveedor.Telefono,
		proveedor.Email, proveedor.Direccion, proveedor.Calificacion, proveedor.Activo,
		proveedor.UltimaCompra, proveedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// List lista proveedores aplicando filtros, orden y paginación.
func (r *ProveedorRepo) List(filtros dto.ProveedorFiltros, limit, offset int) ([]*entity.Proveedor, error) {
	where, args := proveedorFiltroSQL(filtros)
	query := `SELECT ` + proveedorCols + ` FROM proveedores` + where + proveedorOrdenSQL(filtros) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		proveedores = append(proveedores, p)
	}
	return proveedores, rows.Err()
}

// Delete elimina un proveedor. Los productos asociados quedan sin proveedor.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

func scanProveedor(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email, &p.Direccion,
		&p.Calificacion, &p.Activo, &p.UltimaCompra, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
