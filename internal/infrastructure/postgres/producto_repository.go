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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoCols = `id, codigo, nombre, COALESCE(descripcion, ''), COALESCE(categoria_id, ''), COALESCE(proveedor_id, ''),
		stock_actual, stock_minimo, precio, costo, COALESCE(unidad_medida, ''), COALESCE(ubicacion, ''),
		fecha_vencimiento, activo, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, categoria_id, proveedor_id,
			stock_actual, stock_minimo, precio, costo, unidad_medida, ubicacion,
			fecha_vencimiento, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Codigo, producto.Nombre, producto.Descripcion,
		producto.CategoriaID, producto.ProveedorID,
		producto.StockActual, producto.StockMinimo, producto.Precio, producto.Costo,
		producto.UnidadMedida, producto.Ubicacion, producto.FechaVencimiento,
		producto.Activo, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE codigo = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, codigo), "get producto by codigo")
}

// GetForUpdate obtiene un producto bloqueando su fila hasta el fin de la
// transacción. Solo tiene sentido con un Querier transaccional.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id), "get producto for update")
}

// UpdateStock actualiza solo el stock del producto (usado por el motor de movimientos).
func (r *ProductoRepo) UpdateStock(id string, stockActual int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		id, stockActual,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Update actualiza un producto existente, incluido el stock (el formulario de
// edición permite corregirlo directamente).
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET codigo = $2, nombre = $3, descripcion = $4,
			categoria_id = NULLIF($5, ''), proveedor_id = NULLIF($6, ''),
			stock_actual = $7, stock_minimo = $8, precio = $9, costo = $10,
			unidad_medida = $11, ubicacion = $12, fecha_vencimiento = $13,
			activo = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Codigo, producto.Nombre, producto.Descripcion,
		producto.CategoriaID, producto.ProveedorID,
		producto.StockActual, producto.StockMinimo, producto.Precio, producto.Costo,
		producto.UnidadMedida, producto.Ubicacion, producto.FechaVencimiento,
		producto.Activo, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List lista productos aplicando filtros, orden y paginación.
func (r *ProductoRepo) List(filtros dto.ProductoFiltros, limit, offset int) ([]*entity.Producto, error) {
	where, args := productoFiltroSQL(filtros)
	query := `SELECT ` + productoCols + ` FROM productos` + where + productoOrdenSQL(filtros) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}

// Count cuenta los productos que pasan los filtros (para la paginación).
func (r *ProductoRepo) Count(filtros dto.ProductoFiltros) (int, error) {
	where, args := productoFiltroSQL(filtros)
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM productos`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return total, nil
}

// Delete elimina un producto. Sus movimientos históricos se conservan.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) scanUno(row pgx.Row, op string) (*entity.Producto, error) {
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.ProveedorID,
		&p.StockActual, &p.StockMinimo, &p.Precio, &p.Costo, &p.UnidadMedida, &p.Ubicacion,
		&p.FechaVencimiento, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
