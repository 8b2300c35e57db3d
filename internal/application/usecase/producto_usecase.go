package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El stock también puede
// editarse directo desde el formulario de producto; los ajustes con trazabilidad
// van por el motor de movimientos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un nuevo producto. El código debe ser único.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	existente, _ := uc.repo.GetByCodigo(in.Codigo)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:               uuid.New().String(),
		Codigo:           in.Codigo,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		CategoriaID:      in.CategoriaID,
		ProveedorID:      in.ProveedorID,
		StockActual:      in.StockActual,
		StockMinimo:      in.StockMinimo,
		Precio:           in.Precio,
		Costo:            in.Costo,
		UnidadMedida:     in.UnidadMedida,
		Ubicacion:        in.Ubicacion,
		FechaVencimiento: in.FechaVencimiento,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID. Retorna nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update actualiza un producto; los campos nil del request no se tocan.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = *in.CategoriaID
	}
	if in.ProveedorID != nil {
		producto.ProveedorID = *in.ProveedorID
	}
	if in.StockActual != nil {
		if *in.StockActual < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.StockActual = *in.StockActual
	}
	if in.StockMinimo != nil {
		producto.StockMinimo = *in.StockMinimo
	}
	if in.Precio != nil {
		producto.Precio = *in.Precio
	}
	if in.Costo != nil {
		producto.Costo = *in.Costo
	}
	if in.UnidadMedida != nil {
		producto.UnidadMedida = *in.UnidadMedida
	}
	if in.Ubicacion != nil {
		producto.Ubicacion = *in.Ubicacion
	}
	if in.FechaVencimiento != nil {
		producto.FechaVencimiento = in.FechaVencimiento
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductoUseCase) List(filtros dto.ProductoFiltros, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	filtros.Normalizar()
	page.DefaultPage()

	productos, err := uc.repo.List(filtros, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filtros)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		Codigo:           p.Codigo,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		CategoriaID:      p.CategoriaID,
		ProveedorID:      p.ProveedorID,
		StockActual:      p.StockActual,
		StockMinimo:      p.StockMinimo,
		StockBajo:        p.StockBajo(),
		Precio:           p.Precio,
		Costo:            p.Costo,
		UnidadMedida:     p.UnidadMedida,
		Ubicacion:        p.Ubicacion,
		FechaVencimiento: p.FechaVencimiento,
		Activo:           p.Activo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
