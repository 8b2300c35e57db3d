package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/southgenetics/inventario-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Los defaults de los filtros no cuentan como filtros activos: la UI usa
// HasActiveFilters para mostrar el botón "limpiar filtros".
// ──────────────────────────────────────────────────────────────────────────────

func TestProductoFiltros_DefaultsNoSonActivos(t *testing.T) {
	var f dto.ProductoFiltros
	f.Normalizar()

	assert.False(t, f.HasActiveFilters())
	assert.Equal(t, dto.StockTodos, f.Stock)
	assert.Equal(t, "created_at", f.SortBy)
	assert.Equal(t, "desc", f.SortOrder)
}

func TestProductoFiltros_HasActiveFilters(t *testing.T) {
	casos := []struct {
		nombre string
		f      dto.ProductoFiltros
		activo bool
	}{
		{"vacio", dto.ProductoFiltros{}, false},
		{"stock all explicito", dto.ProductoFiltros{Stock: dto.StockTodos}, false},
		{"solo orden", dto.ProductoFiltros{SortBy: "precio", SortOrder: "asc"}, false},
		{"busqueda", dto.ProductoFiltros{Busqueda: "reactivo"}, true},
		{"stock bajo", dto.ProductoFiltros{Stock: dto.StockBajo}, true},
		{"fecha desde", dto.ProductoFiltros{FechaDesde: "2026-01-01"}, true},
		{"fecha hasta", dto.ProductoFiltros{FechaHasta: "2026-12-31"}, true},
	}
	for _, c := range casos {
		assert.Equal(t, c.activo, c.f.HasActiveFilters(), c.nombre)
	}
}

func TestMovimientoFiltros_HasActiveFilters(t *testing.T) {
	casos := []struct {
		nombre string
		f      dto.MovimientoFiltros
		activo bool
	}{
		{"vacio", dto.MovimientoFiltros{}, false},
		{"tipo all", dto.MovimientoFiltros{Tipo: dto.TipoTodos}, false},
		{"tipo entrada", dto.MovimientoFiltros{Tipo: "entrada"}, true},
		{"busqueda", dto.MovimientoFiltros{Busqueda: "ajuste anual"}, true},
	}
	for _, c := range casos {
		assert.Equal(t, c.activo, c.f.HasActiveFilters(), c.nombre)
	}
}

func TestMovimientoFiltros_NormalizarEsIdempotente(t *testing.T) {
	f := dto.MovimientoFiltros{Tipo: "salida", SortBy: "cantidad", SortOrder: "asc"}

	f.Normalizar()
	copia := f
	f.Normalizar()

	assert.Equal(t, copia, f, "normalizar dos veces no debe cambiar nada")
}

func TestProveedorFiltros_Defaults(t *testing.T) {
	var f dto.ProveedorFiltros
	f.Normalizar()

	assert.False(t, f.HasActiveFilters())
	assert.Equal(t, "nombre", f.SortBy)
	assert.Equal(t, "asc", f.SortOrder)

	assert.True(t, dto.ProveedorFiltros{CalificacionMin: 4}.HasActiveFilters())
	assert.True(t, dto.ProveedorFiltros{SoloActivos: true}.HasActiveFilters())
}

func TestPageRequest_DefaultPage(t *testing.T) {
	var p dto.PageRequest
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	grande := dto.PageRequest{Limit: 500, Offset: -2}
	grande.DefaultPage()
	assert.Equal(t, 100, grande.Limit, "el límite se acota a 100")
	assert.Equal(t, 0, grande.Offset)
}
