package postgres

import (
	"testing"
	"time"

	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// La traducción de filtros a SQL debe ser determinista: mismo struct de filtros
// => mismo WHERE, mismo ORDER BY y mismos argumentos, siempre. Estos tests
// fijan ese contrato y los brackets de stock de la UI.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizarTermino_QuitaAcentosYMayusculas(t *testing.T) {
	casos := map[string]string{
		"Código":      "codigo",
		"  BÚSQUEDA ": "busqueda",
		"reactivo":    "reactivo",
		"Año":         "ano",
		"":            "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, normalizarTermino(entrada), "entrada %q", entrada)
	}
}

func TestProductoFiltroSQL_SinFiltrosNoGeneraWhere(t *testing.T) {
	where, args := productoFiltroSQL(dto.ProductoFiltros{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestProductoFiltroSQL_Determinista(t *testing.T) {
	f := dto.ProductoFiltros{Busqueda: "ácido", Stock: dto.StockBajo, FechaDesde: "2026-01-01"}

	where1, args1 := productoFiltroSQL(f)
	where2, args2 := productoFiltroSQL(f)

	assert.Equal(t, where1, where2)
	assert.Equal(t, args1, args2)
}

func TestProductoFiltroSQL_BusquedaNormalizada(t *testing.T) {
	where, args := productoFiltroSQL(dto.ProductoFiltros{Busqueda: "Código"})

	require.Len(t, args, 1)
	assert.Equal(t, "%codigo%", args[0])
	assert.Contains(t, where, "nombre")
	assert.Contains(t, where, "codigo")
	assert.Contains(t, where, "descripcion")
}

func TestProductoFiltroSQL_BracketsDeStock(t *testing.T) {
	casos := []struct {
		stock     string
		fragmento string
	}{
		{dto.StockBajo, "stock_actual < 10"},
		{dto.StockNormal, "stock_actual >= 10 AND stock_actual <= 50"},
		{dto.StockAlto, "stock_actual > 50"},
	}
	for _, c := range casos {
		where, args := productoFiltroSQL(dto.ProductoFiltros{Stock: c.stock})
		assert.Contains(t, where, c.fragmento, "stock=%s", c.stock)
		assert.Empty(t, args, "los brackets no llevan argumentos")
	}

	// "all" y vacío no imponen condición
	for _, stock := range []string{dto.StockTodos, ""} {
		where, _ := productoFiltroSQL(dto.ProductoFiltros{Stock: stock})
		assert.Empty(t, where, "stock=%q", stock)
	}
}

func TestRangoFechas_HastaEsInclusivo(t *testing.T) {
	where, args := productoFiltroSQL(dto.ProductoFiltros{
		FechaDesde: "2026-03-01",
		FechaHasta: "2026-03-31",
	})

	assert.Contains(t, where, "created_at >= $1")
	assert.Contains(t, where, "created_at < $2")
	require.Len(t, args, 2)

	desde, ok := args[0].(time.Time)
	require.True(t, ok)
	hasta, ok := args[1].(time.Time)
	require.True(t, ok)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), desde)
	// el límite superior es el día siguiente exclusivo: todo el 31 entra
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), hasta)
}

func TestRangoFechas_FechaInvalidaSeIgnora(t *testing.T) {
	where, args := productoFiltroSQL(dto.ProductoFiltros{FechaDesde: "31/03/2026"})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestProductoOrdenSQL_WhitelistYDefault(t *testing.T) {
	// default: created_at DESC
	assert.Equal(t, " ORDER BY created_at DESC", productoOrdenSQL(dto.ProductoFiltros{}))

	// columna permitida
	assert.Equal(t, " ORDER BY precio ASC",
		productoOrdenSQL(dto.ProductoFiltros{SortBy: "precio", SortOrder: "asc"}))

	// columna fuera de la whitelist cae al default (nunca se interpola input)
	assert.Equal(t, " ORDER BY created_at DESC",
		productoOrdenSQL(dto.ProductoFiltros{SortBy: "precio; DROP TABLE productos", SortOrder: "desc"}))

	// orden inválido cae al default
	assert.Equal(t, " ORDER BY nombre DESC",
		productoOrdenSQL(dto.ProductoFiltros{SortBy: "nombre", SortOrder: "descending"}))
}

func TestMovimientoFiltroSQL_TipoAllNoFiltra(t *testing.T) {
	for _, tipo := range []string{"", dto.TipoTodos} {
		where, args := movimientoFiltroSQL(dto.MovimientoFiltros{Tipo: tipo})
		assert.Empty(t, where, "tipo=%q", tipo)
		assert.Empty(t, args)
	}
}

func TestMovimientoFiltroSQL_TipoConcreto(t *testing.T) {
	where, args := movimientoFiltroSQL(dto.MovimientoFiltros{Tipo: "entrada"})

	assert.Contains(t, where, "m.tipo = $1")
	require.Len(t, args, 1)
	assert.Equal(t, "entrada", args[0])
}

func TestMovimientoFiltroSQL_BusquedaIncluyeProducto(t *testing.T) {
	where, args := movimientoFiltroSQL(dto.MovimientoFiltros{Busqueda: "reactivo"})

	// la búsqueda cruza a la tabla de productos por nombre y código
	assert.Contains(t, where, "m.usuario")
	assert.Contains(t, where, "m.motivo")
	assert.Contains(t, where, "p.nombre")
	assert.Contains(t, where, "p.codigo")
	require.Len(t, args, 1)
	assert.Equal(t, "%reactivo%", args[0])
}

func TestMovimientoOrdenSQL_Default(t *testing.T) {
	assert.Equal(t, " ORDER BY m.created_at DESC", movimientoOrdenSQL(dto.MovimientoFiltros{}))
	assert.Equal(t, " ORDER BY m.cantidad ASC",
		movimientoOrdenSQL(dto.MovimientoFiltros{SortBy: "cantidad", SortOrder: "asc"}))
}

func TestProveedorFiltroSQL_Combinado(t *testing.T) {
	where, args := proveedorFiltroSQL(dto.ProveedorFiltros{
		Busqueda:        "Genética",
		CalificacionMin: 3,
		SoloActivos:     true,
	})

	assert.Contains(t, where, "calificacion >= $2")
	assert.Contains(t, where, "activo = TRUE")
	require.Len(t, args, 2)
	assert.Equal(t, "%genetica%", args[0])
	assert.Equal(t, 3, args[1])
}

func TestProveedorOrdenSQL_Default(t *testing.T) {
	assert.Equal(t, " ORDER BY nombre ASC", proveedorOrdenSQL(dto.ProveedorFiltros{}))
}
