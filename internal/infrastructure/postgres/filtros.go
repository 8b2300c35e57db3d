package postgres

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/southgenetics/inventario-api/internal/application/dto"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Traducción determinista de los filtros de listado a fragmentos SQL:
// mismo struct de filtros => mismo WHERE/ORDER BY y mismos argumentos.
// Un campo vacío o en su default no genera condición. Los rangos de fecha
// son inclusivos: fecha_hasta se traduce como created_at < (fecha + 1 día).

// normalizarTermino pasa el término de búsqueda a minúsculas y le quita los
// diacríticos ("Código" -> "codigo"), para que la búsqueda sea insensible a
// acentos del lado del input.
func normalizarTermino(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// sinAcentos devuelve la expresión SQL que normaliza una columna igual que
// normalizarTermino (minúsculas, acentos del español fuera). Evita depender
// de la extensión unaccent.
func sinAcentos(col string) string {
	return fmt.Sprintf("translate(lower(coalesce(%s, '')), 'áéíóúüñ', 'aeiouun')", col)
}

// condiciones acumula fragmentos WHERE con placeholders posicionales.
type condiciones struct {
	frags []string
	args  []any
}

// placeholder registra un argumento y devuelve su marcador ($1, $2, ...).
func (c *condiciones) placeholder(v any) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *condiciones) agregar(frag string) {
	c.frags = append(c.frags, frag)
}

// whereSQL devuelve la cláusula WHERE (con espacio inicial) o cadena vacía.
func (c *condiciones) whereSQL() string {
	if len(c.frags) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.frags, " AND ")
}

// rangoFechas agrega las condiciones de rango sobre col. Fechas con formato
// inválido se ignoran (la UI no las produce).
func (c *condiciones) rangoFechas(col, desde, hasta string) {
	if desde != "" {
		if d, err := time.Parse("2006-01-02", desde); err == nil {
			c.agregar(fmt.Sprintf("%s >= %s", col, c.placeholder(d)))
		}
	}
	if hasta != "" {
		if h, err := time.Parse("2006-01-02", hasta); err == nil {
			// inclusivo: todo el día de fecha_hasta entra en el rango
			c.agregar(fmt.Sprintf("%s < %s", col, c.placeholder(h.AddDate(0, 0, 1))))
		}
	}
}

// ordenSQL arma el ORDER BY con whitelist de columnas; valores fuera de la
// lista caen al default para no interpolar input del cliente.
func ordenSQL(permitidas map[string]string, sortBy, sortOrder, defaultCol, defaultOrder string) string {
	col, ok := permitidas[sortBy]
	if !ok {
		col = permitidas[defaultCol]
	}
	orden := strings.ToLower(sortOrder)
	if orden != "asc" && orden != "desc" {
		orden = defaultOrder
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, strings.ToUpper(orden))
}

// ── Productos ──

var productoSortCols = map[string]string{
	"nombre":       "nombre",
	"created_at":   "created_at",
	"stock_actual": "stock_actual",
	"precio":       "precio",
}

func productoFiltroSQL(f dto.ProductoFiltros) (string, []any) {
	f.Normalizar()
	var c condiciones
	if f.Busqueda != "" {
		p := c.placeholder("%" + normalizarTermino(f.Busqueda) + "%")
		c.agregar(fmt.Sprintf("(%s LIKE %s OR %s LIKE %s OR %s LIKE %s)",
			sinAcentos("nombre"), p, sinAcentos("codigo"), p, sinAcentos("descripcion"), p))
	}
	c.rangoFechas("created_at", f.FechaDesde, f.FechaHasta)
	switch f.Stock {
	case dto.StockBajo:
		c.agregar("stock_actual < 10")
	case dto.StockNormal:
		c.agregar("stock_actual >= 10 AND stock_actual <= 50")
	case dto.StockAlto:
		c.agregar("stock_actual > 50")
	}
	return c.whereSQL(), c.args
}

func productoOrdenSQL(f dto.ProductoFiltros) string {
	f.Normalizar()
	return ordenSQL(productoSortCols, f.SortBy, f.SortOrder, "created_at", "desc")
}

// ── Movimientos (tabla con alias m) ──

var movimientoSortCols = map[string]string{
	"created_at": "m.created_at",
	"tipo":       "m.tipo",
	"cantidad":   "m.cantidad",
}

func movimientoFiltroSQL(f dto.MovimientoFiltros) (string, []any) {
	f.Normalizar()
	var c condiciones
	if f.Busqueda != "" {
		p := c.placeholder("%" + normalizarTermino(f.Busqueda) + "%")
		c.agregar(fmt.Sprintf(
			"(%s LIKE %s OR %s LIKE %s OR EXISTS (SELECT 1 FROM productos p WHERE p.id = m.producto_id AND (%s LIKE %s OR %s LIKE %s)))",
			sinAcentos("m.usuario"), p, sinAcentos("m.motivo"), p,
			sinAcentos("p.nombre"), p, sinAcentos("p.codigo"), p))
	}
	if f.Tipo != "" && f.Tipo != dto.TipoTodos {
		c.agregar(fmt.Sprintf("m.tipo = %s", c.placeholder(f.Tipo)))
	}
	c.rangoFechas("m.created_at", f.FechaDesde, f.FechaHasta)
	return c.whereSQL(), c.args
}

func movimientoOrdenSQL(f dto.MovimientoFiltros) string {
	f.Normalizar()
	return ordenSQL(movimientoSortCols, f.SortBy, f.SortOrder, "created_at", "desc")
}

// ── Proveedores ──

var proveedorSortCols = map[string]string{
	"nombre":       "nombre",
	"calificacion": "calificacion",
	"created_at":   "created_at",
}

func proveedorFiltroSQL(f dto.ProveedorFiltros) (string, []any) {
	f.Normalizar()
	var c condiciones
	if f.Busqueda != "" {
		p := c.placeholder("%" + normalizarTermino(f.Busqueda) + "%")
		c.agregar(fmt.Sprintf("(%s LIKE %s OR %s LIKE %s OR %s LIKE %s)",
			sinAcentos("nombre"), p, sinAcentos("contacto"), p, sinAcentos("email"), p))
	}
	if f.CalificacionMin > 0 {
		c.agregar(fmt.Sprintf("calificacion >= %s", c.placeholder(f.CalificacionMin)))
	}
	if f.SoloActivos {
		c.agregar("activo = TRUE")
	}
	return c.whereSQL(), c.args
}

func proveedorOrdenSQL(f dto.ProveedorFiltros) string {
	f.Normalizar()
	return ordenSQL(proveedorSortCols, f.SortBy, f.SortOrder, "nombre", "asc")
}
