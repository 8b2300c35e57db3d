package dto

// Filtros de listado. La traducción a SQL es determinista: un valor vacío o en
// su default no impone ninguna condición; los rangos de fecha son inclusivos en
// ambos extremos. Las fechas llegan como "YYYY-MM-DD" tal cual las envía la UI.

// Brackets de stock para el filtro de productos.
const (
	StockTodos  = "all"
	StockBajo   = "low"    // stock_actual < 10
	StockNormal = "normal" // 10 <= stock_actual <= 50
	StockAlto   = "high"   // stock_actual > 50
)

// ProductoFiltros filtros del listado de productos.
type ProductoFiltros struct {
	Busqueda   string `query:"busqueda"`    // nombre, código o descripción
	FechaDesde string `query:"fecha_desde"` // YYYY-MM-DD
	FechaHasta string `query:"fecha_hasta"` // YYYY-MM-DD
	Stock      string `query:"stock"`       // all | low | normal | high
	SortBy     string `query:"sort_by"`     // nombre | created_at | stock_actual | precio
	SortOrder  string `query:"sort_order"`  // asc | desc
}

// Normalizar aplica los defaults de la UI.
func (f *ProductoFiltros) Normalizar() {
	if f.Stock == "" {
		f.Stock = StockTodos
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
}

// HasActiveFilters es true si algún campo difiere de su default (el orden no
// cuenta como filtro: solo afecta la presentación).
func (f ProductoFiltros) HasActiveFilters() bool {
	return f.Busqueda != "" || f.FechaDesde != "" || f.FechaHasta != "" ||
		(f.Stock != "" && f.Stock != StockTodos)
}

// TipoTodos valor por defecto del filtro de tipo de movimiento.
const TipoTodos = "all"

// MovimientoFiltros filtros del listado de movimientos.
type MovimientoFiltros struct {
	Busqueda   string `query:"busqueda"` // producto, usuario o motivo
	Tipo       string `query:"tipo"`     // all | entrada | salida | ajuste | transferencia
	FechaDesde string `query:"fecha_desde"`
	FechaHasta string `query:"fecha_hasta"`
	SortBy     string `query:"sort_by"`    // created_at | tipo | cantidad
	SortOrder  string `query:"sort_order"` // asc | desc
}

// Normalizar aplica los defaults de la UI.
func (f *MovimientoFiltros) Normalizar() {
	if f.Tipo == "" {
		f.Tipo = TipoTodos
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
}

// HasActiveFilters es true si algún campo difiere de su default.
func (f MovimientoFiltros) HasActiveFilters() bool {
	return f.Busqueda != "" || (f.Tipo != "" && f.Tipo != TipoTodos) ||
		f.FechaDesde != "" || f.FechaHasta != ""
}

// ProveedorFiltros filtros del listado de proveedores.
type ProveedorFiltros struct {
	Busqueda         string `query:"busqueda"` // nombre, contacto o email
	CalificacionMin  int    `query:"calificacion_min"`
	SoloActivos      bool   `query:"solo_activos"`
	SortBy           string `query:"sort_by"`    // nombre | calificacion | created_at
	SortOrder        string `query:"sort_order"` // asc | desc
}

// Normalizar aplica los defaults de la UI.
func (f *ProveedorFiltros) Normalizar() {
	if f.SortBy == "" {
		f.SortBy = "nombre"
	}
	if f.SortOrder == "" {
		f.SortOrder = "asc"
	}
}

// HasActiveFilters es true si algún campo difiere de su default.
func (f ProveedorFiltros) HasActiveFilters() bool {
	return f.Busqueda != "" || f.CalificacionMin > 0 || f.SoloActivos
}
