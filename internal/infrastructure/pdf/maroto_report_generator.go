// Package pdf implementa la generación del reporte de inventario imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SouthGenetics  │  REPORTE DE INVENTARIO + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total productos / Valor total del inventario      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Stock | Mín. | Precio | Valor   │
//	│  (los productos en o bajo su stock mínimo van en rojo)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/southgenetics/inventario-api/internal/application/reports"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ reports.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerarReporteInventario genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerarReporteInventario(
	_ context.Context,
	productos []*entity.Producto,
	generadoEn time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor("SouthGenetics", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(productos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range productos {
		m.AddRows(productoRow(p))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(generadoEn))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha (der).
func headerRow(generadoEn time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("SouthGenetics", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de inventario de laboratorio", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generadoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// resumenRow: totales del inventario al momento de generar.
func resumenRow(productos []*entity.Producto) core.Row {
	valorTotal := decimal.Zero
	stockBajo := 0
	for _, p := range productos {
		valorTotal = valorTotal.Add(p.Precio.Mul(decimal.NewFromInt(int64(p.StockActual))))
		if p.StockBajo() {
			stockBajo++
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Productos: %d   |   Con stock bajo: %d   |   Valor total: $%s",
				len(productos), stockBajo, valorTotal.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// productoRow: una fila por producto; stock en rojo si está en o bajo el mínimo.
func productoRow(p *entity.Producto) core.Row {
	colorStock := colorGray
	if p.StockBajo() {
		colorStock = colorAlerta
	}
	valor := p.Precio.Mul(decimal.NewFromInt(int64(p.StockActual)))

	return row.New(7).Add(
		col.New(2).Add(text.New(p.Codigo, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(p.Nombre, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.StockActual), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorStock,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.StockMinimo), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: colorGray,
		})),
		col.New(2).Add(text.New("$"+p.Precio.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New("$"+valor.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// footerRow: leyenda de generación.
func footerRow(generadoEn time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente por el sistema de inventario de SouthGenetics el "+
				generadoEn.Format("02/01/2006")+". Los valores reflejan el estado del stock al momento de la generación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
