// Package pdf genera el informe de existencias en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros    │  Generado por + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bodega | Producto | Unidad | Cantidad | Actualizado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: registros / unidades                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

var _ ports.StockReportGenerator = (*MarotoStockReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReport implementa ports.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	printer *message.Printer
}

// NewMarotoStockReport construye el generador; los números se formatean en español.
func NewMarotoStockReport() *MarotoStockReport {
	return &MarotoStockReport{printer: message.NewPrinter(language.Spanish)}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(ctx context.Context, report dto.StockReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(nonEmpty(report.GeneratedBy, "consola"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	total := 0
	for i, s := range report.Rows {
		total += s.Count
		m.AddRows(g.detailRow(i, s))
	}
	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin existencias para los filtros indicados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(len(report.Rows), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoStockReport) headerRow(report dto.StockReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(describeFilter(report.Filter), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado por: "+nonEmpty(report.GeneratedBy, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Bodega", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Unidad", 1, align.Center),
		h("Cantidad", 2, align.Right),
		h("Actualizado", 2, align.Right),
	)
}

func (g *MarotoStockReport) detailRow(i int, s entity.StockSnapshot) core.Row {
	warehouse, product, unit := "-", "-", ""
	if s.Warehouse != nil {
		warehouse = s.Warehouse.Name
	}
	if s.Product != nil {
		product = s.Product.Name
		unit = s.Product.Unit
	}
	updated := "-"
	if t, ok := s.LastUpdateTime(); ok {
		updated = t.Format("02/01/2006 15:04")
	}
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	r := row.New(6).Add(
		cell(warehouse, 3, align.Left),
		cell(product, 4, align.Left),
		cell(unit, 1, align.Center),
		cell(g.printer.Sprintf("%d", s.Count), 2, align.Right),
		cell(updated, 2, align.Right),
	)
	if i%2 == 1 {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func (g *MarotoStockReport) totalsRow(records, units int) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(5).Add(text.New(
			g.printer.Sprintf("%d registros · %d unidades", records, units),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func describeFilter(f dto.StockFilter) string {
	var parts []string
	if f.ProductName != "" {
		parts = append(parts, "Producto: "+f.ProductName)
	}
	if f.WarehouseID != "" {
		parts = append(parts, "Bodega: "+f.WarehouseID)
	}
	if len(parts) == 0 {
		return "Todas las bodegas y productos"
	}
	return strings.Join(parts, "   |   ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
