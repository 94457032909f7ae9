// Package pdf genera el reporte PDF del dashboard de costos y márgenes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante │ Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: Ingresos / Gastos / Utilidad / Margen / Ticket │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Top productos por margen                             │
//	│  TABLA: Ventas por empleado                                  │
//	│  TABLA: Gastos por categoría                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota sobre costos estimados                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.DashboardPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa analytics.DashboardPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	title string
	fmt   *format.Printer
}

// NewMarotoPDFGenerator construye el generador. title suele ser el nombre del restaurante.
func NewMarotoPDFGenerator(title string, printer *format.Printer) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{title: title, fmt: printer}
}

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDashboardPDF(_ context.Context, report *analytics.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de costos y márgenes", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TOP PRODUCTOS POR MARGEN"))
	m.AddRows(tableHeader(
		headerCol{"Producto", 4, align.Left},
		headerCol{"Unid.", 1, align.Center},
		headerCol{"Ingresos", 2, align.Right},
		headerCol{"Costo", 2, align.Right},
		headerCol{"Margen", 2, align.Right},
		headerCol{"%", 1, align.Right},
	))
	m.AddRows(g.productRows(report)...)

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("VENTAS POR EMPLEADO"))
	m.AddRows(tableHeader(
		headerCol{"Empleado", 6, align.Left},
		headerCol{"Ventas", 2, align.Center},
		headerCol{"Ingresos", 4, align.Right},
	))
	m.AddRows(g.employeeRows(report)...)

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("GASTOS POR CATEGORÍA"))
	m.AddRows(tableHeader(
		headerCol{"Categoría", 6, align.Left},
		headerCol{"Registros", 2, align.Center},
		headerCol{"Monto", 4, align.Right},
	))
	m.AddRows(g.expenseRows(report)...)

	m.AddRows(row.New(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(report *analytics.Report) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de costos y márgenes", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) kpiRows(report *analytics.Report) []core.Row {
	s := report.Stats
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 6, Align: align.Center}),
		)
	}
	profitColor := colorPrimary
	if s.NetProfit.IsNegative() {
		profitColor = colorLoss
	}
	return []core.Row{
		row.New(14).Add(
			kpi("Ingresos", g.fmt.Money(s.TotalRevenue), colorPrimary),
			kpi("Gastos totales", g.fmt.Money(s.TotalExpenses), colorPrimary),
			kpi("Utilidad neta", g.fmt.Money(s.NetProfit), profitColor),
			kpi("Margen", g.fmt.Percent(s.ProfitMargin), profitColor),
		),
		row.New(14).Add(
			kpi("Gastos registrados", g.fmt.Money(s.LoggedExpenses), colorGray),
			kpi("Costo de lo vendido", g.fmt.Money(s.ProductCosts), colorGray),
			kpi("Ticket promedio", g.fmt.Money(s.AverageOrderValue), colorGray),
			kpi("N° de ventas", g.fmt.Int(s.NumberOfSales), colorGray),
		),
	}
}

func (g *MarotoPDFGenerator) productRows(report *analytics.Report) []core.Row {
	if len(report.Stats.TopProducts) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(report.Stats.TopProducts))
	for _, p := range report.Stats.TopProducts {
		marginColor := colorPrimary
		if p.Margin.IsNegative() {
			marginColor = colorLoss
		}
		rows = append(rows, row.New(6).Add(
			cell(p.ProductName, 4, align.Left, nil),
			cell(g.fmt.Int(p.UnitsSold), 1, align.Center, nil),
			cell(g.fmt.Money(p.Revenue), 2, align.Right, nil),
			cell(g.fmt.Money(p.TotalCost), 2, align.Right, nil),
			cell(g.fmt.Money(p.Margin), 2, align.Right, marginColor),
			cell(g.fmt.Percent(p.MarginPercentage), 1, align.Right, marginColor),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) employeeRows(report *analytics.Report) []core.Row {
	if len(report.Employees) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(report.Employees))
	for _, e := range report.Employees {
		rows = append(rows, row.New(6).Add(
			cell(e.EmployeeName, 6, align.Left, nil),
			cell(g.fmt.Int(e.NumberOfSales), 2, align.Center, nil),
			cell(g.fmt.Money(e.TotalRevenue), 4, align.Right, nil),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) expenseRows(report *analytics.Report) []core.Row {
	if len(report.Expenses) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(report.Expenses))
	for _, e := range report.Expenses {
		rows = append(rows, row.New(6).Add(
			cell(e.Category, 6, align.Left, nil),
			cell(g.fmt.Int(e.Count), 2, align.Center, nil),
			cell(g.fmt.Money(e.TotalAmount), 4, align.Right, nil),
		))
	}
	return rows
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Los costos por producto son estimados: ingredientes a costo unitario fijo, "+
				"mano de obra con la tarifa promedio del personal y bodegaje prorrateado por día.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

type headerCol struct {
	label string
	size  int
	align align.Type
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeader(cols ...headerCol) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(out...)
}

func cell(s string, size int, a align.Type, c *props.Color) core.Col {
	return col.New(size).Add(text.New(s, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c,
	}))
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin datos", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}
