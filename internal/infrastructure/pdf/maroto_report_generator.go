// Package pdf genera el reporte de progreso de casos de uso.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros    │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Progreso promedio | Completados | En progreso ... │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Caso de uso | Hechas/Total | % | Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de casos listados                            │
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

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/ports"
)

var _ ports.UseCaseReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDone    = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorActive  = &props.Color{Red: 180, Green: 110, Blue: 0}
)

const maxNameLen = 70

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.UseCaseReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateUseCaseReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateUseCaseReport(_ context.Context, report *dto.UseCaseReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	for _, r := range tableRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.UseCaseReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Filter, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: progreso promedio de los casos listados y distribución por estado.
func summaryRow(report *dto.UseCaseReport) core.Row {
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 5}),
		)
	}
	return row.New(14).Add(
		kpi("PROGRESO PROMEDIO", fmt.Sprintf("%d%%", report.Overall.Percent), colorPrimary),
		kpi("COMPLETADOS", fmt.Sprint(report.Distribution.Completed), colorDone),
		kpi("EN PROGRESO", fmt.Sprint(report.Distribution.InProgress), colorActive),
		kpi("SIN INICIAR", fmt.Sprint(report.Distribution.NotStarted), colorGray),
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
		h("ID", 2, align.Left),
		h("Caso de uso", 5, align.Left),
		h("TFs hechas", 2, align.Center),
		h("%", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableRows: una fila por caso de uso.
func tableRows(items []dto.UseCaseSummaryDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.ID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(truncate(it.Name, maxNameLen), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d/%d", it.Done, it.Total), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d%%", it.Percent), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(statusLabel(it.Status), props.Text{
				Size: 7, Align: align.Center, Top: 1.5, Color: statusColor(it.Status),
			})),
		))
	}
	return result
}

func footerRow(report *dto.UseCaseReport) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d casos de uso listados. El porcentaje de cada caso es el promedio de sus funciones técnicas vinculadas.",
			len(report.Items)), props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case "COMPLETED":
		return "Completado"
	case "IN_PROGRESS":
		return "En progreso"
	default:
		return "Sin iniciar"
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case "COMPLETED":
		return colorDone
	case "IN_PROGRESS":
		return colorActive
	default:
		return colorGray
	}
}

// truncate corta s a n runas agregando "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
