// Package pdf implementa la generación de la Ficha del Trabajador en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ficha del Trabajador │ Nombre + RUT                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS PERSONALES: dirección / teléfono / email / nacimiento│
//	│  DATOS LABORALES: cargo / ingreso / área / departamento     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTOS DE EMERGENCIA (tabla)                            │
//	│  CARGAS FAMILIARES (tabla)                                  │
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

	appdir "github.com/Diego-69/taller-aplicaciones/internal/application/directory"
	"github.com/Diego-69/taller-aplicaciones/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appdir.FichaPDFGenerator = (*MarotoFichaGenerator)(nil)

// MarotoFichaGenerator implementa directory.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

// NewMarotoFichaGenerator construye el generador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GenerateFichaPDF genera el PDF de la ficha y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerateFichaPDF(
	_ context.Context,
	detail *entity.WorkerDetail,
	areas, departamentos map[int]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha del Trabajador", true).
		WithAuthor("SIGERH", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(detail))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("Datos Personales"))
	m.AddRows(personalRows(detail)...)
	m.AddRows(sectionTitle("Datos Laborales"))
	m.AddRows(laboralRows(detail, areas, departamentos)...)

	if len(detail.Emergencia) > 0 {
		m.AddRows(sectionTitle("Contactos de Emergencia"))
		m.AddRows(tableHeader("Nombre", 4, "Relación", 4, "Teléfono", 4))
		for _, c := range detail.Emergencia {
			m.AddRows(row.New(6).Add(
				cell(4, c.Nombre), cell(4, c.Relacion), cell(4, c.Telefono),
			))
		}
	}

	if len(detail.Cargas) > 0 {
		m.AddRows(sectionTitle("Cargas Familiares"))
		m.AddRows(row.New(7).Add(
			headerCell(4, "Nombre"), headerCell(3, "Parentesco"),
			headerCell(2, "Sexo"), headerCell(3, "RUT"),
		))
		for _, c := range detail.Cargas {
			m.AddRows(row.New(6).Add(
				cell(4, c.Nombre), cell(3, c.Parentesco), cell(2, c.Sexo), cell(3, c.RUT),
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(detail *entity.WorkerDetail) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Ficha del Trabajador", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SIGERH - El Correo de Yury", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(detail.Personal.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("RUT: "+detail.Personal.RUT, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

func personalRows(detail *entity.WorkerDetail) []core.Row {
	p := detail.Personal
	return []core.Row{
		labeledRow("Sexo", p.Sexo, "Fecha de Nacimiento", p.FechaNacimiento.Format("02/01/2006")),
		labeledRow("Dirección", p.Direccion, "Teléfono", p.Telefono),
		labeledRow("Email", p.Email, "", ""),
	}
}

func laboralRows(detail *entity.WorkerDetail, areas, departamentos map[int]string) []core.Row {
	l := detail.Laboral
	return []core.Row{
		labeledRow("Cargo", l.Cargo, "Fecha de Ingreso", l.FechaIngreso.Format("02/01/2006")),
		labeledRow("Área", areas[l.AreaID], "Departamento", departamentos[l.DepartamentoID]),
		labeledRow("Sueldo Base", "$ "+l.SueldoBase.StringFixed(0), "Estado", l.Estado),
	}
}

// labeledRow dos pares etiqueta/valor por fila; el segundo par puede ir vacío.
func labeledRow(label1, value1, label2, value2 string) core.Row {
	cols := []core.Col{
		col.New(2).Add(text.New(label1+":", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray})),
		col.New(4).Add(text.New(value1, props.Text{Size: 9})),
	}
	if label2 != "" {
		cols = append(cols,
			col.New(2).Add(text.New(label2+":", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray})),
			col.New(4).Add(text.New(value2, props.Text{Size: 9})),
		)
	}
	return row.New(6).Add(cols...)
}

func tableHeader(l1 string, s1 int, l2 string, s2 int, l3 string, s3 int) core.Row {
	return row.New(7).Add(headerCell(s1, l1), headerCell(s2, l2), headerCell(s3, l3))
}

func headerCell(size int, label string) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary,
	}))
}

func cell(size int, value string) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 9}))
}
