// Package pdf implementa la generación de la Constancia de Registro: el
// comprobante descargable de que la cuenta completó el asistente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Vecindo + Folio │ Fecha de emisión                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TITULAR: Nombre / Email / Teléfono                          │
//	│  NEGOCIO: Nombre + Categoría + RUC (solo business)           │
//	│  DIRECCIÓN: Calles + Sector + División                       │
//	│  SUCURSAL: Tipo + Horarios (solo business)                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + Leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/vecindo/registro-api/internal/application/registro"
	"github.com/vecindo/registro-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 112, Blue: 84}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var diasSemana = map[time.Weekday]string{
	time.Sunday:    "Dom",
	time.Monday:    "Lun",
	time.Tuesday:   "Mar",
	time.Wednesday: "Mié",
	time.Thursday:  "Jue",
	time.Friday:    "Vie",
	time.Saturday:  "Sáb",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ registro.ConstanciaPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa registro.ConstanciaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	verifyBaseURL string // base de la URL que codifica el QR de verificación
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(verifyBaseURL string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{verifyBaseURL: verifyBaseURL}
}

// GenerateConstanciaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateConstanciaPDF(_ context.Context, data *registro.ConstanciaData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Constancia de Registro", true).
		WithAuthor("Vecindo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(titularRow(data.Account))
	if data.Business != nil {
		m.AddRows(negocioRow(data.Business))
	}
	if data.Address != nil {
		m.AddRows(direccionRow(data.Address))
	}
	if data.Branch != nil {
		m.AddRows(sucursalRow(data.Branch))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range g.footerRows(data) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + folio (izq) y fecha de emisión (der).
func headerRow(data *registro.ConstanciaData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Vecindo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Folio: "+data.Folio, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONSTANCIA DE REGISTRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(estadoConstancia(data), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+data.EmitidaEn.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// titularRow: datos del titular de la cuenta.
func titularRow(a *entity.Account) core.Row {
	nombre := a.Nombre + " " + a.Apellido
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TITULAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Rol: %s",
				a.Email,
				nonEmpty(a.Telefono, "—"),
				rolLegible(a.Role),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// negocioRow: datos del negocio (solo cuentas business).
func negocioRow(b *entity.Business) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("NEGOCIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(b.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Categoría: %s   |   RUC: %s",
				b.Categoria,
				nonEmpty(b.RUC, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// direccionRow: dirección principal registrada.
func direccionRow(a *entity.Address) core.Row {
	linea := a.Calles
	if a.Sector != "" {
		linea += ", " + a.Sector
	}
	if a.Ciudad != "" {
		linea += ", " + a.Ciudad
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DIRECCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Parroquia: %s   (%s, %s)",
				linea,
				nonEmpty(a.Parroquia, "—"),
				a.ProvinciaID, a.CantonID,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// sucursalRow: tipo de sucursal + horarios (solo business).
func sucursalRow(b *entity.Branch) core.Row {
	horarios := ""
	for i, h := range b.Horarios {
		if i > 0 {
			horarios += "  ·  "
		}
		horarios += fmt.Sprintf("%s %s-%s", diasSemana[h.Dia], h.Desde, h.Hasta)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SUCURSAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   %s",
				b.Tipo,
				nonEmpty(horarios, "sin horario registrado"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// footerRows: QR de verificación + leyenda.
func (g *MarotoPDFGenerator) footerRows(data *registro.ConstanciaData) []core.Row {
	qrURL := fmt.Sprintf("%s/constancias/%s", g.verifyBaseURL, data.Folio)
	return []core.Row{
		row.New(42).Add(
			col.New(4).Add(code.NewQr(qrURL, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para validar\nesta constancia.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("CONSTANCIA DE REGISTRO\nVECINDO", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 20,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Esta constancia acredita que la cuenta completó el registro en la plataforma. "+
					"No sustituye documentos tributarios ni permisos municipales.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func estadoConstancia(data *registro.ConstanciaData) string {
	if data.Verificada {
		return "CUENTA VERIFICADA"
	}
	return "REGISTRO COMPLETO"
}

func rolLegible(role string) string {
	if role == entity.RoleBusiness {
		return "Negocio"
	}
	return "Cliente"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
