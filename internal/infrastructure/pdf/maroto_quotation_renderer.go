// Package pdf implementa la generación del documento de cotización de
// servicios de certificación ISO y la concatenación del adjunto
// institucional.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa certificadora  │  Código + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Razón social, RUC, representante, contacto        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Norma | Servicio | Importe                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IGV / Implementación / Dscto / TOTAL   │
//	│  SON: <importe en letras>                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FLUJO DE CERTIFICACIÓN (etapas ordenadas)                  │
//	│  CUENTAS BANCARIAS + datos del asesor                       │
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

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/quote"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/moneytext"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoQuotationRenderer implementa quote.DocumentRenderer usando Maroto v2.
type MarotoQuotationRenderer struct {
	companyName string
}

var _ quote.DocumentRenderer = (*MarotoQuotationRenderer)(nil)

// NewMarotoQuotationRenderer construye el renderer con el nombre de la
// empresa emisora para el encabezado.
func NewMarotoQuotationRenderer(companyName string) *MarotoQuotationRenderer {
	if companyName == "" {
		companyName = "CCD Certificaciones"
	}
	return &MarotoQuotationRenderer{companyName: companyName}
}

// Render genera el PDF de la cotización y devuelve sus bytes. El render corre
// en una goroutine propia; si el contexto vence antes de terminar se retorna
// domain.ErrRenderTimeout sin esperar al resultado.
func (g *MarotoQuotationRenderer) Render(ctx context.Context, doc *quote.Document) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := g.render(doc)
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, domain.ErrRenderTimeout
		}
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, res.err)
		}
		return res.data, nil
	}
}

func (g *MarotoQuotationRenderer) render(doc *quote.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+doc.Quotation.Code, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.companyName, doc.Quotation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc.Quotation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de servicios cotizados
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}

	// Totales e importe en letras
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Quotation))
	m.AddRows(amountInWordsRow(doc.Quotation))

	// Flujo de certificación
	if len(doc.Steps) > 0 {
		m.AddRows(line.NewRow(3))
		for _, r := range stepsRows(doc.Steps) {
			m.AddRows(r)
		}
	}

	// Cuentas bancarias y asesor
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range bankRows(doc.BankAccounts) {
		m.AddRows(r)
	}
	if doc.Advisor != nil {
		m.AddRows(advisorRow(doc.Advisor))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y código + fecha (der).
func headerRow(companyName string, q *entity.Quotation) core.Row {
	fecha := q.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cotización de Servicios de Certificación ISO", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(q.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente cotizado.
func clientRow(q *entity.Quotation) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(q.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RUC: %s   |   Representante: %s   |   Cel: %s   |   Email: %s",
				q.RUC,
				q.Representante,
				q.Celular,
				nonEmpty(q.Correo, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de servicios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Norma", 3, align.Left),
		h("Descripción", 4, align.Left),
		h("Servicio", 3, align.Left),
		h("Importe", 2, align.Right),
	)
}

// tableItemRows: una fila por servicio cotizado.
func tableItemRows(items []quote.DocumentItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				it.StandardCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				it.StandardName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				it.Service,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				moneytext.FormatPEN(it.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. Las filas de
// implementación y descuento solo aparecen cuando aplican.
func totalsRow(q *entity.Quotation) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{label("Subtotal:")}
	values := []core.Component{value(moneytext.FormatPEN(q.Subtotal))}
	if q.IncludeTax || !q.IGV.IsZero() {
		labels = append(labels, label("IGV (18%):"))
		values = append(values, value(moneytext.FormatPEN(q.IGV)))
	}
	if q.ImplEnabled {
		labels = append(labels, label("Implementación:"))
		values = append(values, value(moneytext.FormatPEN(q.ImplTotal)))
	}
	if !q.DiscountAmount.IsZero() {
		labels = append(labels, label("Descuento:"))
		values = append(values, value("- "+moneytext.FormatPEN(q.DiscountAmount)))
	}
	labels = append(labels, grandLabel("TOTAL:"))
	values = append(values, grandValue(moneytext.FormatPEN(q.Total)))

	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// amountInWordsRow: importe total en letras.
func amountInWordsRow(q *entity.Quotation) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("SON: "+moneytext.AmountToWords(q.Total), props.Text{
				Style: fontstyle.Italic, Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}

// stepsRows: etapas del flujo de certificación, ordenadas por posición.
func stepsRows(steps []*entity.CertificationStep) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("FLUJO DE CERTIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.Position, s.Title)
		if s.Description != "" {
			label += " — " + s.Description
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(label, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}

// bankRows: cuentas de pago de la empresa.
func bankRows(accounts []*entity.BankAccount) []core.Row {
	if len(accounts) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CUENTAS BANCARIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, acc := range accounts {
		label := fmt.Sprintf("%s (%s): %s   Titular: %s",
			acc.BankName, acc.Currency, acc.AccountNumber, acc.AccountHolder)
		if acc.CCI != "" {
			label += "   CCI: " + acc.CCI
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(label, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}

// advisorRow: asesor comercial que emite la cotización.
func advisorRow(a *entity.Advisor) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Asesor: %s   |   %s   |   %s",
				a.Name, a.Email, nonEmpty(a.Phone, "—"),
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
