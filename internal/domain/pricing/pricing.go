// Package pricing implementa el motor de precios de cotizaciones (servicio de
// dominio, funciones puras sobre decimal.Decimal).
//
// Existen dos políticas históricas de descuento/impuesto:
//
//	percent_discount: IGV 18% siempre aplicado; descuento como porcentaje
//	                  sobre (subtotal + IGV).
//	fixed_discount:   IGV 18% conmutable (IncludeTax); servicio de
//	                  implementación opcional (precio unitario × cantidad,
//	                  no gravado); descuento como monto fijo en soles.
//
// Ambas se modelan detrás de la interfaz Policy para no duplicar el bucle de
// agregación del subtotal.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IGVRate es la tasa del Impuesto General a las Ventas peruano (18%).
// Constante de dominio: todo cálculo de impuesto pasa por aquí.
var IGVRate = decimal.New(18, -2)

var oneHundred = decimal.NewFromInt(100)

// Selection es una línea de selección de norma ISO con hasta tres servicios.
// Un servicio apagado aporta 0 al subtotal aunque tenga precio almacenado.
type Selection struct {
	ISOID                string
	Certification        bool
	CertificationPrice   decimal.Decimal
	FollowUp             bool
	FollowUpPrice        decimal.Decimal
	Recertification      bool
	RecertificationPrice decimal.Decimal
}

// IsEmpty indica si la selección no tiene ningún servicio habilitado.
// Las selecciones vacías no se persisten.
func (s Selection) IsEmpty() bool {
	return !s.Certification && !s.FollowUp && !s.Recertification
}

// Amount devuelve el aporte de la selección al subtotal.
func (s Selection) Amount() decimal.Decimal {
	total := decimal.Zero
	if s.Certification {
		total = total.Add(s.CertificationPrice)
	}
	if s.FollowUp {
		total = total.Add(s.FollowUpPrice)
	}
	if s.Recertification {
		total = total.Add(s.RecertificationPrice)
	}
	return total
}

// Prune elimina las selecciones sin servicios habilitados.
func Prune(items []Selection) []Selection {
	out := make([]Selection, 0, len(items))
	for _, s := range items {
		if !s.IsEmpty() {
			out = append(out, s)
		}
	}
	return out
}

// Subtotal suma los componentes habilitados de todas las selecciones.
func Subtotal(items []Selection) decimal.Decimal {
	total := decimal.Zero
	for _, s := range items {
		total = total.Add(s.Amount())
	}
	return total
}

// Totals es el desglose calculado de una cotización.
type Totals struct {
	Subtotal       decimal.Decimal
	IGV            decimal.Decimal
	Implementation decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
}

// Policy calcula el desglose de totales a partir de un subtotal ya agregado.
type Policy interface {
	Compute(subtotal decimal.Decimal) Totals
}

// ComputeTotals agrega las selecciones y aplica la política.
// Es determinista: mismas entradas producen siempre los mismos totales.
func ComputeTotals(items []Selection, p Policy) Totals {
	return p.Compute(Subtotal(items))
}

// PercentDiscount es la política original: IGV siempre aplicado y descuento
// porcentual sobre el total con IGV. El motor no recorta Percent al rango
// [0,100]; calcula literalmente lo que recibe.
type PercentDiscount struct {
	Percent decimal.Decimal
}

// Compute implementa Policy.
func (p PercentDiscount) Compute(subtotal decimal.Decimal) Totals {
	igv := subtotal.Mul(IGVRate)
	withTax := subtotal.Add(igv)
	discount := withTax.Mul(p.Percent).Div(oneHundred)
	return Totals{
		Subtotal: subtotal,
		IGV:      igv,
		Discount: discount,
		Total:    withTax.Sub(discount),
	}
}

// Implementation es el servicio opcional de implementación del sistema de
// gestión: precio unitario por cantidad de meses/sedes, no gravado con IGV.
type Implementation struct {
	Enabled   bool
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Total devuelve UnitPrice × Quantity, o cero si está deshabilitado.
func (i Implementation) Total() decimal.Decimal {
	if !i.Enabled {
		return decimal.Zero
	}
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// FixedDiscount es la política posterior: IGV conmutable, implementación
// opcional sumada antes del descuento, y descuento como monto fijo restado
// del total general.
type FixedDiscount struct {
	IncludeTax     bool
	Amount         decimal.Decimal
	Implementation Implementation
}

// Compute implementa Policy.
func (p FixedDiscount) Compute(subtotal decimal.Decimal) Totals {
	igv := decimal.Zero
	if p.IncludeTax {
		igv = subtotal.Mul(IGVRate)
	}
	impl := p.Implementation.Total()
	general := subtotal.Add(igv).Add(impl)
	return Totals{
		Subtotal:       subtotal,
		IGV:            igv,
		Implementation: impl,
		Discount:       p.Amount,
		Total:          general.Sub(p.Amount),
	}
}

// ParseAmount convierte entrada numérica de formularios en decimal.
// La entrada no parseable se trata como 0: política de lenidad heredada de la
// UI, hecha explícita y testeable aquí.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
