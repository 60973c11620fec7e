package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal y selecciones
// ──────────────────────────────────────────────────────────────────────────────

// Un servicio deshabilitado aporta 0 aunque tenga precio almacenado.
func TestSubtotal_ServicioDeshabilitadoNoSuma(t *testing.T) {
	items := []pricing.Selection{{
		ISOID:              "iso-9001",
		Certification:      false,
		CertificationPrice: dec("5000"),
		FollowUp:           true,
		FollowUpPrice:      dec("1200"),
	}}

	assert.True(t, dec("1200").Equal(pricing.Subtotal(items)),
		"solo el seguimiento habilitado debe sumar")
}

func TestSubtotal_SumaTodosLosComponentesHabilitados(t *testing.T) {
	items := []pricing.Selection{
		{
			Certification: true, CertificationPrice: dec("3000"),
			FollowUp: true, FollowUpPrice: dec("1500"),
			Recertification: true, RecertificationPrice: dec("2500"),
		},
		{
			Certification: true, CertificationPrice: dec("4000"),
		},
	}

	assert.True(t, dec("11000").Equal(pricing.Subtotal(items)))
}

func TestSelection_IsEmpty(t *testing.T) {
	vacia := pricing.Selection{CertificationPrice: dec("9999")}
	assert.True(t, vacia.IsEmpty(), "sin flags habilitados la selección es vacía")

	conServicio := pricing.Selection{FollowUp: true}
	assert.False(t, conServicio.IsEmpty())
}

func TestPrune_EliminaSeleccionesVacias(t *testing.T) {
	items := []pricing.Selection{
		{ISOID: "a", Certification: true, CertificationPrice: dec("100")},
		{ISOID: "b"}, // vacía: no debe persistirse
		{ISOID: "c", Recertification: true, RecertificationPrice: dec("200")},
	}

	pruned := pricing.Prune(items)
	require.Len(t, pruned, 2)
	assert.Equal(t, "a", pruned[0].ISOID)
	assert.Equal(t, "c", pruned[1].ISOID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política percent_discount (IGV siempre, descuento porcentual)
// ──────────────────────────────────────────────────────────────────────────────

func TestPercentDiscount_IGVSiempre18(t *testing.T) {
	p := pricing.PercentDiscount{Percent: decimal.Zero}
	totals := p.Compute(dec("1000"))

	assert.True(t, dec("180").Equal(totals.IGV), "IGV debe ser subtotal*0.18")
	assert.True(t, dec("1180").Equal(totals.Total))
}

// subtotal+IGV = 1180.00, descuento 10% → 118.00, total final 1062.00.
func TestPercentDiscount_DescuentoPorcentual(t *testing.T) {
	p := pricing.PercentDiscount{Percent: dec("10")}
	totals := p.Compute(dec("1000"))

	assert.True(t, dec("118").Equal(totals.Discount))
	assert.True(t, dec("1062").Equal(totals.Total))
}

// El motor no recorta el porcentaje: 150% produce un total negativo literal.
func TestPercentDiscount_SinClampDePorcentaje(t *testing.T) {
	p := pricing.PercentDiscount{Percent: dec("150")}
	totals := p.Compute(dec("1000"))

	assert.True(t, totals.Total.IsNegative(),
		"el cálculo es literal; el recorte de rango es responsabilidad de la UI")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política fixed_discount (IGV conmutable, implementación, descuento fijo)
// ──────────────────────────────────────────────────────────────────────────────

func TestFixedDiscount_IGVConmutable(t *testing.T) {
	conIGV := pricing.FixedDiscount{IncludeTax: true}
	sinIGV := pricing.FixedDiscount{IncludeTax: false}

	t1 := conIGV.Compute(dec("1000"))
	assert.True(t, dec("180").Equal(t1.IGV))
	assert.True(t, dec("1180").Equal(t1.Total))

	t2 := sinIGV.Compute(dec("1000"))
	assert.True(t, t2.IGV.IsZero())
	assert.True(t, dec("1000").Equal(t2.Total))
}

// totalGeneral = 1180.00, descuento fijo 200 → total final 980.00.
func TestFixedDiscount_DescuentoMontoFijo(t *testing.T) {
	p := pricing.FixedDiscount{IncludeTax: true, Amount: dec("200")}
	totals := p.Compute(dec("1000"))

	assert.True(t, dec("980").Equal(totals.Total))
}

// La implementación suma unitPrice*quantity sin IGV, antes del descuento.
func TestFixedDiscount_ImplementacionNoGravada(t *testing.T) {
	p := pricing.FixedDiscount{
		IncludeTax: true,
		Amount:     dec("100"),
		Implementation: pricing.Implementation{
			Enabled:   true,
			UnitPrice: dec("500"),
			Quantity:  3,
		},
	}
	totals := p.Compute(dec("1000"))

	assert.True(t, dec("1500").Equal(totals.Implementation))
	// IGV solo sobre el subtotal, no sobre la implementación
	assert.True(t, dec("180").Equal(totals.IGV))
	// 1000 + 180 + 1500 - 100
	assert.True(t, dec("2580").Equal(totals.Total))
}

func TestImplementation_DeshabilitadaEsCero(t *testing.T) {
	impl := pricing.Implementation{Enabled: false, UnitPrice: dec("500"), Quantity: 4}
	assert.True(t, impl.Total().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals: idempotencia y composición
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_Idempotente(t *testing.T) {
	items := []pricing.Selection{
		{Certification: true, CertificationPrice: dec("2500.50")},
		{FollowUp: true, FollowUpPrice: dec("999.99")},
	}
	policy := pricing.PercentDiscount{Percent: dec("5")}

	t1 := pricing.ComputeTotals(items, policy)
	t2 := pricing.ComputeTotals(items, policy)

	assert.True(t, t1.Subtotal.Equal(t2.Subtotal))
	assert.True(t, t1.IGV.Equal(t2.IGV))
	assert.True(t, t1.Discount.Equal(t2.Discount))
	assert.True(t, t1.Total.Equal(t2.Total))
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseAmount: lenidad explícita ante entrada no numérica
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"  42 ", "42"},
		{"", "0"},
		{"abc", "0"},
		{"12,5", "0"}, // separador no soportado → 0, no NaN
		{"-10", "-10"},
	}
	for _, c := range cases {
		got := pricing.ParseAmount(c.in)
		assert.True(t, dec(c.want).Equal(got), "ParseAmount(%q) = %s", c.in, got)
	}
}
