package moneytext_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/moneytext"
)

func TestFormatPEN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.5", "S/ 1,234.50"},
		{"0", "S/ 0.00"},
		{"999", "S/ 999.00"},
		{"1000", "S/ 1,000.00"},
		{"1234567.89", "S/ 1,234,567.89"},
		{"0.1", "S/ 0.10"},
	}
	for _, c := range cases {
		got := moneytext.FormatPEN(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "FormatPEN(%s)", c.in)
	}
}

func TestFormatPEN_RedondeaADosDecimales(t *testing.T) {
	got := moneytext.FormatPEN(decimal.RequireFromString("10.555"))
	assert.Equal(t, "S/ 10.56", got)
}
