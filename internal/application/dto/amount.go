package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/pricing"
)

// Amount es un monto de entrada con coerción leniente: acepta números JSON y
// strings numéricos por igual, y trata la entrada no parseable (o null) como
// 0 vía pricing.ParseAmount. Solo se usa en requests; las respuestas
// serializan decimal.Decimal directo.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON implementa la coerción leniente sobre el valor crudo.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "null" {
		s = ""
	}
	a.Decimal = pricing.ParseAmount(s)
	return nil
}
