// Package moneytext convierte montos a su representación textual para el
// documento de cotización: formato de moneda peruana y monto en letras.
package moneytext

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var penPrinter = message.NewPrinter(language.MustParse("es-PE"))

// FormatPEN formatea un monto en soles con agrupación de miles del locale
// es-PE y exactamente 2 decimales. Ej: 1234.5 → "S/ 1,234.50".
func FormatPEN(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return penPrinter.Sprintf("S/ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
