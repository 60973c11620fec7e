package moneytext

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tablas de palabras en español. Los irregulares (10-19, "Cien", "Mil",
// "Un Millón") se resuelven por casos, no por composición.
var (
	unidades = []string{"", "Uno", "Dos", "Tres", "Cuatro", "Cinco", "Seis", "Siete", "Ocho", "Nueve"}

	especiales = []string{"Diez", "Once", "Doce", "Trece", "Catorce", "Quince",
		"Dieciséis", "Diecisiete", "Dieciocho", "Diecinueve"}

	decenas = []string{"", "Diez", "Veinte", "Treinta", "Cuarenta", "Cincuenta",
		"Sesenta", "Setenta", "Ochenta", "Noventa"}

	centenas = []string{"", "Ciento", "Doscientos", "Trescientos", "Cuatrocientos",
		"Quinientos", "Seiscientos", "Setecientos", "Ochocientos", "Novecientos"}
)

// AmountToWords convierte un monto no negativo en su texto legal:
// "{parte entera en letras} Con {céntimos}/100 Soles Peruanos".
// La cláusula de céntimos se omite cuando son 0.
func AmountToWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	entero := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(entero)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	result := millionsToWords(entero)
	if cents > 0 {
		result += fmt.Sprintf(" Con %02d/100", cents)
	}
	return result + " Soles Peruanos"
}

// tensToWords convierte 0-99.
func tensToWords(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return unidades[n]
	case n < 20:
		return especiales[n-10]
	}

	decena := n / 10
	unidad := n % 10

	if unidad == 0 {
		return decenas[decena]
	}
	// 21-29 usa la forma contraída "Veinti{unidad}", sin espacio;
	// de 31 en adelante se compone "{Decena} y {Unidad}".
	if decena == 2 {
		return "Veinti" + strings.ToLower(unidades[unidad])
	}
	return decenas[decena] + " y " + unidades[unidad]
}

// hundredsToWords convierte 0-999. 100 exacto es "Cien"; 101-199 "Ciento ...".
func hundredsToWords(n int64) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "Cien"
	}

	centena := n / 100
	resto := n % 100

	result := centenas[centena]
	if resto > 0 {
		if result != "" {
			result += " "
		}
		result += tensToWords(resto)
	}
	return result
}

// thousandsToWords convierte 0-999999. 1000 exacto es "Mil", nunca "Un Mil".
func thousandsToWords(n int64) string {
	if n == 0 {
		return ""
	}
	if n == 1000 {
		return "Mil"
	}

	miles := n / 1000
	resto := n % 1000

	var result string
	switch {
	case miles == 1:
		result = "Mil"
	case miles > 0:
		result = hundredsToWords(miles) + " Mil"
	}

	if resto > 0 {
		if result != "" {
			result += " "
		}
		result += hundredsToWords(resto)
	}
	return result
}

// millionsToWords convierte la parte entera completa. 1 millón exacto es el
// singular irregular "Un Millón"; los múltiplos usan "{N} Millones".
func millionsToWords(n int64) string {
	if n == 0 {
		return "Cero"
	}

	millones := n / 1_000_000
	resto := n % 1_000_000

	var result string
	switch {
	case millones == 1:
		result = "Un Millón"
	case millones > 0:
		result = thousandsToWords(millones) + " Millones"
	}

	if resto > 0 {
		if result != "" {
			result += " "
		}
		result += thousandsToWords(resto)
	}
	if result == "" {
		return "Cero"
	}
	return result
}
