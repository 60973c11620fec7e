// Package quotecode asigna códigos secuenciales de cotización con ámbito
// año-mes: COT-{año}-{mes}-{secuencia de 5 dígitos}.
package quotecode

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefix es el prefijo fijo de todo código de cotización.
const Prefix = "COT"

// ScopePrefix construye el prefijo del ámbito: "COT-2024-01-".
// El cambio de mes (diciembre → enero) cambia el prefijo y con ello la
// secuencia vuelve a empezar en 1.
func ScopePrefix(year int, month time.Month) string {
	return fmt.Sprintf("%s-%d-%02d-", Prefix, year, int(month))
}

// NextCode calcula el siguiente código para el ámbito (year, month) dado el
// conjunto de códigos ya emitidos. Es una función pura y determinista: la
// asignación y la persistencia son pasos separados, así que el código
// devuelto es provisional hasta que la cotización quede guardada (la unicidad
// la garantiza el constraint de la base de datos con reintento en el caso de
// uso de creación).
//
// Algoritmo: filtra los códigos por prefijo, toma el segmento final de 5
// dígitos de cada uno (no numérico → 0), máximo + 1 (1 si no hay ninguno) y
// rellena con ceros a 5 dígitos. Se permiten huecos (cotizaciones borradas);
// la secuencia es estrictamente creciente, no contigua.
func NextCode(year int, month time.Month, existing []string) string {
	prefix := ScopePrefix(year, month)
	max := 0
	for _, code := range existing {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		seq := trailingSequence(code)
		if seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s%05d", prefix, max+1)
}

// trailingSequence extrae el número tras el último guion; 0 si no parsea.
func trailingSequence(code string) int {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0
	}
	n, err := strconv.Atoi(code[idx+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
