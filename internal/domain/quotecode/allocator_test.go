package quotecode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/quotecode"
)

func TestNextCode_PrimerCodigoDelAmbito(t *testing.T) {
	code := quotecode.NextCode(2024, time.January, nil)
	assert.Equal(t, "COT-2024-01-00001", code)
}

// max(existentes)+1, con huecos permitidos.
func TestNextCode_MaximoMasUno(t *testing.T) {
	existing := []string{"COT-2024-01-00001", "COT-2024-01-00003"}
	code := quotecode.NextCode(2024, time.January, existing)
	assert.Equal(t, "COT-2024-01-00004", code)
}

// Códigos de otros ámbitos no influyen en la secuencia.
func TestNextCode_IgnoraOtrosAmbitos(t *testing.T) {
	existing := []string{
		"COT-2023-12-00042",
		"COT-2024-02-00007",
		"COT-2024-01-00002",
	}
	code := quotecode.NextCode(2024, time.January, existing)
	assert.Equal(t, "COT-2024-01-00003", code)
}

// Cambio de año: diciembre → enero reinicia la secuencia vía el prefijo.
func TestNextCode_CambioDeAnioReiniciaSecuencia(t *testing.T) {
	existing := []string{"COT-2024-12-00099"}
	code := quotecode.NextCode(2025, time.January, existing)
	assert.Equal(t, "COT-2025-01-00001", code)
}

// Segmento final no numérico se trata como 0.
func TestNextCode_SegmentoNoNumericoValeCero(t *testing.T) {
	existing := []string{"COT-2024-01-basura", "COT-2024-01-00002"}
	code := quotecode.NextCode(2024, time.January, existing)
	assert.Equal(t, "COT-2024-01-00003", code)
}

// Monotonía: cada código emitido es estrictamente mayor a los anteriores
// del mismo ámbito.
func TestNextCode_MonotoniaEnSecuenciaDeLlamadas(t *testing.T) {
	var existing []string
	prev := ""
	for i := 0; i < 10; i++ {
		code := quotecode.NextCode(2024, time.March, existing)
		if prev != "" {
			assert.Greater(t, code, prev, "la secuencia debe ser estrictamente creciente")
		}
		existing = append(existing, code)
		prev = code
	}
	assert.Equal(t, "COT-2024-03-00010", prev)
}

func TestScopePrefix_MesConCeroIzquierda(t *testing.T) {
	assert.Equal(t, "COT-2024-01-", quotecode.ScopePrefix(2024, time.January))
	assert.Equal(t, "COT-2024-12-", quotecode.ScopePrefix(2024, time.December))
}
