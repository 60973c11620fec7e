package http_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ksistemasccd-bit/iso-quote-craft/internal/interfaces/http"
)

// ─────────────────────────────────────────────────────────────────────────────
// Registro condicional de Swagger UI: el binario debe arrancar aunque el
// archivo de especificación no esté junto al ejecutable.
// ─────────────────────────────────────────────────────────────────────────────

func TestSwaggerUI_ArchivoAusenteDevuelveNil(t *testing.T) {
	var mw fiber.Handler
	assert.NotPanics(t, func() {
		mw = apphttp.SwaggerUI(filepath.Join(t.TempDir(), "no-existe.json"), "Test API")
	})
	assert.Nil(t, mw)
}

func TestSwaggerUI_ArchivoPresenteDevuelveMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Test API","version":"1.0.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o600))

	var mw fiber.Handler
	assert.NotPanics(t, func() {
		mw = apphttp.SwaggerUI(path, "Test API")
	})
	require.NotNil(t, mw)

	app := fiber.New()
	app.Use(mw)
}
