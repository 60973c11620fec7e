package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerUI devuelve el middleware de Swagger UI para la especificación en
// filePath, o nil si el archivo no existe. El middleware del contrib hace
// panic al registrarse con un archivo ausente, así que la verificación debe
// ocurrir antes de app.Use.
func SwaggerUI(filePath, title string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	})
}
