package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/pkg/jwt"
)

// Locals key para el AdvisorID en Fiber.
const LocalAdvisorID = "advisor_id"

// AuthMiddleware valida el Bearer Token JWT y extrae el AdvisorID a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		advisorID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAdvisorID, advisorID)
		return c.Next()
	}
}

// GetAdvisorID devuelve el AdvisorID del contexto (después del middleware de auth).
func GetAdvisorID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdvisorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
