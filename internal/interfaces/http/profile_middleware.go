package http

import (
	"github.com/branquinho91/PARAPLUIE2/internal/application/dto"
	"github.com/gofiber/fiber/v2"
)

// RequireProfile devolve um middleware Fiber que só deixa passar os perfis
// indicados. Deve vir DEPOIS de AuthMiddleware (lê o profile dos locals).
// A violação responde 401 antes de qualquer acesso a dados.
func RequireProfile(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := GetProfile(c)
		if profile == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_PROFILE",
				Message: "profile not found in token",
			})
		}
		for _, p := range allowed {
			if profile == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "ACCESS_DENIED",
			Message: "Access Denied: profile not allowed on this route",
		})
	}
}
