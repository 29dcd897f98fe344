package http

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/gofiber/fiber/v2"
)

// HeaderSessionToken es el encabezado con el token de sesión
const HeaderSessionToken = "X-Session-Token"

const localsActorLogin = "actorLogin"

// NewSessionMiddleware valida el token de sesión y deja el login del
// actor disponible para la atribución en bitácora
func NewSessionMiddleware(authService *application.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderSessionToken)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "se requiere una sesión activa",
			})
		}

		session, ok := authService.ResolveSession(token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "sesión inválida o expirada",
			})
		}

		c.Locals(localsActorLogin, session.Login)

		return c.Next()
	}
}

// actorLogin devuelve el login del actor autenticado
func actorLogin(c *fiber.Ctx) string {
	if login, ok := c.Locals(localsActorLogin).(string); ok {
		return login
	}
	return "Desconocido"
}
