package http

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service *application.AuthService
}

// NewAuthHandler crea una nueva instancia del handler de autenticación
func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	RepeatPassword  string `json:"repeatPassword"`
}

type accountStatusRequest struct {
	AccountStatus string `json:"accountStatus"`
}

// Login autentica un par login/contraseña y abre una sesión
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	profile, token, err := h.service.Login(req.Login, req.Password)
	if err != nil {
		return respondError(c, err, fiber.StatusUnauthorized)
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"profile": profile,
	})
}

// Logout cierra la sesión del token recibido
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Get(HeaderSessionToken)
	if token != "" {
		h.service.Logout(token)
	}

	return c.JSON(fiber.Map{
		"message": "sesión cerrada",
	})
}

// ChangePassword cambia la contraseña del usuario autenticado
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	err := h.service.ChangePassword(actorLogin(c), req.CurrentPassword, req.NewPassword, req.RepeatPassword)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"message": "contraseña actualizada correctamente",
	})
}

// UpdateAccountStatus cambia el estado de cuenta de un usuario
func (h *AuthHandler) UpdateAccountStatus(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de usuario inválido",
		})
	}

	var req accountStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	err = h.service.UpdateAccountStatus(userID, domain.AccountStatus(req.AccountStatus), actorLogin(c))
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"message": "estado de cuenta actualizado",
	})
}
