package http

import (
	"errors"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// ModuleStateHandler expone el modo de edición por módulo de la sesión
// para que los clientes manejen sus estados de botones
type ModuleStateHandler struct {
	sessions *application.SessionManager
}

// NewModuleStateHandler crea una nueva instancia del handler de estados
func NewModuleStateHandler(sessions *application.SessionManager) *ModuleStateHandler {
	return &ModuleStateHandler{
		sessions: sessions,
	}
}

type transitionRequest struct {
	State string `json:"state"`
}

// Get devuelve el modo de edición vigente de un módulo
func (h *ModuleStateHandler) Get(c *fiber.Ctx) error {
	entity, err := domain.ParseEntityKind(c.Params("entity"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	state, ok := h.sessions.ModuleState(c.Get(HeaderSessionToken), entity)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "sesión inválida o expirada",
		})
	}

	return c.JSON(fiber.Map{
		"data": state,
	})
}

// Transition cambia el modo de edición de un módulo; las transiciones
// inválidas se rechazan sin alterar el estado vigente
func (h *ModuleStateHandler) Transition(c *fiber.Ctx) error {
	entity, err := domain.ParseEntityKind(c.Params("entity"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	state, err := h.sessions.TransitionModule(c.Get(HeaderSessionToken), entity, domain.EditState(req.State))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "sesión inválida o expirada",
			})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": state,
	})
}
