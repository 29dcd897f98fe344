package http

import (
	"errors"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// respondError mapea los errores centinela del dominio a códigos HTTP;
// cualquier otro error usa el código por defecto del endpoint
func respondError(c *fiber.Ctx, err error, defaultStatus int) error {
	status := defaultStatus

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrLoginTaken), errors.Is(err, domain.ErrPasswordInUse):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
