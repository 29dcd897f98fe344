package http

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler crea una nueva instancia del handler de catálogos
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// Available devuelve los identificadores de catálogo registrados
func (h *CatalogHandler) Available(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": h.service.Available(actorLogin(c)),
	})
}

// List devuelve las entradas de un catálogo registrado
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	id := domain.CatalogID(c.Params("id"))

	entries, err := h.service.List(id)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"data": entries,
	})
}

// Genders devuelve el catálogo de géneros
func (h *CatalogHandler) Genders(c *fiber.Ctx) error {
	entries, err := h.service.Genders()
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": entries,
	})
}

// JobPositions devuelve el catálogo de puestos
func (h *CatalogHandler) JobPositions(c *fiber.Ctx) error {
	entries, err := h.service.JobPositions()
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": entries,
	})
}

// PersonTypes devuelve el catálogo de tipos de persona
func (h *CatalogHandler) PersonTypes(c *fiber.Ctx) error {
	entries, err := h.service.PersonTypes()
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": entries,
	})
}
