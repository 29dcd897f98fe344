package http

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler crea una nueva instancia del handler de cobros
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

type paymentRequest struct {
	UserID             int     `json:"userId"`
	Date               string  `json:"date"`
	Type               string  `json:"type"`
	Amount             float64 `json:"amount"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Status             string  `json:"status"`
}

// List devuelve todos los cobros con el nombre del alumno
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.service.ListPayments(actorLogin(c))
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": payments,
	})
}

// ListByUser devuelve los cobros de un alumno
func (h *PaymentHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de usuario inválido",
		})
	}

	payments, err := h.service.ListPaymentsByUser(userID)
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": payments,
	})
}

// Create registra un cobro nuevo
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	date, err := application.ParseDate(req.Date)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	payment, err := h.service.AddPayment(
		req.UserID, date, req.Type, req.Amount, req.DiscountPercentage,
		domain.PaymentStatus(req.Status), actorLogin(c),
	)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": payment,
	})
}

// Update reescribe un cobro existente
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de cobro inválido",
		})
	}

	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	date, err := application.ParseDate(req.Date)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	err = h.service.UpdatePayment(
		paymentID, req.UserID, date, req.Type, req.Amount, req.DiscountPercentage,
		domain.PaymentStatus(req.Status), actorLogin(c),
	)
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"message": "cobro actualizado correctamente",
	})
}

// Delete elimina un cobro
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de cobro inválido",
		})
	}

	if err := h.service.DeletePayment(paymentID, actorLogin(c)); err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"message": "cobro eliminado correctamente",
	})
}

// ListTypes devuelve los conceptos de cobro
func (h *PaymentHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.service.ListPaymentTypes()
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": types,
	})
}

// ListDiscounts devuelve los descuentos disponibles
func (h *PaymentHandler) ListDiscounts(c *fiber.Ctx) error {
	discounts, err := h.service.ListDiscounts()
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": discounts,
	})
}
