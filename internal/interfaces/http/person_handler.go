package http

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type PersonHandler struct {
	service *application.PersonService
}

// NewPersonHandler crea una nueva instancia del handler de personas
func NewPersonHandler(service *application.PersonService) *PersonHandler {
	return &PersonHandler{
		service: service,
	}
}

// personRequest transporta los campos de persona y credencial; las
// fechas viajan como cadenas YYYY-MM-DD
type personRequest struct {
	PersonID        int    `json:"personId,omitempty"`
	FirstName       string `json:"firstName"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	BirthDate       string `json:"birthDate"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	GenderID        int    `json:"genderId"`
	JobPositionID   int    `json:"jobPositionId"`
	PersonTypeID    int    `json:"personTypeId"`
	SocialNetwork   string `json:"socialNetwork"`
	Login           string `json:"login"`
	Password        string `json:"password"`
	StartDate       string `json:"startDate"`
	ExpiryDate      string `json:"expiryDate"`
	AccountStatus   string `json:"accountStatus"`
}

// toFields convierte la petición a los campos de dominio, parseando las
// fechas de frontera
func (req *personRequest) toFields() (domain.PersonFields, domain.UserFields, error) {
	birthDate, err := application.ParseDate(req.BirthDate)
	if err != nil {
		return domain.PersonFields{}, domain.UserFields{}, err
	}
	startDate, err := application.ParseDate(req.StartDate)
	if err != nil {
		return domain.PersonFields{}, domain.UserFields{}, err
	}
	expiryDate, err := application.ParseDate(req.ExpiryDate)
	if err != nil {
		return domain.PersonFields{}, domain.UserFields{}, err
	}

	p := domain.PersonFields{
		FirstName:       req.FirstName,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		BirthDate:       birthDate,
		Email:           req.Email,
		Phone:           req.Phone,
		GenderID:        req.GenderID,
		JobPositionID:   req.JobPositionID,
		PersonTypeID:    req.PersonTypeID,
		SocialNetwork:   req.SocialNetwork,
	}
	u := domain.UserFields{
		Login:         req.Login,
		Password:      req.Password,
		StartDate:     startDate,
		ExpiryDate:    expiryDate,
		AccountStatus: domain.AccountStatus(req.AccountStatus),
	}

	return p, u, nil
}

// List devuelve el listado general de personas
func (h *PersonHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.ListPersons(actorLogin(c))
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": summaries,
	})
}

// Get devuelve la vista completa de una persona
func (h *PersonHandler) Get(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de usuario inválido",
		})
	}

	detail, err := h.service.GetPerson(userID)
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": detail,
	})
}

// Create da de alta una persona con su usuario
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}

	p, u, err := req.toFields()
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	if err := h.service.AddPersonAndUser(p, u, actorLogin(c)); err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "persona registrada correctamente",
	})
}

// Update actualiza una persona y su usuario existentes
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de usuario inválido",
		})
	}

	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cuerpo de petición inválido",
		})
	}
	if req.PersonID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "el campo personId es requerido",
		})
	}

	p, u, err := req.toFields()
	if err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	if err := h.service.UpdatePersonAndUser(userID, req.PersonID, p, u, actorLogin(c)); err != nil {
		return respondError(c, err, fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"message": "persona actualizada correctamente",
	})
}

// Delete elimina una persona y su usuario
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id de usuario inválido",
		})
	}

	if err := h.service.DeletePersonAndUser(userID, actorLogin(c)); err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"message": "persona eliminada correctamente",
	})
}

// ListStudents devuelve los alumnos para listas de selección
func (h *PersonHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents()
	if err != nil {
		return respondError(c, err, fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"data": students,
	})
}
