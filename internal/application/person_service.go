package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/email"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
)

const modulePersons = "Personas"

// PersonService orquesta las altas, bajas y cambios de persona+usuario:
// valida los campos, deriva la edad, verifica la unicidad del login
// antes de escribir y deja constancia en la bitácora tras el commit
type PersonService struct {
	personRepo  domain.PersonRepository
	userRepo    domain.UserRepository
	audit       *auditTrail
	validator   *Validator
	emailClient *email.Client
	log         *logger.Logger
}

// NewPersonService crea una nueva instancia del servicio de personas.
// emailClient puede ser nil; en ese caso no se envían avisos de alta.
func NewPersonService(personRepo domain.PersonRepository, userRepo domain.UserRepository, auditRepo domain.AuditRepository, emailClient *email.Client, log *logger.Logger) *PersonService {
	return &PersonService{
		personRepo:  personRepo,
		userRepo:    userRepo,
		audit:       newAuditTrail(auditRepo, log),
		validator:   &Validator{},
		emailClient: emailClient,
		log:         log,
	}
}

func (s *PersonService) validateFields(p *domain.PersonFields, u *domain.UserFields) error {
	if err := s.validator.ValidateName("Nombre", p.FirstName); err != nil {
		return err
	}
	if err := s.validator.ValidateName("Apellido Paterno", p.PaternalSurname); err != nil {
		return err
	}
	if err := s.validator.ValidateName("Apellido Materno", p.MaternalSurname); err != nil {
		return err
	}
	if err := s.validator.ValidateEmail(p.Email); err != nil {
		return err
	}
	if err := s.validator.ValidatePhone(p.Phone); err != nil {
		return err
	}
	if err := s.validator.ValidateLogin(u.Login); err != nil {
		return err
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("la fecha de nacimiento es requerida")
	}
	return nil
}

// AddPersonAndUser da de alta una persona y su usuario en una sola
// transacción. La unicidad del login se verifica antes de escribir;
// la auditoría se registra después del commit y su fallo no revierte
// los datos.
func (s *PersonService) AddPersonAndUser(p domain.PersonFields, u domain.UserFields, actorLogin string) error {
	if err := s.validateFields(&p, &u); err != nil {
		return err
	}

	// Edad derivada, almacenada de forma redundante como en el esquema
	p.Age = CalculateAge(p.BirthDate, time.Now())

	exists, err := s.userRepo.LoginExists(u.Login, 0)
	if err != nil {
		return fmt.Errorf("error al verificar login: %w", err)
	}
	if exists {
		return domain.ErrLoginTaken
	}

	personID, userID, err := s.personRepo.Add(p, u)
	if err != nil {
		s.audit.Error(err.Error(), modulePersons, actorLogin)
		return err
	}
	s.log.Debug(modulePersons, "alta de persona %d con usuario %d", personID, userID)

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: INSERT en person (ID: %d) y app_user (Login: %s)", personID, u.Login))

	if s.emailClient != nil {
		fullName := fmt.Sprintf("%s %s %s", p.FirstName, p.PaternalSurname, p.MaternalSurname)
		if err := s.emailClient.SendWelcome(p.Email, fullName, u.Login); err != nil {
			s.log.Warn(modulePersons, "no se pudo enviar aviso de alta a %s: %v", p.Email, err)
		}
	}

	return nil
}

// UpdatePersonAndUser actualiza una persona y su usuario existentes
func (s *PersonService) UpdatePersonAndUser(userID, personID int, p domain.PersonFields, u domain.UserFields, actorLogin string) error {
	if err := s.validateFields(&p, &u); err != nil {
		return err
	}

	p.Age = CalculateAge(p.BirthDate, time.Now())

	exists, err := s.userRepo.LoginExists(u.Login, userID)
	if err != nil {
		return fmt.Errorf("error al verificar login: %w", err)
	}
	if exists {
		return domain.ErrLoginTaken
	}

	if err := s.personRepo.Update(userID, personID, p, u); err != nil {
		s.audit.Error(err.Error(), modulePersons, actorLogin)
		return err
	}

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: UPDATE en person (ID: %d) y app_user (ID: %d)", personID, userID))

	return nil
}

// DeletePersonAndUser elimina una persona y, por cascada, su usuario.
// Si el usuario no existe la operación falla sin tocar el almacén.
func (s *PersonService) DeletePersonAndUser(userID int, actorLogin string) error {
	personID, login, err := s.personRepo.Delete(userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.audit.Error(err.Error(), modulePersons, actorLogin)
		}
		return err
	}

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: DELETE en person (ID: %d) y app_user (Login: %s)", personID, login))

	return nil
}

// ListPersons devuelve el listado general y deja constancia del acceso
// al módulo
func (s *PersonService) ListPersons(actorLogin string) ([]domain.PersonSummary, error) {
	s.audit.Record(actorLogin, true, "AUDITORIA APP: Acceso al módulo de Personas")

	summaries, err := s.personRepo.ListSummaries()
	if err != nil {
		s.log.Error(modulePersons, "fallo al listar personas: %v", err)
		return nil, err
	}

	return summaries, nil
}

// GetPerson devuelve la vista completa de una persona
func (s *PersonService) GetPerson(userID int) (*domain.PersonDetail, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("el id de usuario es requerido")
	}

	detail, err := s.personRepo.GetDetail(userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error(modulePersons, "fallo al obtener persona %d: %v", userID, err)
		}
		return nil, err
	}

	return detail, nil
}

// ListStudents devuelve las personas de tipo Alumno para selección
func (s *PersonService) ListStudents() ([]domain.StudentOption, error) {
	students, err := s.personRepo.ListStudents()
	if err != nil {
		s.log.Error(modulePersons, "fallo al listar alumnos: %v", err)
		return nil, err
	}

	return students, nil
}
