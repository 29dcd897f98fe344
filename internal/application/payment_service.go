package application

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
)

const modulePayments = "Pagos"

// PaymentService orquesta el libro de cobros: calcula el descuento,
// persiste y deja constancia de cada mutación en la bitácora
type PaymentService struct {
	paymentRepo domain.PaymentRepository
	audit       *auditTrail
	log         *logger.Logger
}

// NewPaymentService crea una nueva instancia del servicio de cobros
func NewPaymentService(paymentRepo domain.PaymentRepository, auditRepo domain.AuditRepository, log *logger.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		audit:       newAuditTrail(auditRepo, log),
		log:         log,
	}
}

// ComputeDiscount calcula el monto de descuento y el total a pagar. El
// porcentaje se acota a [0,1] para que nunca se almacene un total
// negativo; ambos resultados se redondean a 2 decimales.
func ComputeDiscount(amount, percentage float64) (discount, total float64) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 1 {
		percentage = 1
	}

	discount = round2(amount * percentage)
	total = round2(amount - discount)

	return discount, total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validatePayment(userID int, amount float64, status domain.PaymentStatus) error {
	if userID <= 0 {
		return fmt.Errorf("el alumno es requerido")
	}
	if amount <= 0 {
		return fmt.Errorf("el monto debe ser mayor a cero")
	}
	if status != domain.PaymentStatusPagado && status != domain.PaymentStatusPendiente {
		return fmt.Errorf("estado de cobro desconocido: %s", status)
	}
	return nil
}

// AddPayment registra un cobro nuevo
func (s *PaymentService) AddPayment(userID int, date time.Time, feeType string, amount, percentage float64, status domain.PaymentStatus, actorLogin string) (*domain.Payment, error) {
	if err := validatePayment(userID, amount, status); err != nil {
		return nil, err
	}

	discount, _ := ComputeDiscount(amount, percentage)

	payment := &domain.Payment{
		UserID:   userID,
		Date:     date,
		Type:     feeType,
		Amount:   amount,
		Discount: discount,
		Status:   status,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		s.audit.Error(err.Error(), modulePayments, actorLogin)
		return nil, err
	}

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: INSERT en fee. ID: %d, Alumno ID: %d", payment.PaymentID, userID))

	return payment, nil
}

// UpdatePayment reescribe un cobro existente
func (s *PaymentService) UpdatePayment(paymentID, userID int, date time.Time, feeType string, amount, percentage float64, status domain.PaymentStatus, actorLogin string) error {
	if err := validatePayment(userID, amount, status); err != nil {
		return err
	}

	discount, _ := ComputeDiscount(amount, percentage)

	payment := &domain.Payment{
		PaymentID: paymentID,
		UserID:    userID,
		Date:      date,
		Type:      feeType,
		Amount:    amount,
		Discount:  discount,
		Status:    status,
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.audit.Error(err.Error(), modulePayments, actorLogin)
		}
		return err
	}

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: UPDATE en fee. ID: %d", paymentID))

	return nil
}

// DeletePayment elimina un cobro por id
func (s *PaymentService) DeletePayment(paymentID int, actorLogin string) error {
	if err := s.paymentRepo.Delete(paymentID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.audit.Error(err.Error(), modulePayments, actorLogin)
		}
		return err
	}

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: DELETE en fee. ID: %d", paymentID))

	return nil
}

// ListPayments devuelve todos los cobros y deja constancia del acceso
// al módulo
func (s *PaymentService) ListPayments(actorLogin string) ([]domain.Payment, error) {
	s.audit.Record(actorLogin, true, "AUDITORIA APP: Acceso al módulo de Pagos")

	payments, err := s.paymentRepo.ListAll()
	if err != nil {
		s.log.Error(modulePayments, "fallo al listar cobros: %v", err)
		return nil, err
	}

	return payments, nil
}

// ListPaymentsByUser devuelve los cobros de un alumno
func (s *PaymentService) ListPaymentsByUser(userID int) ([]domain.Payment, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("el id de usuario es requerido")
	}

	payments, err := s.paymentRepo.ListByUser(userID)
	if err != nil {
		s.log.Error(modulePayments, "fallo al listar cobros del alumno %d: %v", userID, err)
		return nil, err
	}

	return payments, nil
}

// ListPaymentTypes devuelve los conceptos de cobro
func (s *PaymentService) ListPaymentTypes() ([]domain.PaymentType, error) {
	types, err := s.paymentRepo.ListTypes()
	if err != nil {
		s.log.Error(modulePayments, "fallo al listar tipos de cobro: %v", err)
		return nil, err
	}

	return types, nil
}

// ListDiscounts devuelve los descuentos disponibles
func (s *PaymentService) ListDiscounts() ([]domain.PaymentDiscount, error) {
	discounts, err := s.paymentRepo.ListDiscounts()
	if err != nil {
		s.log.Error(modulePayments, "fallo al listar descuentos: %v", err)
		return nil, err
	}

	return discounts, nil
}
