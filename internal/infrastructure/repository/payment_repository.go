package repository

import (
	"fmt"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/jmoiron/sqlx"
)

type paymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository crea una nueva instancia del repositorio de cobros
func NewPaymentRepository(db *sqlx.DB) domain.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserta un cobro y asigna su clave
func (r *paymentRepository) Create(payment *domain.Payment) error {
	query := `
		INSERT INTO fee (user_id, fee_date, fee_type, amount, discount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING fee_id
	`

	err := r.db.QueryRow(
		query,
		payment.UserID,
		payment.Date,
		payment.Type,
		payment.Amount,
		payment.Discount,
		payment.Status,
	).Scan(&payment.PaymentID)

	if err != nil {
		return fmt.Errorf("error al crear cobro: %w", err)
	}

	return nil
}

// Update reescribe todos los campos de un cobro existente
func (r *paymentRepository) Update(payment *domain.Payment) error {
	query := `
		UPDATE fee
		SET user_id  = $1,
		    fee_date = $2,
		    fee_type = $3,
		    amount   = $4,
		    discount = $5,
		    status   = $6
		WHERE fee_id = $7
	`

	result, err := r.db.Exec(
		query,
		payment.UserID,
		payment.Date,
		payment.Type,
		payment.Amount,
		payment.Discount,
		payment.Status,
		payment.PaymentID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar cobro: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete elimina un cobro por id
func (r *paymentRepository) Delete(paymentID int) error {
	result, err := r.db.Exec(`DELETE FROM fee WHERE fee_id = $1`, paymentID)
	if err != nil {
		return fmt.Errorf("error al eliminar cobro: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ListByUser devuelve los cobros de un alumno, más recientes primero
func (r *paymentRepository) ListByUser(userID int) ([]domain.Payment, error) {
	query := `
		SELECT f.fee_id,
		       f.user_id,
		       f.fee_date,
		       f.fee_type,
		       f.amount,
		       f.discount,
		       f.status,
		       n.description || ' ' || ap.description AS student_name
		FROM fee f
		         JOIN app_user u ON f.user_id = u.user_id
		         JOIN person dp ON u.person_id = dp.person_id
		         JOIN first_name n ON dp.first_name_id = n.first_name_id
		         JOIN surname ap ON dp.paternal_surname_id = ap.surname_id
		WHERE f.user_id = $1
		ORDER BY f.fee_date DESC
	`

	payments := []domain.Payment{}
	if err := r.db.Select(&payments, query, userID); err != nil {
		return nil, fmt.Errorf("error al obtener cobros del alumno: %w", err)
	}

	return payments, nil
}

// ListAll devuelve todos los cobros con el nombre del alumno
func (r *paymentRepository) ListAll() ([]domain.Payment, error) {
	query := `
		SELECT f.fee_id,
		       f.user_id,
		       f.fee_date,
		       f.fee_type,
		       f.amount,
		       f.discount,
		       f.status,
		       n.description || ' ' || ap.description AS student_name
		FROM fee f
		         JOIN app_user u ON f.user_id = u.user_id
		         JOIN person dp ON u.person_id = dp.person_id
		         JOIN first_name n ON dp.first_name_id = n.first_name_id
		         JOIN surname ap ON dp.paternal_surname_id = ap.surname_id
		ORDER BY f.fee_date DESC
	`

	payments := []domain.Payment{}
	if err := r.db.Select(&payments, query); err != nil {
		return nil, fmt.Errorf("error al obtener todos los cobros: %w", err)
	}

	return payments, nil
}

// ListTypes devuelve los conceptos de cobro con su monto base
func (r *paymentRepository) ListTypes() ([]domain.PaymentType, error) {
	types := []domain.PaymentType{}
	query := `SELECT fee_type_id, description, amount FROM fee_type ORDER BY description`

	if err := r.db.Select(&types, query); err != nil {
		return nil, fmt.Errorf("error al obtener tipos de cobro: %w", err)
	}

	return types, nil
}

// ListDiscounts devuelve los descuentos ordenados por porcentaje
func (r *paymentRepository) ListDiscounts() ([]domain.PaymentDiscount, error) {
	discounts := []domain.PaymentDiscount{}
	query := `SELECT fee_discount_id, description, percentage FROM fee_discount ORDER BY percentage`

	if err := r.db.Select(&discounts, query); err != nil {
		return nil, fmt.Errorf("error al obtener descuentos: %w", err)
	}

	return discounts, nil
}
