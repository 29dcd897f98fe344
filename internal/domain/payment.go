package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPagado    PaymentStatus = "Pagado"
	PaymentStatusPendiente PaymentStatus = "Pendiente"
)

// Payment representa una línea del libro de cobros
type Payment struct {
	PaymentID   int           `db:"fee_id" json:"paymentId"`
	UserID      int           `db:"user_id" json:"userId"`
	Date        time.Time     `db:"fee_date" json:"date"`
	Type        string        `db:"fee_type" json:"type"`
	Amount      float64       `db:"amount" json:"amount"`
	Discount    float64       `db:"discount" json:"discount"`
	Status      PaymentStatus `db:"status" json:"status"`
	StudentName string        `db:"student_name" json:"studentName"`
}

// PaymentType es un concepto de cobro con su monto base
type PaymentType struct {
	PaymentTypeID int     `db:"fee_type_id" json:"paymentTypeId"`
	Description   string  `db:"description" json:"description"`
	Amount        float64 `db:"amount" json:"amount"`
}

// PaymentDiscount es un descuento aplicable, con porcentaje en [0,1]
type PaymentDiscount struct {
	DiscountID  int     `db:"fee_discount_id" json:"discountId"`
	Description string  `db:"description" json:"description"`
	Percentage  float64 `db:"percentage" json:"percentage"`
}

// PaymentRepository define las operaciones del libro de cobros
type PaymentRepository interface {
	// Create inserta un cobro y asigna su clave
	Create(payment *Payment) error
	// Update reescribe todos los campos de un cobro existente
	Update(payment *Payment) error
	// Delete elimina un cobro por id; ErrNotFound si no existe
	Delete(paymentID int) error
	// ListByUser devuelve los cobros de un alumno, más recientes primero
	ListByUser(userID int) ([]Payment, error)
	// ListAll devuelve todos los cobros con el nombre del alumno
	ListAll() ([]Payment, error)
	// ListTypes devuelve los conceptos de cobro
	ListTypes() ([]PaymentType, error)
	// ListDiscounts devuelve los descuentos, ordenados por porcentaje
	ListDiscounts() ([]PaymentDiscount, error)
}
