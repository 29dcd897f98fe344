package domain

import "time"

// PersonFields contiene los campos de persona que cruzan la frontera.
// Nombre y apellidos llegan como texto normalizado y se resuelven a
// claves de catálogo dentro de la transacción de escritura.
type PersonFields struct {
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	BirthDate       time.Time
	Email           string
	Phone           string
	GenderID        int
	JobPositionID   int
	PersonTypeID    int
	SocialNetwork   string
	Age             int
}

// PersonSummary es la fila del listado general de personas
type PersonSummary struct {
	UserID        int           `db:"user_id" json:"userId"`
	Login         string        `db:"login" json:"login"`
	FullName      string        `db:"full_name" json:"fullName"`
	PersonType    string        `db:"person_type" json:"personType"`
	JobPosition   string        `db:"job_position" json:"jobPosition"`
	Email         string        `db:"email" json:"email"`
	Phone         string        `db:"phone" json:"phone"`
	AccountStatus AccountStatus `db:"account_status" json:"accountStatus"`
}

// PersonDetail es la vista completa de una persona con su credencial,
// usada para poblar el formulario de edición
type PersonDetail struct {
	PersonID        int           `db:"person_id" json:"personId"`
	FirstName       string        `db:"first_name" json:"firstName"`
	PaternalSurname string        `db:"paternal_surname" json:"paternalSurname"`
	MaternalSurname string        `db:"maternal_surname" json:"maternalSurname"`
	BirthDate       time.Time     `db:"birth_date" json:"birthDate"`
	Email           string        `db:"email" json:"email"`
	Phone           string        `db:"phone" json:"phone"`
	GenderID        int           `db:"gender_id" json:"genderId"`
	JobPositionID   int           `db:"job_position_id" json:"jobPositionId"`
	PersonTypeID    int           `db:"person_type_id" json:"personTypeId"`
	Login           string        `db:"login" json:"login"`
	Password        string        `db:"password" json:"-"`
	StartDate       time.Time     `db:"start_date" json:"startDate"`
	ExpiryDate      time.Time     `db:"expiry_date" json:"expiryDate"`
	AccountStatus   AccountStatus `db:"account_status" json:"accountStatus"`
}

// StudentOption es una entrada para listas de selección de alumnos
type StudentOption struct {
	UserID   int    `db:"user_id" json:"userId"`
	FullName string `db:"full_name" json:"fullName"`
}

// PersonRepository define la escritura transaccional persona+usuario y
// las lecturas asociadas
type PersonRepository interface {
	// Add inserta persona y usuario en una sola transacción, resolviendo
	// nombre y apellidos contra sus catálogos. Devuelve las claves nuevas.
	Add(p PersonFields, u UserFields) (personID, userID int, err error)
	// Update actualiza persona y usuario existentes en una transacción
	Update(userID, personID int, p PersonFields, u UserFields) error
	// Delete elimina la persona (el usuario cae por cascada). Devuelve la
	// clave de persona y el login eliminados para el mensaje de auditoría.
	// ErrNotFound si el usuario no existe; en ese caso nada se borra.
	Delete(userID int) (personID int, login string, err error)
	// ListSummaries devuelve el listado general ordenado por nombre
	ListSummaries() ([]PersonSummary, error)
	// GetDetail devuelve la vista completa de una persona o ErrNotFound
	GetDetail(userID int) (*PersonDetail, error)
	// ListStudents devuelve las personas de tipo Alumno para selección
	ListStudents() ([]StudentOption, error)
}
