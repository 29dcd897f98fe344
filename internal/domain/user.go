package domain

import "time"

type AccountStatus string

const (
	AccountStatusActiva   AccountStatus = "Activa"
	AccountStatusInactiva AccountStatus = "Inactiva"
)

// Profile es el perfil enriquecido que devuelve el gate de credenciales
// tras una autenticación exitosa
type Profile struct {
	UserID          int           `db:"user_id" json:"userId"`
	AccountStatus   AccountStatus `db:"account_status" json:"accountStatus"`
	StartDate       time.Time     `db:"start_date" json:"startDate"`
	ExpiryDate      time.Time     `db:"expiry_date" json:"expiryDate"`
	FirstName       string        `db:"first_name" json:"firstName"`
	PaternalSurname string        `db:"paternal_surname" json:"paternalSurname"`
	MaternalSurname string        `db:"maternal_surname" json:"maternalSurname"`
	JobPosition     string        `db:"job_position" json:"jobPosition"`
	Gender          string        `db:"gender" json:"gender"`
}

// UserFields contiene los campos de credencial que cruzan la frontera
// en altas y actualizaciones de persona+usuario
type UserFields struct {
	Login         string
	Password      string
	StartDate     time.Time
	ExpiryDate    time.Time
	AccountStatus AccountStatus
}

// UserRepository define las operaciones sobre credenciales.
// El almacenamiento en texto plano de la contraseña queda aislado aquí:
// sustituir el esquema por uno con hash no debe tocar a los llamadores.
type UserRepository interface {
	// Authenticate compara login y password de forma exacta (sensible a
	// mayúsculas). Devuelve ErrInvalidCredentials si no hay coincidencia
	// y ErrStoreUnavailable si el almacén no responde.
	Authenticate(login, password string) (*Profile, error)
	// PasswordInUse indica si alguna cuenta ya usa esa contraseña
	PasswordInUse(candidate string) (bool, error)
	// ChangePassword actualiza la contraseña de un login existente
	ChangePassword(login, newPassword string) error
	// UpdateAccountStatus cambia el estado de cuenta de un usuario
	UpdateAccountStatus(userID int, status AccountStatus) error
	// LoginExists verifica si el login ya existe; excludeUserID > 0
	// excluye a ese usuario de la búsqueda (caso actualización)
	LoginExists(login string, excludeUserID int) (bool, error)
}
