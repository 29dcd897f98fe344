package repository

import (
	"database/sql"
	"fmt"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository crea una nueva instancia del repositorio de usuarios
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Authenticate compara login y contraseña de forma exacta y devuelve el
// perfil enriquecido. Distingue credenciales inválidas de un almacén
// inalcanzable para que el llamador pueda reaccionar distinto.
func (r *userRepository) Authenticate(login, password string) (*domain.Profile, error) {
	query := `
		SELECT u.user_id,
		       u.account_status,
		       u.start_date,
		       u.expiry_date,
		       n.description  AS first_name,
		       ap.description AS paternal_surname,
		       am.description AS maternal_surname,
		       COALESCE(jp.description, '') AS job_position,
		       COALESCE(g.description, '')  AS gender
		FROM app_user u
		         JOIN person dp ON u.person_id = dp.person_id
		         JOIN first_name n ON dp.first_name_id = n.first_name_id
		         JOIN surname ap ON dp.paternal_surname_id = ap.surname_id
		         JOIN surname am ON dp.maternal_surname_id = am.surname_id
		         LEFT JOIN job_position jp ON dp.job_position_id = jp.job_position_id
		         LEFT JOIN gender g ON dp.gender_id = g.gender_id
		WHERE u.login = $1
		  AND u.password = $2
	`

	profile := &domain.Profile{}
	err := r.db.Get(profile, query, login, password)
	if err == sql.ErrNoRows {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return profile, nil
}

// PasswordInUse indica si alguna cuenta ya usa la contraseña candidata
func (r *userRepository) PasswordInUse(candidate string) (bool, error) {
	var userID int
	err := r.db.Get(&userID, `SELECT user_id FROM app_user WHERE password = $1 LIMIT 1`, candidate)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error al verificar contraseña: %w", err)
	}

	return true, nil
}

// ChangePassword actualiza la contraseña de un login existente
func (r *userRepository) ChangePassword(login, newPassword string) error {
	result, err := r.db.Exec(`UPDATE app_user SET password = $1 WHERE login = $2`, newPassword, login)
	if err != nil {
		return fmt.Errorf("error al actualizar contraseña: %w", err)
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

// UpdateAccountStatus cambia el estado de cuenta de un usuario
func (r *userRepository) UpdateAccountStatus(userID int, status domain.AccountStatus) error {
	result, err := r.db.Exec(`UPDATE app_user SET account_status = $1 WHERE user_id = $2`, status, userID)
	if err != nil {
		return fmt.Errorf("error al actualizar estado de cuenta: %w", err)
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

// LoginExists verifica si un login ya existe. Es una comprobación
// consultiva previa a la transacción de escritura; la carrera entre
// verificación e inserción es una limitación aceptada.
func (r *userRepository) LoginExists(login string, excludeUserID int) (bool, error) {
	var userID int
	var err error

	if excludeUserID > 0 {
		err = r.db.Get(&userID,
			`SELECT user_id FROM app_user WHERE login = $1 AND user_id != $2 LIMIT 1`,
			login, excludeUserID)
	} else {
		err = r.db.Get(&userID, `SELECT user_id FROM app_user WHERE login = $1 LIMIT 1`, login)
	}

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error al verificar login: %w", err)
	}

	return true, nil
}
