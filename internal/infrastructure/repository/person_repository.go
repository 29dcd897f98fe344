package repository

import (
	"database/sql"
	"fmt"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/jmoiron/sqlx"
)

type personRepository struct {
	db *sqlx.DB
}

// NewPersonRepository crea una nueva instancia del repositorio de personas
func NewPersonRepository(db *sqlx.DB) domain.PersonRepository {
	return &personRepository{db: db}
}

// resolveNameKeys resuelve nombre y apellidos contra sus catálogos
// dentro de la transacción; cada resolución puede insertar
func resolveNameKeys(tx *sqlx.Tx, p domain.PersonFields) (firstNameID, paternalID, maternalID int, err error) {
	firstNames, err := domain.CatalogByID(domain.CatalogFirstNames)
	if err != nil {
		return 0, 0, 0, err
	}
	surnames, err := domain.CatalogByID(domain.CatalogSurnames)
	if err != nil {
		return 0, 0, 0, err
	}

	if firstNameID, err = resolveCatalogID(tx, firstNames, p.FirstName); err != nil {
		return 0, 0, 0, err
	}
	if paternalID, err = resolveCatalogID(tx, surnames, p.PaternalSurname); err != nil {
		return 0, 0, 0, err
	}
	if maternalID, err = resolveCatalogID(tx, surnames, p.MaternalSurname); err != nil {
		return 0, 0, 0, err
	}

	return firstNameID, paternalID, maternalID, nil
}

// Add inserta persona y usuario en una sola transacción. Si cualquier
// paso falla se revierte todo; no queda estado parcial.
func (r *personRepository) Add(p domain.PersonFields, u domain.UserFields) (int, int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, 0, fmt.Errorf("error starting tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	firstNameID, paternalID, maternalID, err := resolveNameKeys(tx, p)
	if err != nil {
		return 0, 0, err
	}

	// Los catálogos que el formulario aún no captura (grado académico,
	// afición, dirección, departamento) se escriben con la clave 1
	var personID int
	err = tx.QueryRow(`
		INSERT INTO person (
			first_name_id, paternal_surname_id, maternal_surname_id,
			birth_date, email, phone,
			gender_id, job_position_id, person_type_id,
			academic_degree_id, hobby_id, address_id, department_id,
			social_network, age
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, 1, 1, 1, $10, $11)
		RETURNING person_id
	`,
		firstNameID, paternalID, maternalID,
		p.BirthDate, p.Email, p.Phone,
		p.GenderID, p.JobPositionID, p.PersonTypeID,
		p.SocialNetwork, p.Age,
	).Scan(&personID)
	if err != nil {
		return 0, 0, fmt.Errorf("error al insertar persona: %w", err)
	}

	var userID int
	err = tx.QueryRow(`
		INSERT INTO app_user (person_id, login, password, start_date, expiry_date, account_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id
	`,
		personID, u.Login, u.Password, u.StartDate, u.ExpiryDate, u.AccountStatus,
	).Scan(&userID)
	if err != nil {
		return 0, 0, fmt.Errorf("error al insertar usuario: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("error committing tx: %w", err)
	}

	return personID, userID, nil
}

// Update actualiza persona y usuario existentes en una transacción,
// re-resolviendo nombre y apellidos contra sus catálogos
func (r *personRepository) Update(userID, personID int, p domain.PersonFields, u domain.UserFields) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("error starting tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	firstNameID, paternalID, maternalID, err := resolveNameKeys(tx, p)
	if err != nil {
		return err
	}

	var result sql.Result
	result, err = tx.Exec(`
		UPDATE person
		SET first_name_id       = $1,
		    paternal_surname_id = $2,
		    maternal_surname_id = $3,
		    birth_date          = $4,
		    email               = $5,
		    phone               = $6,
		    gender_id           = $7,
		    job_position_id     = $8,
		    person_type_id      = $9,
		    social_network      = $10,
		    age                 = $11
		WHERE person_id = $12
	`,
		firstNameID, paternalID, maternalID,
		p.BirthDate, p.Email, p.Phone,
		p.GenderID, p.JobPositionID, p.PersonTypeID,
		p.SocialNetwork, p.Age,
		personID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar persona: %w", err)
	}

	var rowsAffected int64
	rowsAffected, err = result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rowsAffected == 0 {
		err = domain.ErrNotFound
		return err
	}

	// Una contraseña vacía en la petición conserva la vigente
	result, err = tx.Exec(`
		UPDATE app_user
		SET login          = $1,
		    password       = COALESCE(NULLIF($2, ''), password),
		    start_date     = $3,
		    expiry_date    = $4,
		    account_status = $5
		WHERE user_id = $6
	`,
		u.Login, u.Password, u.StartDate, u.ExpiryDate, u.AccountStatus, userID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar usuario: %w", err)
	}

	rowsAffected, err = result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rowsAffected == 0 {
		err = domain.ErrNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing tx: %w", err)
	}

	return nil
}

// Delete elimina la persona ligada a un usuario; el usuario cae por la
// cascada del esquema. La lectura previa de persona y login falla antes
// de abrir transacción alguna si el usuario no existe.
func (r *personRepository) Delete(userID int) (int, string, error) {
	var row struct {
		PersonID int    `db:"person_id"`
		Login    string `db:"login"`
	}
	err := r.db.Get(&row, `SELECT person_id, login FROM app_user WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return 0, "", domain.ErrNotFound
	}
	if err != nil {
		return 0, "", fmt.Errorf("error al buscar persona a eliminar: %w", err)
	}

	result, err := r.db.Exec(`DELETE FROM person WHERE person_id = $1`, row.PersonID)
	if err != nil {
		return 0, "", fmt.Errorf("error al eliminar persona: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, "", fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rowsAffected == 0 {
		return 0, "", domain.ErrNotFound
	}

	return row.PersonID, row.Login, nil
}

// ListSummaries devuelve el listado general de personas con las
// etiquetas de catálogo ya unidas
func (r *personRepository) ListSummaries() ([]domain.PersonSummary, error) {
	query := `
		SELECT u.user_id,
		       u.login,
		       n.description || ' ' || ap.description || ' ' || am.description AS full_name,
		       COALESCE(tp.description, '') AS person_type,
		       COALESCE(jp.description, '') AS job_position,
		       dp.email,
		       dp.phone,
		       u.account_status
		FROM app_user u
		         JOIN person dp ON u.person_id = dp.person_id
		         JOIN first_name n ON dp.first_name_id = n.first_name_id
		         JOIN surname ap ON dp.paternal_surname_id = ap.surname_id
		         JOIN surname am ON dp.maternal_surname_id = am.surname_id
		         LEFT JOIN person_type tp ON dp.person_type_id = tp.person_type_id
		         LEFT JOIN job_position jp ON dp.job_position_id = jp.job_position_id
		ORDER BY full_name
	`

	summaries := []domain.PersonSummary{}
	if err := r.db.Select(&summaries, query); err != nil {
		return nil, fmt.Errorf("error al obtener listado de personas: %w", err)
	}

	return summaries, nil
}

// GetDetail devuelve la vista completa de una persona y su credencial
func (r *personRepository) GetDetail(userID int) (*domain.PersonDetail, error) {
	query := `
		SELECT dp.person_id,
		       n.description  AS first_name,
		       ap.description AS paternal_surname,
		       am.description AS maternal_surname,
		       dp.birth_date,
		       dp.email,
		       dp.phone,
		       dp.gender_id,
		       dp.job_position_id,
		       dp.person_type_id,
		       u.login,
		       u.password,
		       u.start_date,
		       u.expiry_date,
		       u.account_status
		FROM app_user u
		         JOIN person dp ON u.person_id = dp.person_id
		         JOIN first_name n ON dp.first_name_id = n.first_name_id
		         JOIN surname ap ON dp.paternal_surname_id = ap.surname_id
		         JOIN surname am ON dp.maternal_surname_id = am.surname_id
		WHERE u.user_id = $1
	`

	detail := &domain.PersonDetail{}
	err := r.db.Get(detail, query, userID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener datos de la persona: %w", err)
	}

	return detail, nil
}

// ListStudents devuelve las personas de tipo Alumno para listas de selección
func (r *personRepository) ListStudents() ([]domain.StudentOption, error) {
	query := `
		SELECT u.user_id,
		       n.description || ' ' || ap.description || ' ' || am.description AS full_name
		FROM app_user u
		         JOIN person dp ON u.person_id = dp.person_id
		         JOIN person_type tp ON dp.person_type_id = tp.person_type_id
		         JOIN first_name n ON dp.first_name_id = n.first_name_id
		         JOIN surname ap ON dp.paternal_surname_id = ap.surname_id
		         JOIN surname am ON dp.maternal_surname_id = am.surname_id
		WHERE tp.description = 'Alumno'
		ORDER BY full_name
	`

	students := []domain.StudentOption{}
	if err := r.db.Select(&students, query); err != nil {
		return nil, fmt.Errorf("error al obtener la lista de alumnos: %w", err)
	}

	return students, nil
}
