package repository

import (
	"fmt"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/jmoiron/sqlx"
)

type auditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository crea una nueva instancia del repositorio de bitácora
func NewAuditRepository(db *sqlx.DB) domain.AuditRepository {
	return &auditRepository{db: db}
}

// RecordAccess inserta una entrada en la bitácora de accesos. La marca
// de tiempo la asigna la base de datos.
func (r *auditRepository) RecordAccess(rec domain.AccessRecord) error {
	query := `
		INSERT INTO access_log (attempted_login, ip_address, event_time, success, detail)
		VALUES ($1, $2, NOW(), $3, $4)
	`

	success := 0
	if rec.Success {
		success = 1
	}

	if _, err := r.db.Exec(query, rec.Login, rec.IPAddress, success, rec.Detail); err != nil {
		return fmt.Errorf("error al registrar en bitácora: %w", err)
	}

	return nil
}

// RecordError inserta una entrada en el registro de errores inesperados
func (r *auditRepository) RecordError(rec domain.ErrorRecord) error {
	query := `
		INSERT INTO error_log (message, module, event_time, active_user, ip_address)
		VALUES ($1, $2, NOW(), $3, $4)
	`

	if _, err := r.db.Exec(query, rec.Message, rec.Module, rec.ActiveUser, rec.IPAddress); err != nil {
		return fmt.Errorf("error al registrar en bitácora de errores: %w", err)
	}

	return nil
}
