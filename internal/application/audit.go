package application

import (
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
)

// auditTrail escribe en los sumideros de auditoría. Un fallo al
// auditar nunca altera el resultado de la operación de datos que lo
// originó: la durabilidad de los datos tiene prioridad sobre la
// completitud de la bitácora.
type auditTrail struct {
	repo domain.AuditRepository
	log  *logger.Logger
}

func newAuditTrail(repo domain.AuditRepository, log *logger.Logger) *auditTrail {
	return &auditTrail{repo: repo, log: log}
}

// Record deja constancia de una acción en la bitácora de accesos
func (a *auditTrail) Record(login string, success bool, detail string) {
	rec := domain.AccessRecord{
		Login:     login,
		IPAddress: LocalIP(),
		Success:   success,
		Detail:    detail,
	}

	if err := a.repo.RecordAccess(rec); err != nil {
		a.log.Warn("Bitacora", "no se pudo registrar acceso (%s): %v", detail, err)
	}
}

// Error deja constancia de un error inesperado en su bitácora
func (a *auditTrail) Error(message, module, activeUser string) {
	if activeUser == "" {
		activeUser = "Desconocido"
	}

	rec := domain.ErrorRecord{
		Message:    message,
		Module:     module,
		ActiveUser: activeUser,
		IPAddress:  LocalIP(),
	}

	if err := a.repo.RecordError(rec); err != nil {
		a.log.Warn("Bitacora", "no se pudo registrar error de %s: %v", module, err)
	}
}
