package domain

// AccessRecord es una entrada inmutable de la bitácora de accesos. La
// marca de tiempo la asigna el almacén al insertar.
type AccessRecord struct {
	Login     string
	IPAddress string
	Success   bool
	Detail    string
}

// ErrorRecord es una entrada del registro de errores inesperados
type ErrorRecord struct {
	Message    string
	Module     string
	ActiveUser string
	IPAddress  string
}

// AuditRepository define los sumideros de auditoría, solo inserción
type AuditRepository interface {
	RecordAccess(rec AccessRecord) error
	RecordError(rec ErrorRecord) error
}
