package application

import (
	"errors"
	"fmt"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
)

const moduleAuth = "Autenticacion"

// AuthService es el gate de credenciales: valida el acceso una vez por
// sesión y administra los cambios de contraseña y estado de cuenta
type AuthService struct {
	userRepo  domain.UserRepository
	audit     *auditTrail
	sessions  *SessionManager
	validator *Validator
	log       *logger.Logger
}

// NewAuthService crea una nueva instancia del servicio de autenticación
func NewAuthService(userRepo domain.UserRepository, auditRepo domain.AuditRepository, sessions *SessionManager, log *logger.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		audit:     newAuditTrail(auditRepo, log),
		sessions:  sessions,
		validator: &Validator{},
		log:       log,
	}
}

// Login autentica un par login/contraseña y abre una sesión. Devuelve
// ErrInvalidCredentials cuando no hay coincidencia exacta y
// ErrStoreUnavailable cuando el almacén no responde; el llamador debe
// distinguir ambos casos.
func (s *AuthService) Login(login, password string) (*domain.Profile, string, error) {
	if login == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	profile, err := s.userRepo.Authenticate(login, password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		s.audit.Record(login, false, "AUDITORIA SEGURIDAD: Intento de acceso fallido.")
		return nil, "", err
	}
	if err != nil {
		s.log.Error(moduleAuth, "fallo al autenticar %s: %v", login, err)
		return nil, "", err
	}

	token := s.sessions.Create(login, profile)
	s.audit.Record(login, true, "AUDITORIA SEGURIDAD: Acceso exitoso al sistema.")

	return profile, token, nil
}

// Logout cierra la sesión asociada al token
func (s *AuthService) Logout(token string) {
	if session, ok := s.sessions.Resolve(token); ok {
		s.audit.Record(session.Login, true, "AUDITORIA SEGURIDAD: Cierre de sesión.")
	}
	s.sessions.Invalidate(token)
}

// ResolveSession devuelve la sesión activa de un token
func (s *AuthService) ResolveSession(token string) (Session, bool) {
	return s.sessions.Resolve(token)
}

// ChangePassword cambia la contraseña del usuario autenticado. Verifica
// la contraseña vigente, la política de la nueva y que no esté en uso
// por otra cuenta; ante la duda (fallo al verificar) el cambio se niega.
func (s *AuthService) ChangePassword(login, currentPassword, newPassword, repeatPassword string) error {
	if _, err := s.userRepo.Authenticate(login, currentPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return fmt.Errorf("la contraseña anterior no es igual a la ingresada")
		}
		return err
	}

	if newPassword == "" || repeatPassword == "" {
		return fmt.Errorf("la contraseña nueva y su repetición no pueden estar vacías")
	}
	if newPassword != repeatPassword {
		return fmt.Errorf("las nuevas contraseñas no coinciden")
	}
	if newPassword == currentPassword {
		return fmt.Errorf("la nueva contraseña no puede ser igual a la anterior")
	}
	if err := s.validator.ValidatePassword(newPassword); err != nil {
		return err
	}

	inUse, err := s.userRepo.PasswordInUse(newPassword)
	if err != nil {
		s.log.Warn(moduleAuth, "no se pudo verificar reutilización de contraseña: %v", err)
		return domain.ErrPasswordInUse
	}
	if inUse {
		return domain.ErrPasswordInUse
	}

	if err := s.userRepo.ChangePassword(login, newPassword); err != nil {
		s.audit.Error(err.Error(), moduleAuth, login)
		return err
	}

	s.audit.Record(login, true, "AUDITORIA SEGURIDAD: Cambio de contraseña exitoso.")

	return nil
}

// UpdateAccountStatus cambia el estado de cuenta de un usuario
func (s *AuthService) UpdateAccountStatus(userID int, status domain.AccountStatus, actorLogin string) error {
	if status != domain.AccountStatusActiva && status != domain.AccountStatusInactiva {
		return fmt.Errorf("estado de cuenta desconocido: %s", status)
	}

	if err := s.userRepo.UpdateAccountStatus(userID, status); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.audit.Error(err.Error(), moduleAuth, actorLogin)
		}
		return err
	}

	s.audit.Record(actorLogin, true,
		fmt.Sprintf("AUDITORIA BD: UPDATE de estado de cuenta. Usuario ID: %d, Estado: %s", userID, status))

	return nil
}
