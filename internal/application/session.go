package application

import (
	"sync"
	"time"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/google/uuid"
)

// Session representa una sesión activa de un administrador
type Session struct {
	Token     string
	Login     string
	Profile   *domain.Profile
	ExpiresAt time.Time
}

// SessionManager mantiene las sesiones activas en memoria con un TTL
// fijo, junto con el modo de edición vigente de cada módulo por
// sesión. El proceso es el único dueño de sus sesiones; no sobreviven
// a un reinicio.
type SessionManager struct {
	sessions map[string]Session
	modules  map[string]map[domain.EntityKind]domain.EditState
	mu       sync.RWMutex
	ttl      time.Duration
}

// NewSessionManager crea un nuevo administrador de sesiones
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]Session),
		modules:  make(map[string]map[domain.EntityKind]domain.EditState),
		ttl:      ttl,
	}
}

// Create registra una sesión nueva y devuelve su token
func (sm *SessionManager) Create(login string, profile *domain.Profile) string {
	token := uuid.NewString()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.sessions[token] = Session{
		Token:     token,
		Login:     login,
		Profile:   profile,
		ExpiresAt: time.Now().Add(sm.ttl),
	}

	return token
}

// Resolve devuelve la sesión de un token si existe y no ha expirado
func (sm *SessionManager) Resolve(token string) (Session, bool) {
	sm.mu.RLock()
	session, ok := sm.sessions[token]
	sm.mu.RUnlock()

	if !ok {
		return Session{}, false
	}

	if time.Now().After(session.ExpiresAt) {
		sm.Invalidate(token)
		return Session{}, false
	}

	return session, true
}

// Invalidate elimina una sesión y sus estados de edición
func (sm *SessionManager) Invalidate(token string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, token)
	delete(sm.modules, token)
}

// ModuleState devuelve el modo de edición vigente de un módulo en la
// sesión; toda sesión arranca consultando
func (sm *SessionManager) ModuleState(token string, entity domain.EntityKind) (domain.ModuleState, bool) {
	if _, ok := sm.Resolve(token); !ok {
		return domain.ModuleState{}, false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	state := domain.EditStateBrowsing
	if states, ok := sm.modules[token]; ok {
		if s, ok := states[entity]; ok {
			state = s
		}
	}

	return domain.ModuleState{Entity: entity, State: state}, true
}

// TransitionModule aplica un cambio de modo validado y devuelve el
// estado resultante
func (sm *SessionManager) TransitionModule(token string, entity domain.EntityKind, next domain.EditState) (domain.ModuleState, error) {
	current, ok := sm.ModuleState(token, entity)
	if !ok {
		return domain.ModuleState{}, domain.ErrNotFound
	}

	updated, err := current.Transition(next)
	if err != nil {
		return domain.ModuleState{}, err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.modules[token]; !ok {
		sm.modules[token] = make(map[domain.EntityKind]domain.EditState)
	}
	sm.modules[token][entity] = updated.State

	return updated, nil
}
