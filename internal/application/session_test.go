package application

import (
	"testing"
	"time"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndResolve(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	profile := &domain.Profile{UserID: 1, FirstName: "Ana"}

	token := sm.Create("agarcia", profile)
	require.NotEmpty(t, token)

	session, ok := sm.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "agarcia", session.Login)
	assert.Equal(t, profile, session.Profile)
}

func TestSessionResolveTokenDesconocido(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	_, ok := sm.Resolve("no-existe")
	assert.False(t, ok)
}

func TestSessionExpira(t *testing.T) {
	sm := NewSessionManager(-time.Second)

	token := sm.Create("agarcia", &domain.Profile{UserID: 1})

	_, ok := sm.Resolve(token)
	assert.False(t, ok)
}

func TestSessionInvalidate(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	token := sm.Create("agarcia", &domain.Profile{UserID: 1})
	sm.Invalidate(token)

	_, ok := sm.Resolve(token)
	assert.False(t, ok)
}

func TestSessionTokensUnicos(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	profile := &domain.Profile{UserID: 1}

	t1 := sm.Create("agarcia", profile)
	t2 := sm.Create("agarcia", profile)

	assert.NotEqual(t, t1, t2)
}

func TestModuleStateArrancaConsultando(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	token := sm.Create("agarcia", &domain.Profile{UserID: 1})

	state, ok := sm.ModuleState(token, domain.EntityPersons)

	require.True(t, ok)
	assert.Equal(t, domain.EditStateBrowsing, state.State)
	assert.Equal(t, domain.EntityPersons, state.Entity)
}

func TestModuleStateSesionDesconocida(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	_, ok := sm.ModuleState("no-existe", domain.EntityPersons)
	assert.False(t, ok)
}

func TestTransitionModule(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	token := sm.Create("agarcia", &domain.Profile{UserID: 1})

	state, err := sm.TransitionModule(token, domain.EntityPersons, domain.EditStateCreating)
	require.NoError(t, err)
	assert.Equal(t, domain.EditStateCreating, state.State)

	// Desde captura solo se vuelve a consulta
	_, err = sm.TransitionModule(token, domain.EntityPersons, domain.EditStateEditing)
	require.Error(t, err)

	// El rechazo no altera el estado vigente
	state, ok := sm.ModuleState(token, domain.EntityPersons)
	require.True(t, ok)
	assert.Equal(t, domain.EditStateCreating, state.State)
}

func TestTransitionModuleEstadosIndependientesPorModulo(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	token := sm.Create("agarcia", &domain.Profile{UserID: 1})

	_, err := sm.TransitionModule(token, domain.EntityPersons, domain.EditStateCreating)
	require.NoError(t, err)

	state, ok := sm.ModuleState(token, domain.EntityPayments)
	require.True(t, ok)
	assert.Equal(t, domain.EditStateBrowsing, state.State)
}

func TestTransitionModuleSesionDesconocida(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	_, err := sm.TransitionModule("no-existe", domain.EntityPersons, domain.EditStateCreating)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvalidateLimpiaLosEstadosDeModulo(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	token := sm.Create("agarcia", &domain.Profile{UserID: 1})

	_, err := sm.TransitionModule(token, domain.EntityPersons, domain.EditStateCreating)
	require.NoError(t, err)

	sm.Invalidate(token)

	_, ok := sm.ModuleState(token, domain.EntityPersons)
	assert.False(t, ok)
}
