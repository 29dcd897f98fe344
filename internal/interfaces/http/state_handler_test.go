package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeModuleState(t *testing.T, resp *http.Response) domain.ModuleState {
	t.Helper()

	var body struct {
		Data domain.ModuleState `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}

func TestModuleStateEndpointArrancaConsultando(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodGet, "/api/estados/personas", token, nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	state := decodeModuleState(t, resp)
	assert.Equal(t, domain.EntityPersons, state.Entity)
	assert.Equal(t, domain.EditStateBrowsing, state.State)
}

func TestModuleStateEndpointModuloDesconocido(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodGet, "/api/estados/inventario", token, nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestModuleStateEndpointTransicion(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodPut, "/api/estados/personas", token, map[string]string{
		"state": "nuevo",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	state := decodeModuleState(t, resp)
	assert.Equal(t, domain.EditStateCreating, state.State)

	// El nuevo estado queda asociado a la sesión
	resp = postJSON(t, app, fiber.MethodGet, "/api/estados/personas", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	state = decodeModuleState(t, resp)
	assert.Equal(t, domain.EditStateCreating, state.State)
}

func TestModuleStateEndpointTransicionInvalida(t *testing.T) {
	app := newTestApp()
	token := loginToken(t, app)

	resp := postJSON(t, app, fiber.MethodPut, "/api/estados/pagos", token, map[string]string{
		"state": "nuevo",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Desde captura no se salta a otro modo de captura
	resp = postJSON(t, app, fiber.MethodPut, "/api/estados/pagos", token, map[string]string{
		"state": "actualizando",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestModuleStateEndpointSinToken(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, fiber.MethodGet, "/api/estados/personas", "", nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
