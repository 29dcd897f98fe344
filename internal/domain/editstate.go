package domain

import "fmt"

// EditState es el modo de edición de un módulo CRUD. Sustituye a las
// banderas de modo duplicadas por módulo con un solo enum etiquetado.
type EditState string

const (
	EditStateBrowsing EditState = "consultando"
	EditStateCreating EditState = "nuevo"
	EditStateEditing  EditState = "actualizando"
	EditStateDeleting EditState = "eliminando"
)

// EntityKind identifica el módulo al que pertenece un estado de edición
type EntityKind string

const (
	EntityPersons  EntityKind = "personas"
	EntityPayments EntityKind = "pagos"
	EntityCatalogs EntityKind = "catalogos"
)

// ParseEntityKind valida un identificador de módulo recibido de la
// frontera
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case EntityPersons, EntityPayments, EntityCatalogs:
		return EntityKind(s), nil
	}
	return "", fmt.Errorf("módulo desconocido: %s", s)
}

// ModuleState empareja un módulo con su modo de edición vigente
type ModuleState struct {
	Entity EntityKind `json:"entity"`
	State  EditState  `json:"state"`
}

// Transition valida un cambio de modo. Desde consulta se puede pasar a
// cualquier modo; desde un modo de captura solo se vuelve a consulta.
func (m ModuleState) Transition(next EditState) (ModuleState, error) {
	switch next {
	case EditStateBrowsing, EditStateCreating, EditStateEditing, EditStateDeleting:
	default:
		return m, fmt.Errorf("estado de edición desconocido: %s", next)
	}
	if m.State != EditStateBrowsing && next != EditStateBrowsing {
		return m, fmt.Errorf("transición inválida de %s a %s en %s", m.State, next, m.Entity)
	}
	return ModuleState{Entity: m.Entity, State: next}, nil
}
