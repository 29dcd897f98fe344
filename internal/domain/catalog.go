package domain

import (
	"fmt"
	"regexp"
	"sort"
)

// CatalogEntry es una fila (clave subrogada, descripción) de una tabla
// de normalización
type CatalogEntry struct {
	ID          int    `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
}

// CatalogRef identifica una tabla de catálogo y sus columnas. Las
// consultas solo se arman con referencias salidas del registro cerrado,
// nunca con identificadores aportados por el llamador.
type CatalogRef struct {
	Table      string
	IDColumn   string
	DescColumn string
}

// CatalogID es el identificador público de un catálogo registrado
type CatalogID string

const (
	CatalogFirstNames      CatalogID = "nombres"
	CatalogSurnames        CatalogID = "apellidos"
	CatalogGenders         CatalogID = "generos"
	CatalogJobPositions    CatalogID = "puestos"
	CatalogPersonTypes     CatalogID = "tipos-persona"
	CatalogAcademicDegrees CatalogID = "grados-academicos"
	CatalogHobbies         CatalogID = "aficiones"
	CatalogDepartments     CatalogID = "departamentos"
	CatalogStreets         CatalogID = "calles"
	CatalogDistricts       CatalogID = "colonias"
	CatalogMunicipalities  CatalogID = "municipios"
	CatalogStates          CatalogID = "estados"
	CatalogCountries       CatalogID = "paises"
	CatalogBrands          CatalogID = "marcas"
	CatalogPresentations   CatalogID = "presentaciones"
)

var catalogRegistry = map[CatalogID]CatalogRef{
	CatalogFirstNames:      {Table: "first_name", IDColumn: "first_name_id", DescColumn: "description"},
	CatalogSurnames:        {Table: "surname", IDColumn: "surname_id", DescColumn: "description"},
	CatalogGenders:         {Table: "gender", IDColumn: "gender_id", DescColumn: "description"},
	CatalogJobPositions:    {Table: "job_position", IDColumn: "job_position_id", DescColumn: "description"},
	CatalogPersonTypes:     {Table: "person_type", IDColumn: "person_type_id", DescColumn: "description"},
	CatalogAcademicDegrees: {Table: "academic_degree", IDColumn: "academic_degree_id", DescColumn: "description"},
	CatalogHobbies:         {Table: "hobby", IDColumn: "hobby_id", DescColumn: "description"},
	CatalogDepartments:     {Table: "department", IDColumn: "department_id", DescColumn: "description"},
	CatalogStreets:         {Table: "street", IDColumn: "street_id", DescColumn: "description"},
	CatalogDistricts:       {Table: "district", IDColumn: "district_id", DescColumn: "description"},
	CatalogMunicipalities:  {Table: "municipality", IDColumn: "municipality_id", DescColumn: "description"},
	CatalogStates:          {Table: "state", IDColumn: "state_id", DescColumn: "description"},
	CatalogCountries:       {Table: "country", IDColumn: "country_id", DescColumn: "description"},
	CatalogBrands:          {Table: "brand", IDColumn: "brand_id", DescColumn: "description"},
	CatalogPresentations:   {Table: "presentation", IDColumn: "presentation_id", DescColumn: "description"},
}

var sqlIdentifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// CatalogByID devuelve la referencia de un catálogo registrado
func CatalogByID(id CatalogID) (CatalogRef, error) {
	ref, ok := catalogRegistry[id]
	if !ok {
		return CatalogRef{}, fmt.Errorf("catálogo desconocido: %s", id)
	}
	return ref, nil
}

// CatalogIDs devuelve los identificadores registrados, ordenados
func CatalogIDs() []CatalogID {
	ids := make([]CatalogID, 0, len(catalogRegistry))
	for id := range catalogRegistry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ValidateCatalogRegistry verifica en el arranque que todos los
// identificadores del registro sean nombres SQL válidos
func ValidateCatalogRegistry() error {
	for id, ref := range catalogRegistry {
		for _, ident := range []string{ref.Table, ref.IDColumn, ref.DescColumn} {
			if !sqlIdentifier.MatchString(ident) {
				return fmt.Errorf("catálogo %s: identificador inválido %q", id, ident)
			}
		}
	}
	return nil
}

// CatalogRepository define las lecturas de catálogos
type CatalogRepository interface {
	// List devuelve las entradas de un catálogo ordenadas por descripción
	List(ref CatalogRef) ([]CatalogEntry, error)
	// Genders, JobPositions y PersonTypes son los catálogos que pueblan
	// las listas de selección del módulo de personas
	Genders() ([]CatalogEntry, error)
	JobPositions() ([]CatalogEntry, error)
	PersonTypes() ([]CatalogEntry, error)
}
