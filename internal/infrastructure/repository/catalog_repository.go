package repository

import (
	"database/sql"
	"fmt"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/jmoiron/sqlx"
)

type catalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository crea una nueva instancia del repositorio de catálogos
func NewCatalogRepository(db *sqlx.DB) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

// List devuelve las entradas de un catálogo ordenadas por descripción.
// La referencia proviene del registro cerrado validado en el arranque,
// por lo que interpolarla en la consulta es seguro.
func (r *catalogRepository) List(ref domain.CatalogRef) ([]domain.CatalogEntry, error) {
	query := fmt.Sprintf(
		"SELECT %s AS id, %s AS description FROM %s ORDER BY %s",
		ref.IDColumn, ref.DescColumn, ref.Table, ref.DescColumn,
	)

	entries := []domain.CatalogEntry{}
	if err := r.db.Select(&entries, query); err != nil {
		return nil, fmt.Errorf("error al obtener catálogo %s: %w", ref.Table, err)
	}

	return entries, nil
}

func (r *catalogRepository) Genders() ([]domain.CatalogEntry, error) {
	return r.listByID(domain.CatalogGenders)
}

func (r *catalogRepository) JobPositions() ([]domain.CatalogEntry, error) {
	return r.listByID(domain.CatalogJobPositions)
}

func (r *catalogRepository) PersonTypes() ([]domain.CatalogEntry, error) {
	return r.listByID(domain.CatalogPersonTypes)
}

func (r *catalogRepository) listByID(id domain.CatalogID) ([]domain.CatalogEntry, error) {
	ref, err := domain.CatalogByID(id)
	if err != nil {
		return nil, err
	}
	return r.List(ref)
}

// resolveCatalogID busca una descripción en su catálogo y devuelve la
// clave subrogada, insertando una fila nueva si no existe. Corre dentro
// de la transacción del escritor: cualquier error aquí revienta la
// transacción completa. Dos llamadores concurrentes resolviendo el
// mismo valor nuevo chocan con el índice único y uno de los dos
// revierte; limitación aceptada con un solo administrador.
func resolveCatalogID(tx *sqlx.Tx, ref domain.CatalogRef, value string) (int, error) {
	var id int

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", ref.IDColumn, ref.Table, ref.DescColumn)
	err := tx.QueryRow(query, value).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("error al consultar catálogo %s: %w", ref.Table, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) RETURNING %s", ref.Table, ref.DescColumn, ref.IDColumn)
	if err := tx.QueryRow(insert, value).Scan(&id); err != nil {
		return 0, fmt.Errorf("error al insertar en catálogo %s: %w", ref.Table, err)
	}

	return id, nil
}
