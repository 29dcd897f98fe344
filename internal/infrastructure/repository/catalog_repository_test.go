package repository

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func firstNamesRef(t *testing.T) domain.CatalogRef {
	t.Helper()

	ref, err := domain.CatalogByID(domain.CatalogFirstNames)
	require.NoError(t, err)
	return ref
}

func TestResolveCatalogIDValorExistente(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT first_name_id FROM first_name`).
		WithArgs("Ana").
		WillReturnRows(sqlmock.NewRows([]string{"first_name_id"}).AddRow(7))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	id, err := resolveCatalogID(tx, firstNamesRef(t), "Ana")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	require.NoError(t, tx.Commit())

	// Un valor existente nunca produce un INSERT
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveCatalogIDValorNuevo(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT first_name_id FROM first_name`).
		WithArgs("Zoe").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO first_name`).
		WithArgs("Zoe").
		WillReturnRows(sqlmock.NewRows([]string{"first_name_id"}).AddRow(8))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	id, err := resolveCatalogID(tx, firstNamesRef(t), "Zoe")
	require.NoError(t, err)
	assert.Equal(t, 8, id)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveCatalogIDEsIdempotente(t *testing.T) {
	db, mock := newMockDB(t)

	// Primera resolución: no existe, se inserta con clave 8. Segunda
	// resolución del mismo valor: se encuentra y devuelve la misma clave.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT first_name_id FROM first_name`).
		WithArgs("Zoe").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO first_name`).
		WithArgs("Zoe").
		WillReturnRows(sqlmock.NewRows([]string{"first_name_id"}).AddRow(8))
	mock.ExpectQuery(`SELECT first_name_id FROM first_name`).
		WithArgs("Zoe").
		WillReturnRows(sqlmock.NewRows([]string{"first_name_id"}).AddRow(8))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	ref := firstNamesRef(t)

	first, err := resolveCatalogID(tx, ref, "Zoe")
	require.NoError(t, err)

	second, err := resolveCatalogID(tx, ref, "Zoe")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogListUsaElRegistro(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(`SELECT gender_id AS id, description AS description FROM gender`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description"}).
			AddRow(1, "Femenino").
			AddRow(2, "Masculino"))

	entries, err := repo.Genders()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Femenino", entries[0].Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}
