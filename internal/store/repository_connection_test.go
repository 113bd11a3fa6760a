// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTestConnectionRepo(t *testing.T) (*connectionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	repo := &connectionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock, db
}

func connectionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "client", "name", "remote_id", "created_at", "updated_at"})
}

func uniqueViolation() error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, client, name, remote_id, created_at, updated_at FROM connections WHERE client = \\?").
		WithArgs("AnyDesk").
		WillReturnRows(connectionRows().
			AddRow("1", "AnyDesk", "Кафе", "123456789", fixedNow, fixedNow).
			AddRow("2", "AnyDesk", "Офис", "987654321", fixedNow, fixedNow))

	got, err := repo.List(context.Background(), models.ConnectionFilter{Client: models.ClientAnyDesk})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ClientAnyDesk, got[0].Client)
	assert.Equal(t, "Кафе", got[0].Name)
	assert.Equal(t, "987654321", got[1].RemoteID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), models.ConnectionFilter{})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestList_ScanError(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(connectionRows().AddRow("1", "AnyDesk", "n", "1", "not a time", fixedNow))

	_, err := repo.List(context.Background(), models.ConnectionFilter{})

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM connections WHERE id = \\?").
		WithArgs("missing").
		WillReturnRows(connectionRows())

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestGet_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM connections WHERE id = \\?").
		WithArgs("7").
		WillReturnRows(connectionRows().AddRow("7", "LiteManager", "Склад", "MH_12345", fixedNow, fixedNow))

	got, err := repo.Get(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, models.ClientLiteManager, got.Client)
	assert.Equal(t, "MH_12345", got.RemoteID)
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestAdd_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	c := models.Connection{ID: "1", Client: models.ClientAnyDesk, Name: "n", RemoteID: "123456789", CreatedAt: fixedNow, UpdatedAt: fixedNow}
	mock.ExpectExec("INSERT INTO connections \\(id,client,name,remote_id,created_at,updated_at\\)").
		WithArgs("1", "AnyDesk", "n", "123456789", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Add(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_Duplicate(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO connections").WillReturnError(uniqueViolation())

	err := repo.Add(context.Background(), models.Connection{ID: "1", Client: models.ClientAnyDesk})

	assert.ErrorIs(t, err, ErrConnectionExists)
}

func TestAdd_OtherError(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO connections").WillReturnError(errors.New("disk full"))

	err := repo.Add(context.Background(), models.Connection{ID: "1"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Update / Delete ─────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE connections SET client = \\?, name = \\?, remote_id = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("AnyDesk", "new", "111222333", fixedNow, "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), models.Connection{ID: "1", Client: models.ClientAnyDesk, Name: "new", RemoteID: "111222333"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE connections").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), models.Connection{ID: "x"})

	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestUpdate_Duplicate(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE connections").WillReturnError(uniqueViolation())

	err := repo.Update(context.Background(), models.Connection{ID: "x"})

	assert.ErrorIs(t, err, ErrConnectionExists)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM connections WHERE id = \\?").WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM connections WHERE id = \\?").WithArgs("2").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "2"), ErrConnectionNotFound)
}

func TestCount(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM connections").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
