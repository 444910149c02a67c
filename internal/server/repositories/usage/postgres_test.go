package usage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestPostgresGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT count FROM daily_usage\s+WHERE identity = \$1 AND day = \$2`).
		WithArgs("0xa", "2025-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	got, err := repo.Get(context.Background(), "0xa", day)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGet_NoRowIsZero(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count FROM daily_usage`).WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "0xa", day)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPostgresGet_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count FROM daily_usage`).WillReturnError(errors.New("down"))

	_, err := repo.Get(context.Background(), "0xa", day)
	assert.ErrorContains(t, err, "db error: down")
}

func TestPostgresIncrement(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT INTO daily_usage .*ON CONFLICT \(identity, day\)\s+DO UPDATE SET count = daily_usage\.count \+ 1\s+RETURNING count`).
		WithArgs("0xa", "2025-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	got, err := repo.Increment(context.Background(), "0xa", day)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresIncrement_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO daily_usage`).WillReturnError(errors.New("deadlock"))

	_, err := repo.Increment(context.Background(), "0xa", day)
	assert.Error(t, err)
}
