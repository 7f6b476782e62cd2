package storage

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectTables(mock sqlmock.Sqlmock) {
	for range schemaStatements {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestEnsureSchema_AddsRestaurantColumnOnce(t *testing.T) {
	repo, mock := newMockRepo(t)

	expectTables(mock)
	mock.ExpectQuery("information_schema.columns").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("ALTER TABLE orders ADD COLUMN restaurant_id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	expectTables(mock)
	mock.ExpectQuery("information_schema.columns").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, repo.EnsureSchema())
	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sqlmock.Sqlmock)
	}{
		{
			name: "create table fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnError(errors.New("permission denied"))
			},
		},
		{
			name: "column check fails",
			setup: func(mock sqlmock.Sqlmock) {
				expectTables(mock)
				mock.ExpectQuery("information_schema.columns").WillReturnError(errors.New("timeout"))
			},
		},
		{
			name: "alter fails",
			setup: func(mock sqlmock.Sqlmock) {
				expectTables(mock)
				mock.ExpectQuery("information_schema.columns").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec("ALTER TABLE orders").WillReturnError(errors.New("lock timeout"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			testCase.setup(mock)

			assert.Error(t, repo.EnsureSchema())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
