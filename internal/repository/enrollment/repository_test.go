package enrollment

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*enrollmentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &enrollmentRepository{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestCompletePending(t *testing.T) {
	t.Run("pending enrollment completed", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE gym."ENROLLMENT"`) + `(?s).*` + regexp.QuoteMeta(`AND payment_status = 'pending'`)).
			WithArgs(int64(1), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.CompletePending(context.Background(), 1, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already completed", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectExec(regexp.QuoteMeta(`SET payment_status = 'completed'`)).
			WithArgs(int64(1), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.CompletePending(context.Background(), 1, 3)

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
