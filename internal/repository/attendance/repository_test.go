package attendance

import (
	"context"
	"regexp"
	"testing"
	"time"

	"gym-ledger/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*attendanceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &attendanceRepository{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestCreate(t *testing.T) {
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("inserted", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, attendance_date) DO NOTHING`)).
			WithArgs(int64(1), int64(7), today, true).
			WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}).AddRow(11))

		a := &models.Attendance{MemberID: 1, SubscriptionID: 7, Date: today, IsPresent: true}
		inserted, err := repo.Create(context.Background(), a)

		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, int64(11), a.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already marked", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO gym."ATTENDANCE"`)).
			WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}))

		inserted, err := repo.Create(context.Background(), &models.Attendance{MemberID: 1, SubscriptionID: 7, Date: today, IsPresent: true})

		require.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
