package attendance

import (
	"context"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

type attendanceRepository struct {
	db repository.Querier
}

func NewAttendanceRepository(db repository.Querier) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create полагается на уникальный индекс (user_id, attendance_date):
// при конфликте строка не вставляется и возвращается false
func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) (bool, error) {
	query := `
		INSERT INTO gym."ATTENDANCE"
		(user_id, subscription_id, attendance_date, is_present)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, attendance_date) DO NOTHING
		RETURNING attendance_id
	`
	err := r.db.QueryRowxContext(
		ctx,
		query,
		attendance.MemberID,
		attendance.SubscriptionID,
		attendance.Date,
		attendance.IsPresent,
	).Scan(&attendance.ID)
	if err != nil {
		if err = repository.MapError(err); err == repository.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *attendanceRepository) GetByMemberAndDate(ctx context.Context, memberID int64, day time.Time) (*models.Attendance, error) {
	var attendance models.Attendance
	query := `SELECT * FROM gym."ATTENDANCE" WHERE user_id = $1 AND attendance_date = $2`

	err := r.db.GetContext(ctx, &attendance, query, memberID, day)
	if err != nil {
		if err = repository.MapError(err); err == repository.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) GetByMemberID(ctx context.Context, memberID int64) ([]models.Attendance, error) {
	var attendances []models.Attendance
	query := `SELECT * FROM gym."ATTENDANCE" WHERE user_id = $1 ORDER BY attendance_date DESC`
	err := r.db.SelectContext(ctx, &attendances, query, memberID)
	return attendances, err
}
