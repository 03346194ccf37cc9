package stats

import (
	"context"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

// statsWindowDays - окно для "месячных" показателей
const statsWindowDays = 30

type statsRepository struct {
	db repository.Querier
}

func NewStatsRepository(db repository.Querier) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetStatistics(ctx context.Context, today time.Time) (*models.Statistics, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(amount), 0)
			   FROM gym."TRANSACTION" WHERE status = 'completed') AS total_revenue,
			(SELECT COALESCE(SUM(amount), 0)
			   FROM gym."TRANSACTION"
			  WHERE status = 'completed' AND transaction_date >= $2) AS monthly_revenue,
			(SELECT COUNT(*) FROM gym."USER") AS total_members,
			(SELECT COUNT(*) FROM gym."USER" u
			  WHERE EXISTS (
				SELECT 1 FROM gym."SUBSCRIPTION" s
				WHERE s.user_id = u.user_id AND s.is_active = TRUE AND s.status = 'active'
			  )) AS active_members,
			(SELECT COUNT(*) FROM gym."ATTENDANCE" WHERE attendance_date = $1) AS today_attendance,
			(SELECT ROUND(COUNT(*)::numeric / $3, 2)
			   FROM gym."ATTENDANCE" WHERE attendance_date >= $2) AS monthly_average_attendance
	`
	since := today.AddDate(0, 0, -statsWindowDays)

	var stats models.Statistics
	if err := r.db.GetContext(ctx, &stats, query, today, since, statsWindowDays); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) GetMemberOverview(ctx context.Context) ([]models.MemberOverview, error) {
	var members []models.MemberOverview
	query := `
		SELECT
			u.user_id,
			u.username,
			u.email,
			s.status AS sub_status,
			s.start_date,
			s.end_date,
			s.remaining_days
		FROM gym."USER" u
		LEFT JOIN gym."SUBSCRIPTION" s ON u.user_id = s.user_id
			AND s.is_active = TRUE AND s.status = 'active'
		ORDER BY u.user_id, s.end_date DESC
	`
	err := r.db.SelectContext(ctx, &members, query)
	return members, err
}
