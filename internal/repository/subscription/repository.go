package subscription

import (
	"context"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

type subscriptionRepository struct {
	db repository.Querier
}

func NewSubscriptionRepository(db repository.Querier) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	query := `
		INSERT INTO gym."SUBSCRIPTION"
		(user_id, start_date, end_date, remaining_days, is_active, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING subscription_id, created_at
	`
	return r.db.QueryRowxContext(
		ctx,
		query,
		subscription.MemberID,
		subscription.StartDate,
		subscription.EndDate,
		subscription.RemainingDays,
		subscription.IsActive,
		subscription.Status,
	).Scan(&subscription.ID, &subscription.CreatedAt)
}

// Периоды [start, end] пересекаются, если start <= новый end и end >= новый start
func (r *subscriptionRepository) FindOverlappingActive(ctx context.Context, memberID int64, start, end time.Time) (*models.Subscription, error) {
	query := `
		SELECT * FROM gym."SUBSCRIPTION"
		WHERE user_id = $1
		AND is_active = TRUE
		AND status = 'active'
		AND start_date <= $2 AND end_date >= $3
		ORDER BY start_date
		LIMIT 1`

	return r.find(ctx, query, memberID, end, start)
}

func (r *subscriptionRepository) FindActiveCovering(ctx context.Context, memberID int64, day time.Time) (*models.Subscription, error) {
	query := `
		SELECT * FROM gym."SUBSCRIPTION"
		WHERE user_id = $1
		AND is_active = TRUE
		AND status = 'active'
		AND $2 BETWEEN start_date AND end_date
		ORDER BY end_date DESC
		LIMIT 1`

	return r.find(ctx, query, memberID, day)
}

func (r *subscriptionRepository) GetCurrentByMemberID(ctx context.Context, memberID int64) (*models.Subscription, error) {
	query := `
		SELECT * FROM gym."SUBSCRIPTION"
		WHERE user_id = $1 AND is_active = TRUE AND status = 'active'
		ORDER BY end_date DESC
		LIMIT 1`

	return r.find(ctx, query, memberID)
}

func (r *subscriptionRepository) find(ctx context.Context, query string, args ...interface{}) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.GetContext(ctx, &subscription, query, args...)
	if err != nil {
		if err = repository.MapError(err); err == repository.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) GetHistoryByMemberID(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	query := `SELECT * FROM gym."SUBSCRIPTION" WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &subscriptions, query, memberID)
	return subscriptions, err
}

func (r *subscriptionRepository) ExpireEnded(ctx context.Context, today time.Time) (int64, error) {
	query := `
		UPDATE gym."SUBSCRIPTION"
		SET status = 'expired', is_active = FALSE, remaining_days = 0
		WHERE status = 'active' AND end_date < $1
	`
	result, err := r.db.ExecContext(ctx, query, today)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *subscriptionRepository) RefreshRemainingDays(ctx context.Context, today time.Time) (int64, error) {
	query := `
		UPDATE gym."SUBSCRIPTION"
		SET remaining_days = (end_date - GREATEST(start_date, $1::date)) + 1
		WHERE status = 'active' AND is_active = TRUE AND end_date >= $1
	`
	result, err := r.db.ExecContext(ctx, query, today)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
