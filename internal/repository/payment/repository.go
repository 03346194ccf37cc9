package payment

import (
	"context"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

type paymentRepository struct {
	db repository.Querier
}

func NewPaymentRepository(db repository.Querier) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO gym."PAYMENT" (user_id, class_id, amount, payment_status)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id, created_at
	`
	return r.db.QueryRowxContext(ctx, query, payment.MemberID, payment.ClassID, payment.Amount, payment.Status).
		Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) GetPendingForUpdate(ctx context.Context, memberID, classID int64) (*models.Payment, error) {
	var payment models.Payment
	query := `
		SELECT * FROM gym."PAYMENT"
		WHERE user_id = $1 AND class_id = $2 AND payment_status = 'pending'
		ORDER BY payment_id
		LIMIT 1
		FOR UPDATE`

	err := r.db.GetContext(ctx, &payment, query, memberID, classID)
	if err != nil {
		if err = repository.MapError(err); err == repository.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) CompletePending(ctx context.Context, memberID, classID int64) (int64, error) {
	query := `
		UPDATE gym."PAYMENT"
		SET payment_status = 'completed'
		WHERE user_id = $1 AND class_id = $2 AND payment_status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, memberID, classID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
