package transaction

import (
	"context"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
)

type transactionRepository struct {
	db repository.Querier
}

func NewTransactionRepository(db repository.Querier) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO gym."TRANSACTION"
		(user_id, subscription_id, class_id, amount, transaction_type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id, transaction_date
	`
	return r.db.QueryRowxContext(
		ctx,
		query,
		transaction.MemberID,
		transaction.SubscriptionID,
		transaction.ClassID,
		transaction.Amount,
		transaction.Type,
		transaction.Status,
	).Scan(&transaction.ID, &transaction.Date)
}

func (r *transactionRepository) GetByMemberID(ctx context.Context, memberID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	query := `SELECT * FROM gym."TRANSACTION" WHERE user_id = $1 ORDER BY transaction_date DESC`
	err := r.db.SelectContext(ctx, &transactions, query, memberID)
	return transactions, err
}

func (r *transactionRepository) GetAll(ctx context.Context) ([]models.TransactionView, error) {
	var transactions []models.TransactionView
	query := `
		SELECT
			t.transaction_id, t.user_id, t.subscription_id, t.class_id, t.amount,
			t.transaction_type, t.status, t.transaction_date,
			u.username,
			s.start_date AS subscription_start,
			s.end_date AS subscription_end
		FROM gym."TRANSACTION" t
		JOIN gym."USER" u ON t.user_id = u.user_id
		LEFT JOIN gym."SUBSCRIPTION" s ON t.subscription_id = s.subscription_id
		ORDER BY t.transaction_date DESC
	`
	err := r.db.SelectContext(ctx, &transactions, query)
	return transactions, err
}
