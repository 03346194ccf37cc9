package admin

import (
	"context"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

type adminRepository struct {
	db repository.Querier
}

func NewAdminRepository(db repository.Querier) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO gym."ADMIN" (username, email, password, wallet_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING admin_id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, admin.Username, admin.Email, admin.PasswordHash, admin.WalletBalance).
		Scan(&admin.ID, &admin.CreatedAt)
	return repository.MapError(err)
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	query := `SELECT * FROM gym."ADMIN" WHERE username = $1`
	if err := r.db.GetContext(ctx, &admin, query, username); err != nil {
		return nil, repository.MapError(err)
	}
	return &admin, nil
}

func (r *adminRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, bool, error) {
	query := `
		SELECT
			EXISTS(SELECT 1 FROM gym."ADMIN" WHERE username = $1),
			EXISTS(SELECT 1 FROM gym."ADMIN" WHERE email = $2)
	`
	var usernameTaken, emailTaken bool
	err := r.db.QueryRowxContext(ctx, query, username, email).Scan(&usernameTaken, &emailTaken)
	return usernameTaken, emailTaken, err
}

func (r *adminRepository) LockByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	query := `SELECT * FROM gym."ADMIN" WHERE admin_id = $1 FOR UPDATE`
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		return nil, repository.MapError(err)
	}
	return &admin, nil
}

func (r *adminRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) error {
	query := `UPDATE gym."ADMIN" SET wallet_balance = wallet_balance + $1 WHERE admin_id = $2`
	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
