package member

import (
	"context"
	"errors"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

const memberColumns = `user_id, username, email, password, wallet_balance, telegram_id, created_at`

type memberRepository struct {
	db repository.Querier
}

func NewMemberRepository(db repository.Querier) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO gym."USER" (username, email, password, wallet_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at
	`
	err := r.db.QueryRowxContext(
		ctx,
		query,
		member.Username,
		member.Email,
		member.PasswordHash,
		member.WalletBalance,
	).Scan(&member.ID, &member.CreatedAt)
	return repository.MapError(err)
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM gym."USER" WHERE user_id = $1`, id)
}

func (r *memberRepository) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM gym."USER" WHERE username = $1`, username)
}

func (r *memberRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.Member, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM gym."USER" WHERE telegram_id = $1`, telegramID)
}

func (r *memberRepository) LockByID(ctx context.Context, id int64) (*models.Member, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM gym."USER" WHERE user_id = $1 FOR UPDATE`, id)
}

func (r *memberRepository) get(ctx context.Context, query string, arg interface{}) (*models.Member, error) {
	var member models.Member
	if err := r.db.GetContext(ctx, &member, query, arg); err != nil {
		return nil, repository.MapError(err)
	}
	return &member, nil
}

func (r *memberRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, bool, error) {
	query := `
		SELECT
			EXISTS(SELECT 1 FROM gym."USER" WHERE username = $1),
			EXISTS(SELECT 1 FROM gym."USER" WHERE email = $2)
	`
	var usernameTaken, emailTaken bool
	err := r.db.QueryRowxContext(ctx, query, username, email).Scan(&usernameTaken, &emailTaken)
	return usernameTaken, emailTaken, err
}

func (r *memberRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) error {
	query := `UPDATE gym."USER" SET wallet_balance = wallet_balance + $1 WHERE user_id = $2`
	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	return requireOneRow(result.RowsAffected())
}

func (r *memberRepository) SetTelegramID(ctx context.Context, id int64, telegramID int64) error {
	query := `UPDATE gym."USER" SET telegram_id = $1 WHERE user_id = $2`
	result, err := r.db.ExecContext(ctx, query, telegramID, id)
	if err != nil {
		return repository.MapError(err)
	}
	return requireOneRow(result.RowsAffected())
}

func requireOneRow(rowsAffected int64, err error) error {
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	if rowsAffected > 1 {
		return errors.New("more than one row affected")
	}
	return nil
}
