package service

import (
	"context"
	"errors"
	"fmt"

	"gym-ledger/internal/metrics"
	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

// LockMember берёт строку посетителя FOR UPDATE. Во всех операциях с деньгами
// и посещениями это первая блокировка, счёт администратора - вторая.
func LockMember(ctx context.Context, repos *repository.Repositories, memberID int64) (*models.Member, error) {
	member, err := repos.Members.LockByID(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock member %d: %w", memberID, err)
	}
	return member, nil
}

// Transfer списывает amount с посетителя и зачисляет на счёт выручки.
// Вызывается внутри WithinTx после LockMember.
func Transfer(ctx context.Context, repos *repository.Repositories, memberID, adminID int64, amount decimal.Decimal) error {
	if _, err := repos.Admins.LockByID(ctx, adminID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("revenue account %d does not exist", adminID)
		}
		return fmt.Errorf("lock revenue account %d: %w", adminID, err)
	}
	if err := repos.Members.AdjustBalance(ctx, memberID, amount.Neg()); err != nil {
		return fmt.Errorf("debit member %d: %w", memberID, err)
	}
	if err := repos.Admins.AdjustBalance(ctx, adminID, amount); err != nil {
		return fmt.Errorf("credit revenue account %d: %w", adminID, err)
	}
	return nil
}

// Outcome - метка исхода операции для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case IsDomain(err):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
