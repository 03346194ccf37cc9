package store

import (
	"context"
	"fmt"

	"gym-ledger/internal/repository"
	"gym-ledger/internal/repository/admin"
	"gym-ledger/internal/repository/attendance"
	"gym-ledger/internal/repository/class"
	"gym-ledger/internal/repository/enrollment"
	"gym-ledger/internal/repository/member"
	"gym-ledger/internal/repository/payment"
	"gym-ledger/internal/repository/stats"
	"gym-ledger/internal/repository/subscription"
	"gym-ledger/internal/repository/transaction"

	"github.com/jmoiron/sqlx"
)

type store struct {
	db    *sqlx.DB
	repos *repository.Repositories
}

func New(db *sqlx.DB) repository.Store {
	return &store{
		db:    db,
		repos: newRepositories(db),
	}
}

func newRepositories(q repository.Querier) *repository.Repositories {
	return &repository.Repositories{
		Members:       member.NewMemberRepository(q),
		Admins:        admin.NewAdminRepository(q),
		Classes:       class.NewClassRepository(q),
		Subscriptions: subscription.NewSubscriptionRepository(q),
		Enrollments:   enrollment.NewEnrollmentRepository(q),
		Payments:      payment.NewPaymentRepository(q),
		Attendance:    attendance.NewAttendanceRepository(q),
		Transactions:  transaction.NewTransactionRepository(q),
		Stats:         stats.NewStatsRepository(q),
	}
}

func (s *store) Repositories() *repository.Repositories {
	return s.repos
}

func (s *store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
