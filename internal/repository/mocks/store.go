package mocks

import (
	"context"

	"gym-ledger/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Store выполняет fn на моках без настоящей транзакции и запоминает исход
type Store struct {
	Members       *MemberRepository
	Admins        *AdminRepository
	Classes       *ClassRepository
	Subscriptions *SubscriptionRepository
	Enrollments   *EnrollmentRepository
	Payments      *PaymentRepository
	Attendance    *AttendanceRepository
	Transactions  *TransactionRepository
	Stats         *StatsRepository

	Commits   int
	Rollbacks int
}

func NewStore() *Store {
	return &Store{
		Members:       &MemberRepository{},
		Admins:        &AdminRepository{},
		Classes:       &ClassRepository{},
		Subscriptions: &SubscriptionRepository{},
		Enrollments:   &EnrollmentRepository{},
		Payments:      &PaymentRepository{},
		Attendance:    &AttendanceRepository{},
		Transactions:  &TransactionRepository{},
		Stats:         &StatsRepository{},
	}
}

func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Members:       s.Members,
		Admins:        s.Admins,
		Classes:       s.Classes,
		Subscriptions: s.Subscriptions,
		Enrollments:   s.Enrollments,
		Payments:      s.Payments,
		Attendance:    s.Attendance,
		Transactions:  s.Transactions,
		Stats:         s.Stats,
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	if err := fn(ctx, s.Repositories()); err != nil {
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) AssertExpectations(t mock.TestingT) {
	s.Members.AssertExpectations(t)
	s.Admins.AssertExpectations(t)
	s.Classes.AssertExpectations(t)
	s.Subscriptions.AssertExpectations(t)
	s.Enrollments.AssertExpectations(t)
	s.Payments.AssertExpectations(t)
	s.Attendance.AssertExpectations(t)
	s.Transactions.AssertExpectations(t)
	s.Stats.AssertExpectations(t)
}

var _ repository.Store = (*Store)(nil)
