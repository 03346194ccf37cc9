package mocks

import (
	"context"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MemberRepository struct{ mock.Mock }

func (m *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	return member(m.Called(ctx, id))
}

func (m *MemberRepository) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	return member(m.Called(ctx, username))
}

func (m *MemberRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.Member, error) {
	return member(m.Called(ctx, telegramID))
}

func (m *MemberRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MemberRepository) LockByID(ctx context.Context, id int64) (*models.Member, error) {
	return member(m.Called(ctx, id))
}

func (m *MemberRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *MemberRepository) SetTelegramID(ctx context.Context, id int64, telegramID int64) error {
	return m.Called(ctx, id, telegramID).Error(0)
}

func member(args mock.Arguments) (*models.Member, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

type AdminRepository struct{ mock.Mock }

func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return admin(m.Called(ctx, username))
}

func (m *AdminRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *AdminRepository) LockByID(ctx context.Context, id int64) (*models.Admin, error) {
	return admin(m.Called(ctx, id))
}

func (m *AdminRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) error {
	return m.Called(ctx, id, delta).Error(0)
}

func admin(args mock.Arguments) (*models.Admin, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type ClassRepository struct{ mock.Mock }

func (m *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	return m.Called(ctx, class).Error(0)
}

func (m *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Class), args.Error(1)
}

func (m *ClassRepository) GetActive(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]models.Class)
	return classes, args.Error(1)
}

func (m *ClassRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]models.Class)
	return classes, args.Error(1)
}

type SubscriptionRepository struct{ mock.Mock }

func (m *SubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	return m.Called(ctx, subscription).Error(0)
}

func (m *SubscriptionRepository) FindOverlappingActive(ctx context.Context, memberID int64, start, end time.Time) (*models.Subscription, error) {
	return subscription(m.Called(ctx, memberID, start, end))
}

func (m *SubscriptionRepository) FindActiveCovering(ctx context.Context, memberID int64, day time.Time) (*models.Subscription, error) {
	return subscription(m.Called(ctx, memberID, day))
}

func (m *SubscriptionRepository) GetCurrentByMemberID(ctx context.Context, memberID int64) (*models.Subscription, error) {
	return subscription(m.Called(ctx, memberID))
}

func (m *SubscriptionRepository) GetHistoryByMemberID(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	args := m.Called(ctx, memberID)
	subs, _ := args.Get(0).([]models.Subscription)
	return subs, args.Error(1)
}

func (m *SubscriptionRepository) ExpireEnded(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SubscriptionRepository) RefreshRemainingDays(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func subscription(args mock.Arguments) (*models.Subscription, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

type EnrollmentRepository struct{ mock.Mock }

func (m *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *EnrollmentRepository) GetPending(ctx context.Context, memberID, classID int64) (*models.Enrollment, error) {
	args := m.Called(ctx, memberID, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) CompletePending(ctx context.Context, memberID, classID int64) (int64, error) {
	args := m.Called(ctx, memberID, classID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EnrollmentRepository) GetByMemberID(ctx context.Context, memberID int64) ([]models.EnrolledClass, error) {
	args := m.Called(ctx, memberID)
	classes, _ := args.Get(0).([]models.EnrolledClass)
	return classes, args.Error(1)
}

func (m *EnrollmentRepository) GetByClassID(ctx context.Context, classID int64) ([]models.EnrolledMember, error) {
	args := m.Called(ctx, classID)
	members, _ := args.Get(0).([]models.EnrolledMember)
	return members, args.Error(1)
}

type PaymentRepository struct{ mock.Mock }

func (m *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *PaymentRepository) GetPendingForUpdate(ctx context.Context, memberID, classID int64) (*models.Payment, error) {
	args := m.Called(ctx, memberID, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *PaymentRepository) CompletePending(ctx context.Context, memberID, classID int64) (int64, error) {
	args := m.Called(ctx, memberID, classID)
	return args.Get(0).(int64), args.Error(1)
}

type AttendanceRepository struct{ mock.Mock }

func (m *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) (bool, error) {
	args := m.Called(ctx, attendance)
	return args.Bool(0), args.Error(1)
}

func (m *AttendanceRepository) GetByMemberAndDate(ctx context.Context, memberID int64, day time.Time) (*models.Attendance, error) {
	args := m.Called(ctx, memberID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *AttendanceRepository) GetByMemberID(ctx context.Context, memberID int64) ([]models.Attendance, error) {
	args := m.Called(ctx, memberID)
	attendances, _ := args.Get(0).([]models.Attendance)
	return attendances, args.Error(1)
}

type TransactionRepository struct{ mock.Mock }

func (m *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *TransactionRepository) GetByMemberID(ctx context.Context, memberID int64) ([]models.Transaction, error) {
	args := m.Called(ctx, memberID)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

func (m *TransactionRepository) GetAll(ctx context.Context) ([]models.TransactionView, error) {
	args := m.Called(ctx)
	transactions, _ := args.Get(0).([]models.TransactionView)
	return transactions, args.Error(1)
}

type StatsRepository struct{ mock.Mock }

func (m *StatsRepository) GetStatistics(ctx context.Context, today time.Time) (*models.Statistics, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}

func (m *StatsRepository) GetMemberOverview(ctx context.Context) ([]models.MemberOverview, error) {
	args := m.Called(ctx)
	members, _ := args.Get(0).([]models.MemberOverview)
	return members, args.Error(1)
}

var _ repository.MemberRepository = (*MemberRepository)(nil)
var _ repository.AdminRepository = (*AdminRepository)(nil)
var _ repository.ClassRepository = (*ClassRepository)(nil)
var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
var _ repository.EnrollmentRepository = (*EnrollmentRepository)(nil)
var _ repository.PaymentRepository = (*PaymentRepository)(nil)
var _ repository.AttendanceRepository = (*AttendanceRepository)(nil)
var _ repository.TransactionRepository = (*TransactionRepository)(nil)
var _ repository.StatsRepository = (*StatsRepository)(nil)
