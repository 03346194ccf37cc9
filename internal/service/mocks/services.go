package mocks

import (
	"context"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/service"

	"github.com/stretchr/testify/mock"
)

type AuthService struct{ mock.Mock }

func (m *AuthService) Register(ctx context.Context, reg models.Registration) (int64, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, role models.Role, username, password string) (*models.Session, error) {
	args := m.Called(ctx, role, username, password)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *AuthService) ParseToken(token string) (*models.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*models.Claims)
	return claims, args.Error(1)
}

func (m *AuthService) LinkTelegram(ctx context.Context, username, password string, telegramID int64) (*models.Member, error) {
	args := m.Called(ctx, username, password, telegramID)
	member, _ := args.Get(0).(*models.Member)
	return member, args.Error(1)
}

type MemberService struct{ mock.Mock }

func (m *MemberService) GetProfile(ctx context.Context, memberID int64) (*models.MemberProfile, error) {
	args := m.Called(ctx, memberID)
	profile, _ := args.Get(0).(*models.MemberProfile)
	return profile, args.Error(1)
}

func (m *MemberService) GetByTelegramID(ctx context.Context, telegramID int64) (*models.Member, error) {
	args := m.Called(ctx, telegramID)
	member, _ := args.Get(0).(*models.Member)
	return member, args.Error(1)
}

func (m *MemberService) GetTransactions(ctx context.Context, memberID int64) ([]models.Transaction, error) {
	args := m.Called(ctx, memberID)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

type SubscriptionService struct{ mock.Mock }

func (m *SubscriptionService) Quote(start, end time.Time) (*models.SubscriptionQuote, error) {
	args := m.Called(start, end)
	quote, _ := args.Get(0).(*models.SubscriptionQuote)
	return quote, args.Error(1)
}

func (m *SubscriptionService) Purchase(ctx context.Context, memberID int64, start, end time.Time) (*models.Subscription, error) {
	args := m.Called(ctx, memberID, start, end)
	sub, _ := args.Get(0).(*models.Subscription)
	return sub, args.Error(1)
}

func (m *SubscriptionService) GetCurrent(ctx context.Context, memberID int64) (*models.Subscription, error) {
	args := m.Called(ctx, memberID)
	sub, _ := args.Get(0).(*models.Subscription)
	return sub, args.Error(1)
}

func (m *SubscriptionService) GetHistory(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	args := m.Called(ctx, memberID)
	subs, _ := args.Get(0).([]models.Subscription)
	return subs, args.Error(1)
}

func (m *SubscriptionService) ExpireEnded(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

type AttendanceService struct{ mock.Mock }

func (m *AttendanceService) MarkAttendance(ctx context.Context, memberID int64, today time.Time) (*models.AttendanceResult, error) {
	args := m.Called(ctx, memberID, today)
	result, _ := args.Get(0).(*models.AttendanceResult)
	return result, args.Error(1)
}

func (m *AttendanceService) GetHistory(ctx context.Context, memberID int64) ([]models.Attendance, error) {
	args := m.Called(ctx, memberID)
	history, _ := args.Get(0).([]models.Attendance)
	return history, args.Error(1)
}

type ClassService struct{ mock.Mock }

func (m *ClassService) CreateClass(ctx context.Context, class models.NewClass) (*models.Class, error) {
	args := m.Called(ctx, class)
	created, _ := args.Get(0).(*models.Class)
	return created, args.Error(1)
}

func (m *ClassService) ListActive(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]models.Class)
	return classes, args.Error(1)
}

func (m *ClassService) ListAll(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]models.Class)
	return classes, args.Error(1)
}

func (m *ClassService) GetEnrolledMembers(ctx context.Context, classID int64) ([]models.EnrolledMember, error) {
	args := m.Called(ctx, classID)
	members, _ := args.Get(0).([]models.EnrolledMember)
	return members, args.Error(1)
}

type EnrollmentService struct{ mock.Mock }

func (m *EnrollmentService) Enroll(ctx context.Context, memberID, classID int64) (*models.EnrollmentReceipt, error) {
	args := m.Called(ctx, memberID, classID)
	receipt, _ := args.Get(0).(*models.EnrollmentReceipt)
	return receipt, args.Error(1)
}

func (m *EnrollmentService) SettlePayment(ctx context.Context, req models.SettlementRequest) (*models.SettlementReceipt, error) {
	args := m.Called(ctx, req)
	receipt, _ := args.Get(0).(*models.SettlementReceipt)
	return receipt, args.Error(1)
}

func (m *EnrollmentService) GetEnrolledClasses(ctx context.Context, memberID int64) ([]models.EnrolledClass, error) {
	args := m.Called(ctx, memberID)
	classes, _ := args.Get(0).([]models.EnrolledClass)
	return classes, args.Error(1)
}

type StatsService struct{ mock.Mock }

func (m *StatsService) GetStatistics(ctx context.Context, today time.Time) (*models.Statistics, error) {
	args := m.Called(ctx, today)
	stats, _ := args.Get(0).(*models.Statistics)
	return stats, args.Error(1)
}

func (m *StatsService) ListMembers(ctx context.Context) ([]models.MemberOverview, error) {
	args := m.Called(ctx)
	members, _ := args.Get(0).([]models.MemberOverview)
	return members, args.Error(1)
}

func (m *StatsService) ListTransactions(ctx context.Context) ([]models.TransactionView, error) {
	args := m.Called(ctx)
	transactions, _ := args.Get(0).([]models.TransactionView)
	return transactions, args.Error(1)
}

var (
	_ service.AuthService         = (*AuthService)(nil)
	_ service.MemberService       = (*MemberService)(nil)
	_ service.SubscriptionService = (*SubscriptionService)(nil)
	_ service.AttendanceService   = (*AttendanceService)(nil)
	_ service.ClassService        = (*ClassService)(nil)
	_ service.EnrollmentService   = (*EnrollmentService)(nil)
	_ service.StatsService        = (*StatsService)(nil)
)
