package service

import (
	"context"
	"time"

	"gym-ledger/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, reg models.Registration) (int64, error)
	Login(ctx context.Context, role models.Role, username, password string) (*models.Session, error)
	ParseToken(token string) (*models.Claims, error)
	// LinkTelegram привязывает чат к учётной записи посетителя по логину и паролю
	LinkTelegram(ctx context.Context, username, password string, telegramID int64) (*models.Member, error)
}

type MemberService interface {
	GetProfile(ctx context.Context, memberID int64) (*models.MemberProfile, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.Member, error)
	GetTransactions(ctx context.Context, memberID int64) ([]models.Transaction, error)
}

type SubscriptionService interface {
	Quote(start, end time.Time) (*models.SubscriptionQuote, error)
	Purchase(ctx context.Context, memberID int64, start, end time.Time) (*models.Subscription, error)
	GetCurrent(ctx context.Context, memberID int64) (*models.Subscription, error)
	GetHistory(ctx context.Context, memberID int64) ([]models.Subscription, error)
	// ExpireEnded закрывает истёкшие абонементы и пересчитывает оставшиеся дни
	ExpireEnded(ctx context.Context, today time.Time) (int64, error)
}

type AttendanceService interface {
	MarkAttendance(ctx context.Context, memberID int64, today time.Time) (*models.AttendanceResult, error)
	GetHistory(ctx context.Context, memberID int64) ([]models.Attendance, error)
}

type ClassService interface {
	CreateClass(ctx context.Context, class models.NewClass) (*models.Class, error)
	ListActive(ctx context.Context) ([]models.Class, error)
	ListAll(ctx context.Context) ([]models.Class, error)
	GetEnrolledMembers(ctx context.Context, classID int64) ([]models.EnrolledMember, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, memberID, classID int64) (*models.EnrollmentReceipt, error)
	SettlePayment(ctx context.Context, req models.SettlementRequest) (*models.SettlementReceipt, error)
	GetEnrolledClasses(ctx context.Context, memberID int64) ([]models.EnrolledClass, error)
}

type StatsService interface {
	GetStatistics(ctx context.Context, today time.Time) (*models.Statistics, error)
	ListMembers(ctx context.Context) ([]models.MemberOverview, error)
	ListTransactions(ctx context.Context) ([]models.TransactionView, error)
}
