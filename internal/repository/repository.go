package repository

import (
	"context"
	"errors"
	"time"

	"gym-ledger/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("record not found")
	// ErrConflict - нарушение уникального индекса
	ErrConflict = errors.New("unique constraint violated")
)

// Querier - общее подмножество *sqlx.DB и *sqlx.Tx.
// Репозитории не знают, работают они внутри транзакции или нет.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByUsername(ctx context.Context, username string) (*models.Member, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.Member, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)
	// LockByID берёт строку FOR UPDATE, сериализуя операции одного посетителя
	LockByID(ctx context.Context, id int64) (*models.Member, error)
	AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) error
	SetTelegramID(ctx context.Context, id int64, telegramID int64) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)
	LockByID(ctx context.Context, id int64) (*models.Admin, error)
	AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) error
}

type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	GetActive(ctx context.Context) ([]models.Class, error)
	GetAll(ctx context.Context) ([]models.Class, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	// FindOverlappingActive возвращает nil, nil если пересечений нет
	FindOverlappingActive(ctx context.Context, memberID int64, start, end time.Time) (*models.Subscription, error)
	// FindActiveCovering возвращает действующий на дату абонемент или nil, nil
	FindActiveCovering(ctx context.Context, memberID int64, day time.Time) (*models.Subscription, error)
	GetCurrentByMemberID(ctx context.Context, memberID int64) (*models.Subscription, error)
	GetHistoryByMemberID(ctx context.Context, memberID int64) ([]models.Subscription, error)
	ExpireEnded(ctx context.Context, today time.Time) (int64, error)
	RefreshRemainingDays(ctx context.Context, today time.Time) (int64, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetPending(ctx context.Context, memberID, classID int64) (*models.Enrollment, error)
	CompletePending(ctx context.Context, memberID, classID int64) (int64, error)
	GetByMemberID(ctx context.Context, memberID int64) ([]models.EnrolledClass, error)
	GetByClassID(ctx context.Context, classID int64) ([]models.EnrolledMember, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	// GetPendingForUpdate блокирует ожидающий платёж посетителя за занятие
	GetPendingForUpdate(ctx context.Context, memberID, classID int64) (*models.Payment, error)
	CompletePending(ctx context.Context, memberID, classID int64) (int64, error)
}

type AttendanceRepository interface {
	// Create возвращает false, если за этот день отметка уже есть
	Create(ctx context.Context, attendance *models.Attendance) (bool, error)
	GetByMemberAndDate(ctx context.Context, memberID int64, day time.Time) (*models.Attendance, error)
	GetByMemberID(ctx context.Context, memberID int64) ([]models.Attendance, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByMemberID(ctx context.Context, memberID int64) ([]models.Transaction, error)
	GetAll(ctx context.Context) ([]models.TransactionView, error)
}

type StatsRepository interface {
	GetStatistics(ctx context.Context, today time.Time) (*models.Statistics, error)
	GetMemberOverview(ctx context.Context) ([]models.MemberOverview, error)
}

// Repositories - набор репозиториев, привязанных к одному Querier
type Repositories struct {
	Members       MemberRepository
	Admins        AdminRepository
	Classes       ClassRepository
	Subscriptions SubscriptionRepository
	Enrollments   EnrollmentRepository
	Payments      PaymentRepository
	Attendance    AttendanceRepository
	Transactions  TransactionRepository
	Stats         StatsRepository
}

// Store - единица работы: все записи внутри WithinTx либо фиксируются вместе, либо откатываются
type Store interface {
	Repositories() *Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}
