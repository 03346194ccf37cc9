package enrollment_service

import (
	"context"
	"errors"

	"gym-ledger/internal/metrics"
	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"

	"go.uber.org/zap"
)

type enrollmentService struct {
	store   repository.Store
	adminID int64
	logger  *zap.Logger
}

func NewEnrollmentService(store repository.Store, cfg *config.Config, logger *zap.Logger) service.EnrollmentService {
	return &enrollmentService{
		store:   store,
		adminID: cfg.Ledger.AdminID,
		logger:  logger.Named("enrollment"),
	}
}

// Enroll записывает на занятие и создаёт ожидающий платёж по цене из CLASSES.
// Баланс не меняется.
func (s *enrollmentService) Enroll(ctx context.Context, memberID, classID int64) (*models.EnrollmentReceipt, error) {
	var receipt *models.EnrollmentReceipt
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := service.LockMember(ctx, repos, memberID); err != nil {
			return err
		}

		class, err := repos.Classes.GetByID(ctx, classID)
		if errors.Is(err, repository.ErrNotFound) {
			return service.ErrClassNotFound
		}
		if err != nil {
			return err
		}
		if !class.IsActive {
			return service.ErrClassInactive
		}

		pending, err := repos.Enrollments.GetPending(ctx, memberID, classID)
		if err != nil {
			return err
		}
		if pending != nil {
			return service.ErrAlreadyEnrolled
		}

		enrollment := &models.Enrollment{
			MemberID:      memberID,
			ClassID:       classID,
			PaymentStatus: models.PaymentPending,
		}
		if err := repos.Enrollments.Create(ctx, enrollment); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return service.ErrAlreadyEnrolled
			}
			return err
		}

		payment := &models.Payment{
			MemberID: memberID,
			ClassID:  classID,
			Amount:   class.Price,
			Status:   models.PaymentPending,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}

		receipt = &models.EnrollmentReceipt{Enrollment: enrollment, Payment: payment}
		return nil
	})

	s.observe("class_enroll", memberID, classID, err)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// SettlePayment проводит ожидающий платёж за занятие: списание с посетителя,
// зачисление на счёт выручки и запись в TRANSACTION.
func (s *enrollmentService) SettlePayment(ctx context.Context, req models.SettlementRequest) (*models.SettlementReceipt, error) {
	var receipt *models.SettlementReceipt
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		member, err := service.LockMember(ctx, repos, req.MemberID)
		if err != nil {
			return err
		}

		payment, err := repos.Payments.GetPendingForUpdate(ctx, req.MemberID, req.ClassID)
		if err != nil {
			return err
		}
		if payment == nil {
			return service.ErrNothingToSettle
		}
		if req.Amount.Valid && !req.Amount.Decimal.Equal(payment.Amount) {
			return service.ErrAmountMismatch
		}
		if member.WalletBalance.LessThan(payment.Amount) {
			return service.ErrInsufficientFunds
		}

		if _, err := repos.Payments.CompletePending(ctx, req.MemberID, req.ClassID); err != nil {
			return err
		}
		if _, err := repos.Enrollments.CompletePending(ctx, req.MemberID, req.ClassID); err != nil {
			return err
		}

		classID := req.ClassID
		transaction := &models.Transaction{
			MemberID: req.MemberID,
			ClassID:  &classID,
			Amount:   payment.Amount,
			Type:     models.TransactionClassPayment,
			Status:   models.TransactionCompleted,
		}
		if err := repos.Transactions.Create(ctx, transaction); err != nil {
			return err
		}

		if err := service.Transfer(ctx, repos, req.MemberID, s.adminID, payment.Amount); err != nil {
			return err
		}

		payment.Status = models.PaymentCompleted
		receipt = &models.SettlementReceipt{
			Payment:       payment,
			Transaction:   transaction,
			MemberBalance: member.WalletBalance.Sub(payment.Amount),
		}
		return nil
	})

	s.observe("class_settle", req.MemberID, req.ClassID, err)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *enrollmentService) observe(operation string, memberID, classID int64, err error) {
	metrics.ObserveLedger(operation, service.Outcome(err))

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Int64("member_id", memberID),
		zap.Int64("class_id", classID),
	}
	switch {
	case err == nil:
		s.logger.Info("✅ Операция с занятием выполнена", fields...)
	case service.IsDomain(err):
		s.logger.Info("Операция с занятием отклонена", append(fields, zap.Error(err))...)
	default:
		s.logger.Error("❌ Ошибка операции с занятием", append(fields, zap.Error(err))...)
	}
}

func (s *enrollmentService) GetEnrolledClasses(ctx context.Context, memberID int64) ([]models.EnrolledClass, error) {
	return s.store.Repositories().Enrollments.GetByMemberID(ctx, memberID)
}
