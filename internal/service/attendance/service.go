package attendance_service

import (
	"context"
	"time"

	"gym-ledger/internal/metrics"
	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"

	"go.uber.org/zap"
)

type attendanceService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewAttendanceService(store repository.Store, logger *zap.Logger) service.AttendanceService {
	return &attendanceService{
		store:  store,
		logger: logger.Named("attendance"),
	}
}

// MarkAttendance отмечает посещение за today. Повторная отметка за тот же день
// возвращает AlreadyMarked без ошибки.
func (s *attendanceService) MarkAttendance(ctx context.Context, memberID int64, today time.Time) (*models.AttendanceResult, error) {
	today = models.DateOnly(today)

	var result *models.AttendanceResult
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := service.LockMember(ctx, repos, memberID); err != nil {
			return err
		}

		subscription, err := repos.Subscriptions.FindActiveCovering(ctx, memberID, today)
		if err != nil {
			return err
		}
		if subscription == nil {
			return service.ErrNoActiveSubscription
		}

		existing, err := repos.Attendance.GetByMemberAndDate(ctx, memberID, today)
		if err != nil {
			return err
		}
		if existing != nil {
			result = &models.AttendanceResult{Attendance: existing, AlreadyMarked: true}
			return nil
		}

		attendance := &models.Attendance{
			MemberID:       memberID,
			SubscriptionID: subscription.ID,
			Date:           today,
			IsPresent:      true,
		}
		inserted, err := repos.Attendance.Create(ctx, attendance)
		if err != nil {
			return err
		}
		if !inserted {
			result = &models.AttendanceResult{AlreadyMarked: true}
			return nil
		}
		result = &models.AttendanceResult{Attendance: attendance}
		return nil
	})

	metrics.ObserveLedger("attendance_mark", service.Outcome(err))
	if err != nil {
		if service.IsDomain(err) {
			s.logger.Info("Отметка посещения отклонена", zap.Int64("member_id", memberID), zap.Error(err))
		} else {
			s.logger.Error("❌ Ошибка отметки посещения", zap.Int64("member_id", memberID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("✅ Посещение",
		zap.Int64("member_id", memberID),
		zap.Time("date", today),
		zap.Bool("already_marked", result.AlreadyMarked),
	)
	return result, nil
}

func (s *attendanceService) GetHistory(ctx context.Context, memberID int64) ([]models.Attendance, error) {
	return s.store.Repositories().Attendance.GetByMemberID(ctx, memberID)
}
