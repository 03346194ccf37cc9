package subscription_service

import (
	"context"
	"time"

	"gym-ledger/internal/metrics"
	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const secondsPerDay = 24 * 60 * 60

type subscriptionService struct {
	store  repository.Store
	ledger config.LedgerConfig
	logger *zap.Logger
}

func NewSubscriptionService(store repository.Store, cfg *config.Config, logger *zap.Logger) service.SubscriptionService {
	return &subscriptionService{
		store:  store,
		ledger: cfg.Ledger,
		logger: logger.Named("subscription"),
	}
}

// Quote: стоимость = (число дней включительно) * дневной тариф
func (s *subscriptionService) Quote(start, end time.Time) (*models.SubscriptionQuote, error) {
	start, end = models.DateOnly(start), models.DateOnly(end)
	if end.Before(start) {
		return nil, service.ErrInvalidDateRange
	}

	// обе даты в UTC-полночь, поэтому разница кратна суткам
	days := int((end.Unix()-start.Unix())/secondsPerDay) + 1
	return &models.SubscriptionQuote{
		StartDate: start,
		EndDate:   end,
		Days:      days,
		Cost:      s.ledger.DayRate.Mul(decimal.NewFromInt(int64(days))),
	}, nil
}

func (s *subscriptionService) Purchase(ctx context.Context, memberID int64, start, end time.Time) (*models.Subscription, error) {
	quote, err := s.Quote(start, end)
	if err != nil {
		s.observe(memberID, err)
		return nil, err
	}

	var subscription *models.Subscription
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		member, err := service.LockMember(ctx, repos, memberID)
		if err != nil {
			return err
		}

		// пересечение проверяется раньше баланса
		overlap, err := repos.Subscriptions.FindOverlappingActive(ctx, memberID, quote.StartDate, quote.EndDate)
		if err != nil {
			return err
		}
		if overlap != nil {
			return service.ErrOverlappingSubscription
		}

		if member.WalletBalance.LessThan(quote.Cost) {
			return service.ErrInsufficientFunds
		}

		subscription = &models.Subscription{
			MemberID:      memberID,
			StartDate:     quote.StartDate,
			EndDate:       quote.EndDate,
			RemainingDays: quote.Days,
			IsActive:      true,
			Status:        models.SubscriptionActive,
		}
		if err := repos.Subscriptions.Create(ctx, subscription); err != nil {
			return err
		}

		transaction := &models.Transaction{
			MemberID:       memberID,
			SubscriptionID: &subscription.ID,
			Amount:         quote.Cost,
			Type:           models.TransactionSubscriptionPurchase,
			Status:         models.TransactionCompleted,
		}
		if err := repos.Transactions.Create(ctx, transaction); err != nil {
			return err
		}

		return service.Transfer(ctx, repos, memberID, s.ledger.AdminID, quote.Cost)
	})

	s.observe(memberID, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ Абонемент оформлен",
		zap.Int64("member_id", memberID),
		zap.Int64("subscription_id", subscription.ID),
		zap.Time("start", quote.StartDate),
		zap.Time("end", quote.EndDate),
		zap.String("cost", quote.Cost.StringFixed(2)),
	)
	return subscription, nil
}

func (s *subscriptionService) observe(memberID int64, err error) {
	metrics.ObserveLedger("subscription_purchase", service.Outcome(err))
	switch {
	case err == nil:
	case service.IsDomain(err):
		s.logger.Info("Покупка абонемента отклонена", zap.Int64("member_id", memberID), zap.Error(err))
	default:
		s.logger.Error("❌ Ошибка покупки абонемента", zap.Int64("member_id", memberID), zap.Error(err))
	}
}

func (s *subscriptionService) GetCurrent(ctx context.Context, memberID int64) (*models.Subscription, error) {
	return s.store.Repositories().Subscriptions.GetCurrentByMemberID(ctx, memberID)
}

func (s *subscriptionService) GetHistory(ctx context.Context, memberID int64) ([]models.Subscription, error) {
	return s.store.Repositories().Subscriptions.GetHistoryByMemberID(ctx, memberID)
}

func (s *subscriptionService) ExpireEnded(ctx context.Context, today time.Time) (int64, error) {
	today = models.DateOnly(today)

	var expired, refreshed int64
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		if expired, err = repos.Subscriptions.ExpireEnded(ctx, today); err != nil {
			return err
		}
		refreshed, err = repos.Subscriptions.RefreshRemainingDays(ctx, today)
		return err
	})
	if err != nil {
		s.logger.Error("❌ Ошибка обновления абонементов", zap.Error(err))
		return 0, err
	}

	metrics.ExpiredSubscriptions.Add(float64(expired))
	s.logger.Info("Абонементы обновлены",
		zap.Time("today", today),
		zap.Int64("expired", expired),
		zap.Int64("refreshed", refreshed),
	)
	return expired, nil
}
