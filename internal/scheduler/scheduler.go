package scheduler

import (
	"context"
	"fmt"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const jobTimeout = 4 * time.Minute

// Scheduler - ночная смена статусов абонементов
type Scheduler struct {
	cron                *cron.Cron
	subscriptionService service.SubscriptionService
	location            *time.Location
	schedule            string
	logger              *zap.Logger
	now                 func() time.Time
}

func New(cfg *config.Config, subscriptionService service.SubscriptionService, logger *zap.Logger) (*Scheduler, error) {
	loc := cfg.Ledger.Location
	if loc == nil {
		loc = time.UTC
	}

	cronLog := cronLogger(logger)
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.SkipIfStillRunning(cronLog)),
		),
		subscriptionService: subscriptionService,
		location:            loc,
		schedule:            cfg.Ledger.ExpirySchedule,
		logger:              logger.Named("scheduler"),
		now:                 time.Now,
	}

	if _, err := s.cron.AddFunc(s.schedule, s.expireSubscriptions); err != nil {
		return nil, fmt.Errorf("invalid LEDGER_EXPIRY_CRON %q: %w", s.schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("⏰ Планировщик запущен", zap.String("schedule", s.schedule), zap.String("tz", s.location.String()))
}

// Stop ждёт завершения выполняющейся задачи или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) expireSubscriptions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := models.DateOnly(s.now().In(s.location))
	if _, err := s.subscriptionService.ExpireEnded(ctx, today); err != nil {
		s.logger.Error("❌ Ошибка задачи истечения абонементов", zap.Error(err))
	}
}

// cronLogger направляет сообщения cron (пропуски запусков, паники) в zap
func cronLogger(logger *zap.Logger) cron.Logger {
	return cron.VerbosePrintfLogger(zap.NewStdLog(logger.Named("cron")))
}
