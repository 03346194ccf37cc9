package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gym-ledger/internal/models/config"
	"gym-ledger/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// Sender - часть BotAPI, которой пользуются обработчики
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api    *tgbotapi.BotAPI
	sender Sender

	AuthService         service.AuthService
	MemberService       service.MemberService
	SubscriptionService service.SubscriptionService
	AttendanceService   service.AttendanceService
	ClassService        service.ClassService
	EnrollmentService   service.EnrollmentService

	logger   *zap.Logger
	location *time.Location
	now      func() time.Time

	userSessions map[int64]*UserSession // chatID -> session
	mu           sync.RWMutex
}

func NewBot(
	cfg *config.Config,
	authService service.AuthService,
	memberService service.MemberService,
	subscriptionService service.SubscriptionService,
	attendanceService service.AttendanceService,
	classService service.ClassService,
	enrollmentService service.EnrollmentService,
	logger *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	api.Debug = cfg.Bot.Debug

	b := newBot(api, cfg, authService, memberService, subscriptionService, attendanceService, classService, enrollmentService, logger)
	b.api = api

	b.logger.Info("🤖 Бот инициализирован", zap.String("username", api.Self.UserName), zap.Bool("debug", cfg.Bot.Debug))
	return b, nil
}

func newBot(
	sender Sender,
	cfg *config.Config,
	authService service.AuthService,
	memberService service.MemberService,
	subscriptionService service.SubscriptionService,
	attendanceService service.AttendanceService,
	classService service.ClassService,
	enrollmentService service.EnrollmentService,
	logger *zap.Logger,
) *Bot {
	return &Bot{
		sender:              sender,
		AuthService:         authService,
		MemberService:       memberService,
		SubscriptionService: subscriptionService,
		AttendanceService:   attendanceService,
		ClassService:        classService,
		EnrollmentService:   enrollmentService,
		logger:              logger.Named("bot"),
		location:            cfg.Ledger.Location,
		now:                 time.Now,
		userSessions:        make(map[int64]*UserSession),
	}
}

// Start читает обновления, пока не отменён ctx
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}
	b.logger.Info("Авторизован", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) getOrCreateSession(chatID int64) *UserSession {
	b.mu.Lock()
	defer b.mu.Unlock()

	if session, exists := b.userSessions[chatID]; exists {
		return session
	}

	session := &UserSession{State: StateDefault}
	b.userSessions[chatID] = session
	return session
}

func (b *Bot) today() time.Time {
	loc := b.location
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := b.now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
