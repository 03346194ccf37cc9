package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"gym-ledger/internal/bot"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/repository/store"
	"gym-ledger/internal/scheduler"
	"gym-ledger/internal/service"
	attendance_service "gym-ledger/internal/service/attendance"
	auth_service "gym-ledger/internal/service/auth"
	class_service "gym-ledger/internal/service/class"
	enrollment_service "gym-ledger/internal/service/enrollment"
	member_service "gym-ledger/internal/service/member"
	stats_service "gym-ledger/internal/service/stats"
	subscription_service "gym-ledger/internal/service/subscription"
	"gym-ledger/internal/web"
	database "gym-ledger/pkg"
	"gym-ledger/pkg/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var configModule = fx.Module("config",
	fx.Provide(
		config.Load,
		logger.New,
	),
	fx.Invoke(func(cfg *config.Config, log *zap.Logger) {
		log.Info("🚀 Запуск", zap.String("env", cfg.Environment))
	}),
)

var databaseModule = fx.Module("database",
	fx.Provide(
		database.NewPostgres,
		store.New,
	),
	fx.Invoke(registerDatabase),
)

func registerDatabase(lc fx.Lifecycle, cfg *config.Config, db *sqlx.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Database.Migrate {
				return nil
			}
			if err := database.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("🗄️  Схема применена")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})
}

var serviceModule = fx.Module("service",
	fx.Provide(
		auth_service.NewAuthService,
		member_service.NewMemberService,
		subscription_service.NewSubscriptionService,
		attendance_service.NewAttendanceService,
		class_service.NewClassService,
		enrollment_service.NewEnrollmentService,
		stats_service.NewStatsService,
	),
)

var httpModule = fx.Module("http",
	fx.Provide(web.NewHandler),
	fx.Invoke(registerHTTPServer),
)

func registerHTTPServer(lc fx.Lifecycle, cfg *config.Config, h *web.Handler, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("🌐 HTTP сервер запущен", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("❌ HTTP сервер остановлен с ошибкой", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var botModule = fx.Module("bot",
	fx.Invoke(registerBot),
)

func registerBot(
	lc fx.Lifecycle,
	cfg *config.Config,
	authService service.AuthService,
	memberService service.MemberService,
	subscriptionService service.SubscriptionService,
	attendanceService service.AttendanceService,
	classService service.ClassService,
	enrollmentService service.EnrollmentService,
	log *zap.Logger,
) error {
	if !cfg.Bot.Enabled() {
		log.Info("BOT_TOKEN не задан, Telegram-бот не запускается")
		return nil
	}

	telegramBot, err := bot.NewBot(cfg, authService, memberService, subscriptionService,
		attendanceService, classService, enrollmentService, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := telegramBot.Start(ctx); err != nil {
					log.Error("❌ Ошибка запуска бота", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return nil
}

var schedulerModule = fx.Module("scheduler",
	fx.Provide(scheduler.New),
	fx.Invoke(func(lc fx.Lifecycle, s *scheduler.Scheduler) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				s.Start()
				return nil
			},
			OnStop: s.Stop,
		})
	}),
)
