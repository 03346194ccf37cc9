package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/models/config"
	"gym-ledger/internal/service"
	"gym-ledger/internal/service/mocks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	chatID     = int64(100)
	telegramID = 777
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) last(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1].Text
}

type fixture struct {
	bot          *Bot
	sender       *fakeSender
	auth         *mocks.AuthService
	member       *mocks.MemberService
	subscription *mocks.SubscriptionService
	attendance   *mocks.AttendanceService
	class        *mocks.ClassService
	enrollment   *mocks.EnrollmentService
}

func newFixture() *fixture {
	f := &fixture{
		sender:       &fakeSender{},
		auth:         new(mocks.AuthService),
		member:       new(mocks.MemberService),
		subscription: new(mocks.SubscriptionService),
		attendance:   new(mocks.AttendanceService),
		class:        new(mocks.ClassService),
		enrollment:   new(mocks.EnrollmentService),
	}
	cfg := &config.Config{Ledger: config.LedgerConfig{Location: time.UTC}}
	f.bot = newBot(f.sender, cfg, f.auth, f.member, f.subscription, f.attendance, f.class, f.enrollment, zap.NewNop())
	f.bot.now = func() time.Time { return time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) linked() {
	f.member.On("GetByTelegramID", mock.Anything, int64(telegramID)).
		Return(&models.Member{ID: 1, Username: "anna", WalletBalance: decimal.NewFromInt(100)}, nil)
}

func (f *fixture) say(text string) {
	f.bot.handleMessage(context.Background(), &tgbotapi.Message{
		From: &tgbotapi.User{ID: telegramID, UserName: "anna"},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	})
}

func (f *fixture) command(text string, length int) {
	f.bot.handleMessage(context.Background(), &tgbotapi.Message{
		From:     &tgbotapi.User{ID: telegramID, UserName: "anna"},
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: &[]tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	})
}

func TestUnlinkedUserIsAskedToLink(t *testing.T) {
	f := newFixture()
	f.member.On("GetByTelegramID", mock.Anything, int64(telegramID)).Return(nil, service.ErrMemberNotFound)

	f.say(btnProfile)

	assert.Contains(t, f.sender.last(t), "/link")
}

func TestLinkCommand(t *testing.T) {
	f := newFixture()
	f.auth.On("LinkTelegram", mock.Anything, "anna", "secret1", int64(telegramID)).
		Return(&models.Member{ID: 1, Username: "anna"}, nil)

	f.command("/link anna secret1", 5)

	assert.Contains(t, f.sender.last(t), "привязан")
	f.auth.AssertExpectations(t)
}

func TestBuySubscriptionFlow(t *testing.T) {
	f := newFixture()
	f.linked()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	f.subscription.On("Quote", start, end).
		Return(&models.SubscriptionQuote{StartDate: start, EndDate: end, Days: 10, Cost: decimal.NewFromInt(10)}, nil)
	f.subscription.On("Purchase", mock.Anything, int64(1), start, end).
		Return(&models.Subscription{ID: 42, StartDate: start, EndDate: end, RemainingDays: 10}, nil)

	f.say(btnBuySubscription)
	assert.Contains(t, f.sender.last(t), "ДД.ММ.ГГГГ")

	f.say("01.01.2024 10.01.2024")
	assert.Contains(t, f.sender.last(t), "10.00")

	f.say(btnConfirm)
	assert.Contains(t, f.sender.last(t), "Абонемент оформлен")
	assert.Equal(t, StateDefault, f.bot.getOrCreateSession(chatID).State)
	f.subscription.AssertExpectations(t)
}

func TestBuySubscriptionOverlap(t *testing.T) {
	f := newFixture()
	f.linked()

	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	f.subscription.On("Quote", start, end).
		Return(&models.SubscriptionQuote{StartDate: start, EndDate: end, Days: 3, Cost: decimal.NewFromInt(3)}, nil)
	f.subscription.On("Purchase", mock.Anything, int64(1), start, end).Return(nil, service.ErrOverlappingSubscription)

	f.say(btnBuySubscription)
	f.say("05.01.2024 - 07.01.2024")
	f.say(btnConfirm)

	assert.Contains(t, f.sender.last(t), "уже есть активный абонемент")
}

func TestMarkAttendanceTwice(t *testing.T) {
	f := newFixture()
	f.linked()
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	f.attendance.On("MarkAttendance", mock.Anything, int64(1), today).
		Return(&models.AttendanceResult{Attendance: &models.Attendance{ID: 1}}, nil).Once()
	f.attendance.On("MarkAttendance", mock.Anything, int64(1), today).
		Return(&models.AttendanceResult{AlreadyMarked: true}, nil).Once()

	f.say(btnMarkAttendance)
	assert.Contains(t, f.sender.last(t), "Посещение отмечено")

	f.say(btnMarkAttendance)
	assert.Contains(t, f.sender.last(t), "уже отмечено")
}

func TestEnrollAndPayFlow(t *testing.T) {
	f := newFixture()
	f.linked()

	yoga := models.Class{ID: 3, Name: "Yoga", Price: decimal.NewFromInt(20), IsActive: true}
	f.class.On("ListActive", mock.Anything).Return([]models.Class{yoga}, nil)
	f.enrollment.On("Enroll", mock.Anything, int64(1), int64(3)).
		Return(&models.EnrollmentReceipt{Payment: &models.Payment{Amount: decimal.NewFromInt(20)}}, nil)
	f.enrollment.On("GetEnrolledClasses", mock.Anything, int64(1)).
		Return([]models.EnrolledClass{{ClassID: 3, ClassName: "Yoga", Price: decimal.NewFromInt(20), PaymentStatus: models.PaymentPending}}, nil)
	f.enrollment.On("SettlePayment", mock.Anything, models.SettlementRequest{MemberID: 1, ClassID: 3}).
		Return(&models.SettlementReceipt{MemberBalance: decimal.NewFromInt(80)}, nil)

	f.say(btnEnroll)
	f.say("1")
	f.say(btnConfirm)
	assert.Contains(t, f.sender.last(t), "Вы записаны")

	f.say(btnPay)
	f.say("1")
	f.say(btnConfirm)
	assert.Contains(t, f.sender.last(t), "80.00")

	f.enrollment.AssertExpectations(t)
}

func TestCancelResetsSession(t *testing.T) {
	f := newFixture()
	f.linked()

	f.say(btnBuySubscription)
	f.say(btnCancel)

	assert.Equal(t, StateDefault, f.bot.getOrCreateSession(chatID).State)
	assert.Contains(t, f.sender.last(t), "отменено")
}
