package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gym-ledger/internal/models"
	"gym-ledger/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

const dateFormat = "02.01.2006"

// Обработка сообщения здесь
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	chatID := message.Chat.ID
	telegramID := int64(message.From.ID)

	b.logger.Debug("message", zap.String("from", message.From.UserName), zap.String("text", message.Text))

	session := b.getOrCreateSession(chatID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if message.IsCommand() {
		switch message.Command() {
		case "link":
			session.reset()
			b.handleLinkCommand(ctx, chatID, telegramID, message.CommandArguments())
			return
		case "start", "help":
			session.reset()
			b.sendWelcomeMessage(ctx, chatID, telegramID)
			return
		}
	}

	if message.Text == btnCancel {
		session.reset()
		b.sendWithKeyboard(chatID, "Действие отменено", createMainKeyboard())
		return
	}

	member, err := b.MemberService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			b.sendMessage(chatID, "🔗 Сначала привяжите аккаунт: /link <логин> <пароль>")
			return
		}
		b.logger.Error("Ошибка получения посетителя", zap.Int64("telegram_id", telegramID), zap.Error(err))
		b.sendError(chatID, "❌ Ошибка при загрузке данных")
		return
	}
	session.MemberID = member.ID

	// Проверяем состояние пользователя ПРЕЖДЕ обработки кнопок
	switch session.State {
	case StateEnteringSubscriptionDates:
		b.handleSubscriptionDates(chatID, session, message.Text)
		return
	case StateConfirmingSubscription:
		b.handleSubscriptionConfirmation(ctx, chatID, session, message.Text)
		return
	case StateSelectingClass:
		b.handleClassSelection(chatID, session, message.Text)
		return
	case StateConfirmingEnrollment:
		b.handleEnrollmentConfirmation(ctx, chatID, session, message.Text)
		return
	case StateSelectingPayment:
		b.handlePaymentSelection(chatID, session, message.Text)
		return
	case StateConfirmingPayment:
		b.handlePaymentConfirmation(ctx, chatID, session, message.Text)
		return
	}

	switch message.Text {
	case btnProfile:
		b.showPersonalAccount(ctx, chatID, member.ID)
	case btnBuySubscription:
		b.handleBuySubscription(chatID, session)
	case btnMarkAttendance:
		b.handleMarkAttendance(ctx, chatID, member.ID)
	case btnAttendanceHistory:
		b.showAttendanceHistory(ctx, chatID, member.ID)
	case btnEnroll:
		b.handleEnroll(ctx, chatID, session)
	case btnPay:
		b.handlePay(ctx, chatID, session)
	case btnMyClasses:
		b.showMyClasses(ctx, chatID, member.ID)
	default:
		b.sendWithKeyboard(chatID, fmt.Sprintf("🏋️ Привет, %s!\n\nВыберите нужный раздел:", member.Username), createMainKeyboard())
	}
}

func (b *Bot) handleLinkCommand(ctx context.Context, chatID, telegramID int64, args string) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		b.sendMessage(chatID, "Использование: /link <логин> <пароль>")
		return
	}

	member, err := b.AuthService.LinkTelegram(ctx, parts[0], parts[1], telegramID)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}
	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Аккаунт %s привязан!", member.Username), createMainKeyboard())
}

func (b *Bot) sendWelcomeMessage(ctx context.Context, chatID, telegramID int64) {
	member, err := b.MemberService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		b.sendMessage(chatID, "🏋️ Добро пожаловать в зал!\n\nЧтобы начать, привяжите аккаунт: /link <логин> <пароль>")
		return
	}
	b.sendWithKeyboard(chatID, fmt.Sprintf("🏋️ Добро пожаловать, %s!\n\nВыберите нужный раздел:", member.Username), createMainKeyboard())
}

func (b *Bot) showPersonalAccount(ctx context.Context, chatID, memberID int64) {
	profile, err := b.MemberService.GetProfile(ctx, memberID)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}

	text := "👤 *Личный кабинет*\n\n"
	text += "👤 *Логин:* " + profile.Member.Username + "\n"
	text += "💰 *Баланс:* " + profile.Member.WalletBalance.StringFixed(2) + "\n"
	if sub := profile.Subscription; sub != nil {
		text += fmt.Sprintf("🎫 *Абонемент:* %s - %s\n", sub.StartDate.Format(dateFormat), sub.EndDate.Format(dateFormat))
		text += fmt.Sprintf("📅 *Осталось дней:* %d\n", sub.RemainingDays)
	} else {
		text += "🎫 Активного абонемента нет\n"
	}

	b.sendMarkdown(chatID, text, createMainKeyboard())
}

func (b *Bot) handleMarkAttendance(ctx context.Context, chatID, memberID int64) {
	result, err := b.AttendanceService.MarkAttendance(ctx, memberID, b.today())
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}
	if result.AlreadyMarked {
		b.sendMessage(chatID, "ℹ️ Посещение за сегодня уже отмечено")
		return
	}
	b.sendMessage(chatID, "✅ Посещение отмечено!")
}

func (b *Bot) showAttendanceHistory(ctx context.Context, chatID, memberID int64) {
	history, err := b.AttendanceService.GetHistory(ctx, memberID)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}
	if len(history) == 0 {
		b.sendMessage(chatID, "📭 Посещений пока нет")
		return
	}

	text := "📊 *История посещений:*\n\n"
	for _, a := range history {
		text += "• " + a.Date.Format(dateFormat) + "\n"
	}
	b.sendMarkdown(chatID, text, createMainKeyboard())
}

func (b *Bot) showMyClasses(ctx context.Context, chatID, memberID int64) {
	classes, err := b.EnrollmentService.GetEnrolledClasses(ctx, memberID)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}
	if len(classes) == 0 {
		b.sendMessage(chatID, "📭 Вы ещё не записаны ни на одно занятие")
		return
	}

	text := "📅 *Мои занятия:*\n\n"
	for _, c := range classes {
		status := "⏳ ожидает оплаты"
		if c.PaymentStatus == models.PaymentCompleted {
			status = "✅ оплачено"
		}
		text += fmt.Sprintf("• %s (%s) - %s\n", c.ClassName, c.Price.StringFixed(2), status)
	}
	b.sendMarkdown(chatID, text, createMainKeyboard())
}

var userMessages = map[error]string{
	service.ErrInvalidDateRange:        "❌ Дата окончания раньше даты начала",
	service.ErrOverlappingSubscription: "❌ У вас уже есть активный абонемент на этот период",
	service.ErrInsufficientFunds:       "❌ Недостаточно средств на балансе",
	service.ErrNoActiveSubscription:    "❌ Нет активного абонемента",
	service.ErrAlreadyEnrolled:         "❌ Вы уже записаны на это занятие",
	service.ErrNothingToSettle:         "❌ Нет ожидающей оплаты за это занятие",
	service.ErrAmountMismatch:          "❌ Сумма не совпадает с ценой занятия",
	service.ErrClassInactive:           "❌ Занятие неактивно",
	service.ErrClassNotFound:           "❌ Занятие не найдено",
	service.ErrMemberNotFound:          "❌ Посетитель не найден",
	service.ErrInvalidCredentials:      "❌ Неверный логин или пароль",
	service.ErrTelegramLinked:          "❌ Этот Telegram уже привязан к другому аккаунту",
}

func (b *Bot) sendServiceError(chatID int64, err error) {
	for target, text := range userMessages {
		if errors.Is(err, target) {
			b.sendMessage(chatID, text)
			return
		}
	}
	b.logger.Error("Ошибка обработки сообщения", zap.Int64("chat_id", chatID), zap.Error(err))
	b.sendError(chatID, "❌ Ошибка при выполнении запроса")
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) sendMarkdown(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendWithKeyboard(chatID, text, createMainKeyboard())
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Warn("Не удалось отправить сообщение", zap.Error(err))
	}
}
