package bot

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (b *Bot) handleBuySubscription(chatID int64, session *UserSession) {
	session.reset()
	session.State = StateEnteringSubscriptionDates

	b.sendWithKeyboard(chatID,
		"🎫 Введите даты абонемента в формате ДД.ММ.ГГГГ ДД.ММ.ГГГГ\n\nНапример: 01.01.2024 10.01.2024",
		createCancelKeyboard(),
	)
}

func (b *Bot) handleSubscriptionDates(chatID int64, session *UserSession, text string) {
	start, end, err := parseDateRange(text)
	if err != nil {
		b.sendWithKeyboard(chatID, "❌ Неверный формат. Введите две даты: ДД.ММ.ГГГГ ДД.ММ.ГГГГ", createCancelKeyboard())
		return
	}

	quote, err := b.SubscriptionService.Quote(start, end)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}

	session.Quote = quote
	session.State = StateConfirmingSubscription

	text = fmt.Sprintf("🎫 *Абонемент*\n\n📅 %s - %s\n🗓 Дней: %d\n💰 Стоимость: %s\n\nПодтвердить покупку?",
		quote.StartDate.Format(dateFormat),
		quote.EndDate.Format(dateFormat),
		quote.Days,
		quote.Cost.StringFixed(2),
	)
	b.sendMarkdown(chatID, text, createConfirmKeyboard())
}

func (b *Bot) handleSubscriptionConfirmation(ctx context.Context, chatID int64, session *UserSession, text string) {
	if text != btnConfirm {
		b.sendWithKeyboard(chatID, "Нажмите «✅ Подтвердить» или «❌ Отмена»", createConfirmKeyboard())
		return
	}

	quote := session.Quote
	session.reset()

	subscription, err := b.SubscriptionService.Purchase(ctx, session.MemberID, quote.StartDate, quote.EndDate)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}

	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Абонемент оформлен! Действует до %s, дней: %d",
		subscription.EndDate.Format(dateFormat), subscription.RemainingDays), createMainKeyboard())
}

func parseDateRange(text string) (time.Time, time.Time, error) {
	parts := strings.Fields(strings.ReplaceAll(text, "-", " "))
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("expected two dates, got %d", len(parts))
	}
	start, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
