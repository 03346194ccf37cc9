package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gym-ledger/internal/models"
)

func (b *Bot) handleEnroll(ctx context.Context, chatID int64, session *UserSession) {
	classes, err := b.ClassService.ListActive(ctx)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}
	if len(classes) == 0 {
		b.sendMessage(chatID, "📭 Сейчас нет доступных занятий")
		return
	}

	session.reset()
	session.State = StateSelectingClass
	session.AvailableClasses = classes

	text := "📝 *Выберите занятие:*\n\n"
	for i, c := range classes {
		text += fmt.Sprintf("%d. %s (%s - %s) - %s\n", i+1, c.Name,
			c.StartDate.Format(dateFormat), c.EndDate.Format(dateFormat), c.Price.StringFixed(2))
	}
	text += "\nВведите номер занятия или отправьте '❌ Отмена'"
	b.sendMarkdown(chatID, text, createCancelKeyboard())
}

func (b *Bot) handleClassSelection(chatID int64, session *UserSession, text string) {
	idx, ok := parseChoice(text, len(session.AvailableClasses))
	if !ok {
		b.sendWithKeyboard(chatID, "❌ Введите номер из списка", createCancelKeyboard())
		return
	}

	class := session.AvailableClasses[idx]
	session.SelectedClassID = class.ID
	session.SelectedClass = class.Name
	session.State = StateConfirmingEnrollment

	b.sendWithKeyboard(chatID, fmt.Sprintf("Записаться на «%s» за %s? Оплата потребуется отдельно.",
		class.Name, class.Price.StringFixed(2)), createConfirmKeyboard())
}

func (b *Bot) handleEnrollmentConfirmation(ctx context.Context, chatID int64, session *UserSession, text string) {
	if text != btnConfirm {
		b.sendWithKeyboard(chatID, "Нажмите «✅ Подтвердить» или «❌ Отмена»", createConfirmKeyboard())
		return
	}

	classID, name := session.SelectedClassID, session.SelectedClass
	session.reset()

	receipt, err := b.EnrollmentService.Enroll(ctx, session.MemberID, classID)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}

	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Вы записаны на «%s». К оплате: %s",
		name, receipt.Payment.Amount.StringFixed(2)), createMainKeyboard())
}

func (b *Bot) handlePay(ctx context.Context, chatID int64, session *UserSession) {
	classes, err := b.EnrollmentService.GetEnrolledClasses(ctx, session.MemberID)
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}

	var pending []models.EnrolledClass
	for _, c := range classes {
		if c.PaymentStatus == models.PaymentPending {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		b.sendMessage(chatID, "✅ Неоплаченных занятий нет")
		return
	}

	session.reset()
	session.State = StateSelectingPayment
	session.PendingClasses = pending

	text := "💳 *Ожидают оплаты:*\n\n"
	for i, c := range pending {
		text += fmt.Sprintf("%d. %s - %s\n", i+1, c.ClassName, c.Price.StringFixed(2))
	}
	text += "\nВведите номер занятия или отправьте '❌ Отмена'"
	b.sendMarkdown(chatID, text, createCancelKeyboard())
}

func (b *Bot) handlePaymentSelection(chatID int64, session *UserSession, text string) {
	idx, ok := parseChoice(text, len(session.PendingClasses))
	if !ok {
		b.sendWithKeyboard(chatID, "❌ Введите номер из списка", createCancelKeyboard())
		return
	}

	class := session.PendingClasses[idx]
	session.SelectedClassID = class.ClassID
	session.SelectedClass = class.ClassName
	session.State = StateConfirmingPayment

	b.sendWithKeyboard(chatID, fmt.Sprintf("Оплатить «%s» (%s) с баланса?",
		class.ClassName, class.Price.StringFixed(2)), createConfirmKeyboard())
}

func (b *Bot) handlePaymentConfirmation(ctx context.Context, chatID int64, session *UserSession, text string) {
	if text != btnConfirm {
		b.sendWithKeyboard(chatID, "Нажмите «✅ Подтвердить» или «❌ Отмена»", createConfirmKeyboard())
		return
	}

	classID, name := session.SelectedClassID, session.SelectedClass
	session.reset()

	receipt, err := b.EnrollmentService.SettlePayment(ctx, models.SettlementRequest{
		MemberID: session.MemberID,
		ClassID:  classID,
	})
	if err != nil {
		b.sendServiceError(chatID, err)
		return
	}

	b.sendWithKeyboard(chatID, fmt.Sprintf("✅ Занятие «%s» оплачено. Баланс: %s",
		name, receipt.MemberBalance.StringFixed(2)), createMainKeyboard())
}

// parseChoice переводит номер из списка (с 1) в индекс
func parseChoice(text string, n int) (int, bool) {
	num, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || num < 1 || num > n {
		return 0, false
	}
	return num - 1, true
}
