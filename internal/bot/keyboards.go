package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const (
	btnProfile           = "👤 Личный кабинет"
	btnBuySubscription   = "🎫 Купить абонемент"
	btnMarkAttendance    = "✅ Отметить посещение"
	btnAttendanceHistory = "📊 История посещений"
	btnEnroll            = "📝 Записаться на занятие"
	btnPay               = "💳 Оплатить занятие"
	btnMyClasses         = "📅 Мои занятия"
	btnConfirm           = "✅ Подтвердить"
	btnCancel            = "❌ Отмена"
)

func createMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProfile),
			tgbotapi.NewKeyboardButton(btnBuySubscription),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMarkAttendance),
			tgbotapi.NewKeyboardButton(btnAttendanceHistory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnEnroll),
			tgbotapi.NewKeyboardButton(btnPay),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMyClasses),
		),
	)
}

func createConfirmKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnConfirm),
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

func createCancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}
