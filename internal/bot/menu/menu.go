package menu

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Подписи кнопок основной клавиатуры. Диспетчер матчит их как текстовые команды.
const (
	BtnToday     = "📅 Расписание (сегодня)"
	BtnWeek      = "📅 Расписание (неделя)"
	BtnNews      = "📰 Новости"
	BtnFaq       = "❓ FAQ"
	BtnResources = "📖 Ресурсы"
	BtnRequest   = "📝 Подать заявку"
	BtnStatus    = "📋 Мои заявки"
	BtnQuestion  = "💬 Задать вопрос"
	BtnProfile   = "👤 Мой профиль"
)

// Main — основная reply-клавиатура, выдаётся после /start.
func Main() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnToday),
			tgbotapi.NewKeyboardButton(BtnWeek),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnNews),
			tgbotapi.NewKeyboardButton(BtnFaq),
			tgbotapi.NewKeyboardButton(BtnResources),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnRequest),
			tgbotapi.NewKeyboardButton(BtnStatus),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnQuestion),
			tgbotapi.NewKeyboardButton(BtnProfile),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// RequestTypes — inline-выбор типа заявки для кнопки "Подать заявку".
func RequestTypes() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Справка", "req_spravka"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отсрочка", "req_otsrochka"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Пересдача", "req_hvost"),
		),
	)
}
