package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/bot/menu"
	"github.com/studhelp/telegram-university-bot/internal/metrics"
	"github.com/studhelp/telegram-university-bot/internal/tg"
)

const userHelp = `*Команды:*
/setgroup <группа> — указать вашу учебную группу
/setsub <1|2> — указать вашу подгруппу (если есть)
/schedule — расписание на сегодня
/week — расписание на неделю
/notify — вкл/выкл ежедневные уведомления расписания
/reminders — вкл/выкл напоминания о дедлайнах и мотивации
/faq — часто задаваемые вопросы
/resources — полезные ссылки
/spravka — заявка на справку
/otsrochka — заявление на отсрочку
/hvost — заявка на пересдачу
/status — статус ваших заявок
/news — последние новости и объявления`

const adminHelp = `*Администратор:* /anons — разослать объявление всем пользователям
/addnews — добавить новость/объявление
/addfaq — добавить FAQ
/delnews <id> — удалить новость по ID
/delfaq <id> — удалить FAQ по ID
/addresource — добавить ресурс
/delresource <id> — удалить ресурс
/list — посмотреть все категории
/questions — непрочитанные вопросы пользователей
/answer <id> — ответить на вопрос
/stats — статистика использования`

func (b *Bot) handleStart(_ context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	name := "студент"
	if msg.From != nil && msg.From.FirstName != "" {
		name = msg.From.FirstName
	}
	text := "Привет, *" + name + "*! Я бот-помощник университета.\n\n" + userHelp +
		"\nТакже вы можете просто написать мне свой вопрос, и он будет передан администрации."
	if b.isAdmin(chatID) {
		text += "\n\n" + adminHelp
	}
	b.replyMarkdown(chatID, text)

	kb := tgbotapi.NewMessage(chatID, "Выберите действие на клавиатуре ниже:")
	kb.ReplyMarkup = menu.Main()
	if _, err := tg.Send(b.api, kb); err != nil {
		metrics.HandlerErrors.Inc()
	}
}
