package app

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/metrics"
	"github.com/studhelp/telegram-university-bot/internal/models"
	"github.com/studhelp/telegram-university-bot/internal/session"
	"github.com/studhelp/telegram-university-bot/internal/tg"
)

// Три заявки отличаются только текстами, поэтому машина состояний одна,
// параметризованная описанием потока.
type formFlow struct {
	intro        string // первая строка первого промпта
	detailPrompt string // формулировка третьего шага
	detailField  string // подпись третьего поля в подтверждении
	confirm      string // первая строка подтверждения
	confirmTail  string // подсказка про /status
}

var formFlows = map[models.RequestType]formFlow{
	models.RequestSpravka: {
		intro:        "Оформление справки.",
		detailPrompt: "Укажите *тип справки*:",
		detailField:  "Тип справки",
		confirm:      "✅ Заявка на справку принята!",
		confirmTail:  "Статус заявки можно посмотреть командой /status.",
	},
	models.RequestOtsrochka: {
		intro:        "Оформление заявления на отсрочку.",
		detailPrompt: "Укажите *причину отсрочки*:",
		detailField:  "Причина",
		confirm:      "✅ Заявление на отсрочку принято!",
		confirmTail:  "Статус заявки можно проверить командой /status.",
	},
	models.RequestHvost: {
		intro:        "Оформление заявки на пересдачу.",
		detailPrompt: "Укажите *дисциплину для пересдачи*:",
		detailField:  "Дисциплина",
		confirm:      "✅ Заявка на пересдачу принята!",
		confirmTail:  "Статус заявки можно проверить командой /status.",
	},
}

// formPrompt — текст запроса для текущего шага формы.
func formPrompt(f session.Form) string {
	flow := formFlows[f.Type]
	switch f.Step {
	case session.StepName:
		return flow.intro + "\n1⃣ Введите *ФИО*:"
	case session.StepGroup:
		return "2⃣ Укажите *группу*:"
	case session.StepDetail:
		return "3⃣ " + flow.detailPrompt
	}
	return ""
}

// advanceForm — чистая функция перехода: принимает текущую форму и ввод,
// возвращает следующее состояние. Пустой после обрезки ввод отклоняется
// одинаково на всех шагах (ok=false, шаг не двигается). done=true значит,
// что собраны все три поля и detail лежит в возвращённом вводе.
func advanceForm(f session.Form, input string) (next session.Form, detail string, done, ok bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return f, "", false, false
	}
	switch f.Step {
	case session.StepName:
		f.Name = input
		f.Step = session.StepGroup
		return f, "", false, true
	case session.StepGroup:
		f.Group = input
		f.Step = session.StepDetail
		return f, "", false, true
	case session.StepDetail:
		return f, input, true, true
	}
	return f, "", false, false
}

// startForm заводит новую форму. Старое состояние чата сбрасывается
// целиком — поля из недозаполненной заявки другого типа не протекают.
func (b *Bot) startForm(_ context.Context, chatID int64, t models.RequestType) {
	f := b.sessions.StartForm(chatID, t)
	b.replyMarkdown(chatID, formPrompt(f))
}

func (b *Bot) handleFormText(ctx context.Context, chatID int64, text string) {
	f, ok := b.sessions.Form(chatID)
	if !ok {
		return
	}
	next, detail, done, accepted := advanceForm(f, text)
	if !accepted {
		b.replyMarkdown(chatID, "Поле не должно быть пустым.\n"+formPrompt(f))
		return
	}
	if !done {
		b.sessions.SaveForm(chatID, next)
		b.replyMarkdown(chatID, formPrompt(next))
		return
	}

	// Форма собрана: фиксируем заявку и только потом чистим состояние.
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	_, err := db.InsertRequest(dbCtx, b.db, models.Request{
		UserID:  chatID,
		Type:    next.Type,
		Name:    next.Name,
		Group:   next.Group,
		Details: detail,
		Status:  models.StatusAccepted,
	})
	if err != nil {
		b.log.Errorw("insert request", "chat_id", chatID, "type", next.Type, "err", err)
		b.reply(chatID, "Не получилось сохранить заявку, попробуйте позже.")
		return
	}
	b.sessions.Clear(chatID)

	flow := formFlows[next.Type]
	b.replyMarkdown(chatID, flow.confirm+"\n"+
		"ФИО: "+next.Name+"\n"+
		"Группа: "+next.Group+"\n"+
		flow.detailField+": "+detail+"\n\n"+
		flow.confirmTail)
}

// handleRequestCallback — вход в ту же машину с inline-кнопки "Подать заявку".
// Сообщение с кнопками удаляем: выбор сделан, клавиатура больше не нужна.
func (b *Bot) handleRequestCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var t models.RequestType
	switch cb.Data {
	case "req_spravka":
		t = models.RequestSpravka
	case "req_otsrochka":
		t = models.RequestOtsrochka
	case "req_hvost":
		t = models.RequestHvost
	default:
		return
	}
	chatID := cb.Message.Chat.ID

	if _, err := tg.Request(b.api, tgbotapi.NewDeleteMessage(chatID, cb.Message.MessageID)); err != nil {
		metrics.HandlerErrors.Inc()
	}
	_, _ = tg.Request(b.api, tgbotapi.NewCallback(cb.ID, "Выбрано: "+models.RequestLabel(t)))

	b.startForm(ctx, chatID, t)
}
