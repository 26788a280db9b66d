package app

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/bot/menu"
	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/metrics"
	"github.com/studhelp/telegram-university-bot/internal/models"
	"github.com/studhelp/telegram-university-bot/internal/tg"
)

// HandleUpdate — единая точка входа для апдейтов Telegram.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	metrics.BotUpdates.Inc()

	if upd.CallbackQuery != nil {
		b.handleCallback(ctx, upd.CallbackQuery)
		return
	}
	msg := upd.Message
	if msg == nil || msg.Chat == nil || !msg.Chat.IsPrivate() {
		return
	}
	// Стикеры и прочий не-текст игнорируем целиком.
	if msg.Text == "" {
		return
	}

	chatID := msg.Chat.ID
	ctx = ctxutil.WithChatID(ctx, chatID)

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleText(ctx, msg)
}

type handlerFunc func(ctx context.Context, msg *tgbotapi.Message)

// adminOnly — авторизация привилегированных команд в одном месте.
// Неадмину не отвечаем вовсе: не подтверждаем сам факт существования команды.
func (b *Bot) adminOnly(h handlerFunc) handlerFunc {
	return func(ctx context.Context, msg *tgbotapi.Message) {
		if !b.isAdmin(msg.Chat.ID) {
			return
		}
		h(ctx, msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	b.ensureUser(ctx, msg)

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "setgroup":
		b.handleSetGroup(ctx, msg)
	case "setsub":
		b.handleSetSub(ctx, msg)
	case "schedule":
		b.handleToday(ctx, msg)
	case "week":
		b.handleWeek(ctx, msg)
	case "notify":
		b.handleNotify(ctx, msg)
	case "reminders":
		b.handleReminders(ctx, msg)
	case "faq":
		b.handleFaq(ctx, msg)
	case "resources":
		b.handleResources(ctx, msg)
	case "news":
		b.handleNews(ctx, msg)
	case "status":
		b.handleStatus(ctx, msg)
	case "spravka":
		b.startForm(ctx, msg.Chat.ID, models.RequestSpravka)
	case "otsrochka":
		b.startForm(ctx, msg.Chat.ID, models.RequestOtsrochka)
	case "hvost":
		b.startForm(ctx, msg.Chat.ID, models.RequestHvost)
	case "anons", "broadcast":
		b.adminOnly(b.handleAnons)(ctx, msg)
	case "addnews":
		b.adminOnly(b.handleAddNews)(ctx, msg)
	case "delnews":
		b.adminOnly(b.handleDelNews)(ctx, msg)
	case "addfaq":
		b.adminOnly(b.handleAddFaq)(ctx, msg)
	case "delfaq":
		b.adminOnly(b.handleDelFaq)(ctx, msg)
	case "addresource":
		b.adminOnly(b.handleAddResource)(ctx, msg)
	case "delresource":
		b.adminOnly(b.handleDelResource)(ctx, msg)
	case "list":
		b.adminOnly(b.handleList)(ctx, msg)
	case "questions":
		b.adminOnly(b.handleQuestions)(ctx, msg)
	case "answer":
		b.adminOnly(b.handleAnswer)(ctx, msg)
	case "stats":
		b.adminOnly(b.handleStats)(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Неизвестная команда. Используйте /start для списка команд.")
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	b.ensureUser(ctx, msg)
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// Кнопки основной клавиатуры.
	switch text {
	case menu.BtnToday:
		b.handleToday(ctx, msg)
		return
	case menu.BtnWeek:
		b.handleWeek(ctx, msg)
		return
	case menu.BtnNews:
		b.handleNews(ctx, msg)
		return
	case menu.BtnFaq:
		b.handleFaq(ctx, msg)
		return
	case menu.BtnResources:
		b.handleResources(ctx, msg)
		return
	case menu.BtnStatus:
		b.handleStatus(ctx, msg)
		return
	case menu.BtnProfile:
		b.handleProfile(ctx, msg)
		return
	case menu.BtnRequest:
		out := tgbotapi.NewMessage(chatID, "Выберите тип заявки:")
		out.ReplyMarkup = menu.RequestTypes()
		if _, err := tg.Send(b.api, out); err != nil {
			metrics.HandlerErrors.Inc()
		}
		return
	case menu.BtnQuestion:
		b.reply(chatID, "Напишите свой вопрос в ответном сообщении, и он будет сохранен для последующего ответа")
		return
	}

	// Незавершённая форма заявки имеет приоритет над всем остальным текстом.
	if _, ok := b.sessions.Form(chatID); ok {
		b.handleFormText(ctx, chatID, text)
		return
	}
	// Ожидаемый админский ввод (текст новости, ответ на вопрос и т.п.).
	if _, ok := b.sessions.Prompt(chatID); ok && b.isAdmin(chatID) {
		b.handlePromptText(ctx, chatID, text)
		return
	}

	// Свободный текст от админа без контекста молча игнорируем, от
	// пользователя — сохраняем как вопрос администрации.
	if b.isAdmin(chatID) {
		return
	}
	if text == "" {
		return
	}
	b.saveQuestion(ctx, chatID, text)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	data := cb.Data
	if strings.HasPrefix(data, "req_") {
		b.handleRequestCallback(ctx, cb)
		return
	}
	// Неизвестные callback'и игнорируем, но отвечаем, чтобы кнопка "отвисла".
	_, _ = tg.Request(b.api, tgbotapi.NewCallback(cb.ID, ""))
}

// ensureUser регистрирует пользователя при первом контакте и освежает
// имя/username. Ошибка не фатальна для обработки сообщения.
func (b *Bot) ensureUser(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	err := db.EnsureUser(dbCtx, b.db, models.User{
		UserID:    msg.Chat.ID,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Username:  msg.From.UserName,
	})
	if err != nil {
		b.log.Warnw("ensure user", "chat_id", msg.Chat.ID, "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if err := tg.SendPlain(b.api, chatID, text); err != nil {
		metrics.HandlerErrors.Inc()
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	if err := tg.SendMarkdown(b.api, chatID, text); err != nil {
		metrics.HandlerErrors.Inc()
	}
}
