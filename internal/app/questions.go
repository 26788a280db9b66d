package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
	"github.com/studhelp/telegram-university-bot/internal/session"
	"github.com/studhelp/telegram-university-bot/internal/tg"
)

// saveQuestion фиксирует свободный текст пользователя как вопрос администрации.
func (b *Bot) saveQuestion(ctx context.Context, chatID int64, text string) {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if _, err := db.AddQuestion(dbCtx, b.db, chatID, text); err != nil {
		b.log.Errorw("add question", "chat_id", chatID, "err", err)
		b.reply(chatID, "Не получилось сохранить вопрос, попробуйте позже.")
		return
	}
	b.reply(chatID, "✅ Ваш вопрос отправлен. Мы ответим на него в ближайшее время.")
}

func (b *Bot) handleQuestions(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	list, err := db.UnansweredQuestions(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("unanswered questions", "err", err)
		return
	}
	if len(list) == 0 {
		b.reply(chatID, "Нет новых вопросов от пользователей.")
		return
	}
	var sb strings.Builder
	sb.WriteString("*Вопросы от пользователей:*")
	for _, q := range list {
		name := q.FirstName
		if name == "" {
			name = "Пользователь"
		}
		fmt.Fprintf(&sb, "\nID%d от %s (%s): %s", q.ID, name, q.AskedAt.Format("02.01.2006 15:04"), q.Question)
	}
	b.replyMarkdown(chatID, sb.String())
}

func (b *Bot) handleAnswer(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		b.reply(chatID, "Используйте: /answer <ID> <текст ответа>")
		return
	}
	qid, err := parseID(args[0])
	if err != nil {
		b.reply(chatID, "Неверный формат ID.")
		return
	}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(msg.CommandArguments()), args[0]))
	if rest != "" {
		b.deliverAnswer(ctx, qid, rest)
		return
	}
	// Текста нет — ждём его следующим сообщением.
	b.sessions.SetPrompt(chatID, session.Prompt{Kind: session.PromptAnswer, QuestionID: qid})
	b.reply(chatID, fmt.Sprintf("Введите ответ на вопрос ID%d:", qid))
}

// deliverAnswer закрывает вопрос (строго один раз) и доставляет ответ автору.
// Три исхода для админа различимы: вопрос не найден/закрыт, доставка не
// удалась, успех.
func (b *Bot) deliverAnswer(ctx context.Context, qid int64, answer string) {
	adminID := b.cfg.AdminID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	userID, question, err := db.AnswerQuestion(dbCtx, b.db, qid, answer)
	if errors.Is(err, models.ErrNotFound) {
		b.reply(adminID, fmt.Sprintf("Вопрос ID%d не найден или уже закрыт.", qid))
		return
	}
	if err != nil {
		b.log.Errorw("answer question", "qid", qid, "err", err)
		b.reply(adminID, "Не получилось сохранить ответ, попробуйте позже.")
		return
	}
	if err := tg.SendPlain(b.api, userID, "✉️ Ответ на ваш вопрос \""+question+"\":\n"+answer); err != nil {
		b.reply(adminID, fmt.Sprintf("Не удалось доставить ответ пользователю %d. Возможно, он остановил бота.", userID))
		return
	}
	b.reply(adminID, fmt.Sprintf("Ответ пользователю %d отправлен.", userID))
}
