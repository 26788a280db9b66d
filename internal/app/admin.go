package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
	"github.com/studhelp/telegram-university-bot/internal/session"
)

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ---- рассылки ----

func (b *Bot) handleAnons(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		b.sessions.SetPrompt(msg.Chat.ID, session.Prompt{Kind: session.PromptAnons})
		b.reply(msg.Chat.ID, "Введите текст объявления для рассылки всем пользователям:")
		return
	}
	b.broadcastAnnouncement(ctx, text)
}

func (b *Bot) handleAddNews(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		b.sessions.SetPrompt(msg.Chat.ID, session.Prompt{Kind: session.PromptNews})
		b.reply(msg.Chat.ID, "Введите текст новости/объявления:")
		return
	}
	b.broadcastNews(ctx, text)
}

func (b *Bot) handleDelNews(ctx context.Context, msg *tgbotapi.Message) {
	b.deleteByID(ctx, msg, "Использование: /delnews <ID>",
		"Новость с ID %d удалена.", "Новость с ID %d не найдена.", db.DeleteNews)
}

// ---- FAQ и ресурсы ----

func (b *Bot) handleAddFaq(_ context.Context, msg *tgbotapi.Message) {
	b.sessions.SetPrompt(msg.Chat.ID, session.Prompt{Kind: session.PromptFaqQuestion})
	b.reply(msg.Chat.ID, "Введите новый вопрос (FAQ):")
}

func (b *Bot) handleDelFaq(ctx context.Context, msg *tgbotapi.Message) {
	b.deleteByID(ctx, msg, "Используйте: /delfaq <ID>",
		"FAQ с ID %d удален.", "FAQ с ID %d не найден.", db.DeleteFaq)
}

func (b *Bot) handleAddResource(_ context.Context, msg *tgbotapi.Message) {
	b.sessions.SetPrompt(msg.Chat.ID, session.Prompt{Kind: session.PromptResourceName})
	b.reply(msg.Chat.ID, "Введите название ресурса:")
}

func (b *Bot) handleDelResource(ctx context.Context, msg *tgbotapi.Message) {
	b.deleteByID(ctx, msg, "Используйте: /delresource <ID>",
		"Ресурс с ID %d удален.", "Ресурс с ID %d не найден.", db.DeleteResource)
}

// deleteByID — общий каркас /delnews, /delfaq, /delresource.
func (b *Bot) deleteByID(ctx context.Context, msg *tgbotapi.Message, usage, okFmt, missFmt string,
	del func(context.Context, *sql.DB, int64) error) {
	chatID := msg.Chat.ID
	id, err := parseID(msg.CommandArguments())
	if err != nil {
		b.reply(chatID, usage)
		return
	}
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	err = del(dbCtx, b.db, id)
	if errors.Is(err, models.ErrNotFound) {
		b.reply(chatID, fmt.Sprintf(missFmt, id))
		return
	}
	if err != nil {
		b.log.Errorw("delete by id", "id", id, "err", err)
		b.reply(chatID, "Не получилось удалить запись, попробуйте позже.")
		return
	}
	b.reply(chatID, fmt.Sprintf(okFmt, id))
}

// ---- ожидаемый текстовый ввод админа ----

// handlePromptText доводит до конца многошаговые админские сценарии:
// текст новости/объявления, пара вопрос-ответ FAQ, пара название-URL
// ресурса, текст ответа на вопрос пользователя.
func (b *Bot) handlePromptText(ctx context.Context, chatID int64, text string) {
	p, ok := b.sessions.Prompt(chatID)
	if !ok {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		b.reply(chatID, "Текст не должен быть пустым.")
		return
	}

	switch p.Kind {
	case session.PromptAnons:
		b.sessions.Clear(chatID)
		b.broadcastAnnouncement(ctx, text)
	case session.PromptNews:
		b.sessions.Clear(chatID)
		b.broadcastNews(ctx, text)
	case session.PromptFaqQuestion:
		p.FaqQuestion = text
		p.Kind = session.PromptFaqAnswer
		b.sessions.SetPrompt(chatID, p)
		b.reply(chatID, "Введите ответ на этот вопрос:")
	case session.PromptFaqAnswer:
		b.sessions.Clear(chatID)
		dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()
		if _, err := db.AddFaq(dbCtx, b.db, p.FaqQuestion, text); err != nil {
			b.log.Errorw("add faq", "err", err)
			b.reply(chatID, "Не получилось сохранить FAQ, попробуйте позже.")
			return
		}
		b.reply(chatID, "✅ FAQ добавлен: "+p.FaqQuestion+" – "+text)
	case session.PromptResourceName:
		p.ResourceName = text
		p.Kind = session.PromptResourceURL
		b.sessions.SetPrompt(chatID, p)
		b.reply(chatID, "Введите URL ресурса:")
	case session.PromptResourceURL:
		b.sessions.Clear(chatID)
		dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()
		if _, err := db.AddResource(dbCtx, b.db, p.ResourceName, text); err != nil {
			b.log.Errorw("add resource", "err", err)
			b.reply(chatID, "Не получилось сохранить ресурс, попробуйте позже.")
			return
		}
		b.reply(chatID, "✅ Ресурс добавлен: "+p.ResourceName+" – "+text)
	case session.PromptAnswer:
		b.sessions.Clear(chatID)
		b.deliverAnswer(ctx, p.QuestionID, text)
	}
}

// ---- обзор и статистика ----

func (b *Bot) handleList(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	category := strings.ToLower(strings.TrimSpace(msg.CommandArguments()))
	if category == "" {
		b.reply(chatID, "Использование: /list <faq|resources|news|questions>")
		return
	}
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var sb strings.Builder
	switch category {
	case "faq":
		list, err := db.AllFaq(dbCtx, b.db)
		if err != nil {
			b.log.Errorw("list faq", "err", err)
			return
		}
		if len(list) == 0 {
			b.reply(chatID, "FAQ пока пуст.")
			return
		}
		sb.WriteString("*FAQ (ID | Вопрос — Ответ):*")
		for _, f := range list {
			fmt.Fprintf(&sb, "\n%d | %s — %s", f.ID, f.Question, f.Answer)
		}
	case "resources":
		list, err := db.AllResources(dbCtx, b.db)
		if err != nil {
			b.log.Errorw("list resources", "err", err)
			return
		}
		if len(list) == 0 {
			b.reply(chatID, "Список ресурсов пуст.")
			return
		}
		sb.WriteString("*Ресурсы (ID | Название — URL):*")
		for _, r := range list {
			fmt.Fprintf(&sb, "\n%d | %s — %s", r.ID, r.Name, r.URL)
		}
	case "news":
		list, err := db.AllNews(dbCtx, b.db)
		if err != nil {
			b.log.Errorw("list news", "err", err)
			return
		}
		if len(list) == 0 {
			b.reply(chatID, "Новостей пока нет.")
			return
		}
		sb.WriteString("*Новости (ID | Дата — Текст):*")
		for _, n := range list {
			fmt.Fprintf(&sb, "\n%d | [%s] %s", n.ID, n.CreatedAt.Format("02.01.2006"), n.Content)
		}
	case "questions":
		list, err := db.AllQuestions(dbCtx, b.db)
		if err != nil {
			b.log.Errorw("list questions", "err", err)
			return
		}
		if len(list) == 0 {
			b.reply(chatID, "Вопросов нет.")
			return
		}
		sb.WriteString("*Вопросы (ID | Пользователь — Отвечен?):*")
		for _, q := range list {
			status := "❌"
			if q.Answered {
				status = "✅"
			}
			fmt.Fprintf(&sb, "\n%d | %d — %s «%s»", q.ID, q.UserID, status, q.Question)
		}
	default:
		b.reply(chatID, "Неподдерживаемая категория. Используйте faq, resources, news или questions.")
		return
	}
	b.replyMarkdown(chatID, sb.String())
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	s, err := db.GetStats(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("stats", "err", err)
		b.reply(chatID, "Не получилось собрать статистику, попробуйте позже.")
		return
	}
	b.replyMarkdown(chatID, "*Статистика использования:*\n"+
		fmt.Sprintf("Пользователей: %d\n", s.Users)+
		fmt.Sprintf("Отправлено заявок: %d (Справок: %d, Отсрочек: %d, Пересдач: %d)\n",
			s.RequestsTotal, s.Spravka, s.Otsrochka, s.Hvost)+
		fmt.Sprintf("Вопросов получено: %d (из них без ответа: %d)\n",
			s.QuestionsTotal, s.QuestionsUnanswered)+
		fmt.Sprintf("Новостей опубликовано: %d\n", s.News)+
		fmt.Sprintf("FAQ записей: %d, ресурсов: %d", s.Faq, s.Resources))
}
