package app

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
)

func (b *Bot) handleFaq(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	list, err := db.AllFaq(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("faq list", "err", err)
	}
	if len(list) == 0 {
		b.reply(chatID, "FAQ недоступен или пока пуст.")
		return
	}
	var sb strings.Builder
	sb.WriteString("*Часто задаваемые вопросы:*")
	for i, f := range list {
		fmt.Fprintf(&sb, "\n\n*%d. %s*\n_%s_", i+1, f.Question, f.Answer)
	}
	b.replyMarkdown(chatID, sb.String())
}

func (b *Bot) handleResources(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	list, err := db.AllResources(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("resources list", "err", err)
	}
	if len(list) == 0 {
		b.reply(chatID, "Список ресурсов пуст.")
		return
	}
	var sb strings.Builder
	sb.WriteString("*Полезные ресурсы:*")
	for _, r := range list {
		sb.WriteString("\n" + r.Name + ": " + r.URL)
	}
	b.replyMarkdown(chatID, sb.String())
}

func (b *Bot) handleNews(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	list, err := db.AllNews(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("news list", "err", err)
	}
	if len(list) == 0 {
		b.reply(chatID, "Новостей пока нет.")
		return
	}
	var sb strings.Builder
	sb.WriteString("*Новости и объявления:*")
	for _, n := range list {
		sb.WriteString("\n[" + n.CreatedAt.Format("02.01.2006") + "] " + n.Content)
	}
	b.replyMarkdown(chatID, sb.String())
}

func (b *Bot) handleStatus(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	list, err := db.RequestsByUser(dbCtx, b.db, chatID)
	if err != nil {
		b.log.Errorw("requests by user", "chat_id", chatID, "err", err)
	}
	if len(list) == 0 {
		b.reply(chatID, "У вас нет отправленных заявок.")
		return
	}
	var sb strings.Builder
	sb.WriteString("*Статус ваших заявок:*\n")
	for _, r := range list {
		fmt.Fprintf(&sb, "– %s (%s): %s\n", models.RequestLabel(r.Type), r.Details, r.Status)
	}
	b.replyMarkdown(chatID, sb.String())
}
