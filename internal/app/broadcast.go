package app

import (
	"context"
	"fmt"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/metrics"
	"github.com/studhelp/telegram-university-bot/internal/tg"
)

// FanOut доставляет текст каждому получателю через send. Ошибка одной
// доставки (заблокированный бот, удалённый аккаунт) не прерывает обход —
// она неотличима от пользователя, остановившего бота. Возвращает число
// успешных отправок.
func FanOut(ids []int64, text string, send func(chatID int64, text string) error) int {
	n := 0
	for _, id := range ids {
		if err := send(id, text); err != nil {
			metrics.BroadcastFailed.Inc()
			continue
		}
		metrics.BroadcastSent.Inc()
		n++
	}
	return n
}

// SendMarkdown — доставка одного сообщения; реализует jobs.Sender.
func (b *Bot) SendMarkdown(chatID int64, text string) error {
	return tg.SendMarkdown(b.api, chatID, text)
}

// broadcastNews сохраняет новость и рассылает её всем известным пользователям.
func (b *Bot) broadcastNews(ctx context.Context, content string) {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if _, err := db.AddNews(dbCtx, b.db, content); err != nil {
		b.log.Errorw("add news", "err", err)
		b.reply(b.cfg.AdminID, "Не получилось сохранить новость, попробуйте позже.")
		return
	}
	ids, err := db.AllUserIDs(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("list users", "err", err)
		return
	}
	FanOut(ids, "📢 *Новое объявление:* "+content, b.SendMarkdown)
}

// broadcastAnnouncement рассылает сырой текст без сохранения и отчитывается
// админу числом успешных доставок.
func (b *Bot) broadcastAnnouncement(ctx context.Context, text string) {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	ids, err := db.AllUserIDs(dbCtx, b.db)
	if err != nil {
		b.log.Errorw("list users", "err", err)
		return
	}
	count := FanOut(ids, text, func(chatID int64, msg string) error {
		return tg.SendPlain(b.api, chatID, msg)
	})
	b.reply(b.cfg.AdminID, fmt.Sprintf("Отправлено объявление %d пользователям.", count))
}
