package app

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
	"github.com/studhelp/telegram-university-bot/internal/schedule"
)

// profileForSchedule достаёт группу/подгруппу и отправляет корректирующие
// подсказки, если профиль не настроен.
func (b *Bot) profileForSchedule(ctx context.Context, chatID int64) (group string, sub int, ok bool) {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	u, err := db.GetUser(dbCtx, b.db, chatID)
	if err != nil && err != models.ErrNotFound {
		b.log.Errorw("get user", "chat_id", chatID, "err", err)
	}
	if u == nil || u.Group == nil {
		b.reply(chatID, "Сначала укажите группу — /setgroup <код_группы>.")
		return "", 0, false
	}
	if u.Subgroup == nil {
		b.reply(chatID, "Сначала укажите подгруппу — /setsub 1 или 2.")
		return "", 0, false
	}
	return *u.Group, *u.Subgroup, true
}

func (b *Bot) handleToday(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	group, sub, ok := b.profileForSchedule(ctx, chatID)
	if !ok {
		return
	}
	entries := b.timetable.Today(group, sub, b.now())
	if len(entries) == 0 {
		b.reply(chatID, fmt.Sprintf("У вас нет занятий сегодня (%s, подгруппа %d).", group, sub))
		return
	}
	b.replyMarkdown(chatID, fmt.Sprintf("*Расписание на сегодня (%s, подгруппа %d):*\n%s",
		group, sub, schedule.FormatDay(entries)))
}

func (b *Bot) handleWeek(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	group, sub, ok := b.profileForSchedule(ctx, chatID)
	if !ok {
		return
	}
	week := b.timetable.Week(group, sub)

	empty := true
	for _, entries := range week {
		if len(entries) > 0 {
			empty = false
			break
		}
	}
	if empty {
		b.reply(chatID, "Расписание на неделю не найдено.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*Расписание на неделю (%s, подгруппа %d):*", group, sub)
	for _, day := range schedule.WeekDays {
		block := schedule.FormatDay(week[day])
		if block == "" {
			block = "_(нет занятий)_"
		}
		sb.WriteString("\n\n*" + day + ":*\n" + block)
	}
	b.replyMarkdown(chatID, sb.String())
}
