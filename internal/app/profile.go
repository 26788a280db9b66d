package app

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/ctxutil"
	"github.com/studhelp/telegram-university-bot/internal/db"
)

func (b *Bot) handleSetGroup(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	group := strings.TrimSpace(msg.CommandArguments())
	if group == "" {
		b.reply(chatID, "Используйте: /setgroup <код_группы>, например /setgroup ПИ-21")
		return
	}
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if err := db.SetGroup(dbCtx, b.db, chatID, group); err != nil {
		b.log.Errorw("set group", "chat_id", chatID, "err", err)
		b.reply(chatID, "Не получилось сохранить группу, попробуйте позже.")
		return
	}
	b.replyMarkdown(chatID, "Группа установлена: *"+group+"*")
}

func (b *Bot) handleSetSub(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg != "1" && arg != "2" {
		b.reply(chatID, "Используйте: /setsub 1 или /setsub 2")
		return
	}
	sub := 1
	if arg == "2" {
		sub = 2
	}
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if err := db.SetSubgroup(dbCtx, b.db, chatID, sub); err != nil {
		b.log.Errorw("set subgroup", "chat_id", chatID, "err", err)
		b.reply(chatID, "Не получилось сохранить подгруппу, попробуйте позже.")
		return
	}
	b.replyMarkdown(chatID, fmt.Sprintf("Подгруппа установлена: *%d*", sub))
}

func (b *Bot) handleNotify(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	on, err := db.ToggleNotify(dbCtx, b.db, chatID)
	if err != nil {
		b.log.Errorw("toggle notify", "chat_id", chatID, "err", err)
		b.reply(chatID, "Не получилось изменить настройку, попробуйте позже.")
		return
	}
	b.reply(chatID, "Ежедневные уведомления расписания "+onOff(on)+".")
}

func (b *Bot) handleReminders(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	on, err := db.ToggleReminders(dbCtx, b.db, chatID)
	if err != nil {
		b.log.Errorw("toggle reminders", "chat_id", chatID, "err", err)
		b.reply(chatID, "Не получилось изменить настройку, попробуйте позже.")
		return
	}
	b.reply(chatID, "Учебные напоминания "+onOff(on)+".")
}

func (b *Bot) handleProfile(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	u, err := db.GetUser(dbCtx, b.db, chatID)
	if err != nil {
		b.reply(chatID, "Данные профиля не найдены.")
		return
	}
	group := "<не указана>"
	if u.Group != nil {
		group = *u.Group
	}
	sub := "<нет>"
	if u.Subgroup != nil {
		sub = fmt.Sprintf("%d", *u.Subgroup)
	}
	b.replyMarkdown(chatID, "*Ваш профиль:*\n"+
		"Группа: "+group+"\n"+
		"Подгруппа: "+sub+"\n"+
		"Уведомления расписания: "+onOff(u.Notify)+"\n"+
		"Учебные напоминания: "+onOff(u.Reminders))
}

func onOff(on bool) string {
	if on {
		return "включены"
	}
	return "отключены"
}
