package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/reminders"
	"github.com/studhelp/telegram-university-bot/internal/schedule"
)

// Sender — минимальный транспорт для рассылок из фоновых задач.
type Sender interface {
	SendMarkdown(chatID int64, text string) error
}

// Daily срабатывает раз в календарный день не раньше заданного времени.
// Если тик пришёл позже (процесс спал, машина была выключена), задача всё
// равно выполняется — но только один раз за этот день.
type Daily struct {
	hour, minute int
	lastFired    string // дата последнего срабатывания, "2006-01-02"
}

func NewDaily(at string) (*Daily, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("время задаётся как HH:MM: %w", err)
	}
	return &Daily{hour: t.Hour(), minute: t.Minute()}, nil
}

// Due отмечает день выполненным при положительном ответе, поэтому
// вызывать её нужно только когда задача действительно будет запущена.
func (d *Daily) Due(now time.Time) bool {
	day := now.Format("2006-01-02")
	if d.lastFired == day {
		return false
	}
	if now.Hour() < d.hour || (now.Hour() == d.hour && now.Minute() < d.minute) {
		return false
	}
	d.lastFired = day
	return true
}

// StartDailySchedule каждое утро шлёт подписанным студентам их пары на сегодня.
// Пользователи без занятий в этот день не получают ничего.
func StartDailySchedule(r *Runner, database *sql.DB, table *schedule.Table, sender Sender,
	trigger *Daily, loc *time.Location, log *zap.SugaredLogger) {
	r.Every(30*time.Second, "daily_schedule", func(ctx context.Context) error {
		now := time.Now().In(loc)
		if !trigger.Due(now) {
			return nil
		}
		targets, err := db.NotifyTargets(ctx, database)
		if err != nil {
			return err
		}
		sent := 0
		for _, t := range targets {
			entries := table.Today(t.Group, t.Subgroup, now)
			if len(entries) == 0 {
				continue
			}
			text := "📅 *Ваше расписание на сегодня:*\n" + schedule.FormatDay(entries)
			if err := sender.SendMarkdown(t.UserID, text); err != nil {
				log.Warnw("daily schedule send", "user_id", t.UserID, "err", err)
				continue
			}
			sent++
		}
		log.Infow("daily schedule dispatched", "targets", len(targets), "sent", sent)
		return nil
	})
}

// StartDailyReminders шлёт дедлайны дня и мотивацию. Если файла напоминаний
// нет или на сегодня пусто, день всё равно считается отработанным.
func StartDailyReminders(r *Runner, database *sql.DB, rem *reminders.File, sender Sender,
	trigger *Daily, loc *time.Location, log *zap.SugaredLogger) {
	r.Every(30*time.Second, "daily_reminders", func(ctx context.Context) error {
		now := time.Now().In(loc)
		if !trigger.Due(now) {
			return nil
		}
		text := rem.BuildMessage(now, reminders.Pick)
		if text == "" {
			return nil
		}
		ids, err := db.ReminderTargets(ctx, database)
		if err != nil {
			return err
		}
		sent := 0
		for _, id := range ids {
			if err := sender.SendMarkdown(id, text); err != nil {
				log.Warnw("daily reminder send", "user_id", id, "err", err)
				continue
			}
			sent++
		}
		log.Infow("daily reminders dispatched", "targets", len(ids), "sent", sent)
		return nil
	})
}
