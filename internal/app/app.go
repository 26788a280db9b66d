package app

import (
	"database/sql"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/studhelp/telegram-university-bot/internal/config"
	"github.com/studhelp/telegram-university-bot/internal/reminders"
	"github.com/studhelp/telegram-university-bot/internal/schedule"
	"github.com/studhelp/telegram-university-bot/internal/session"
)

// Bot держит все зависимости обработчиков. Методы разложены по файлам
// пакета: диспетчеризация, профиль, расписание, формы заявок, админка.
type Bot struct {
	api       *tgbotapi.BotAPI
	db        *sql.DB
	log       *zap.SugaredLogger
	cfg       *config.Config
	sessions  *session.Store
	timetable *schedule.Table
	reminders *reminders.File // nil — файла нет, напоминания отключены
	now       func() time.Time
}

func New(api *tgbotapi.BotAPI, database *sql.DB, log *zap.SugaredLogger, cfg *config.Config,
	timetable *schedule.Table, rem *reminders.File) *Bot {
	return &Bot{
		api:       api,
		db:        database,
		log:       log,
		cfg:       cfg,
		sessions:  session.NewStore(),
		timetable: timetable,
		reminders: rem,
		now:       func() time.Time { return time.Now().In(cfg.Location) },
	}
}

// API — доступ к транспорту для jobs и рассылок.
func (b *Bot) API() *tgbotapi.BotAPI { return b.api }

func (b *Bot) isAdmin(chatID int64) bool {
	return b.cfg.AdminID != 0 && chatID == b.cfg.AdminID
}
