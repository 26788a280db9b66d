package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/studhelp/telegram-university-bot/internal/app"
	"github.com/studhelp/telegram-university-bot/internal/config"
	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/jobs"
	"github.com/studhelp/telegram-university-bot/internal/logging"
	"github.com/studhelp/telegram-university-bot/internal/observability"
	"github.com/studhelp/telegram-university-bot/internal/reminders"
	"github.com/studhelp/telegram-university-bot/internal/schedule"
)

var version = "dev" // подставляется через -ldflags при сборке

func main() {
	// Загрузка переменных окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Конфигурация: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Логгер: %v", err)
	}
	defer lg.Closer()
	logger := lg.Sugar

	closeSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		logger.Warnw("sentry init", "err", err)
	}
	defer closeSentry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalw("db open", "path", cfg.DBPath, "err", err)
	}
	defer database.Close()

	if err := db.SeedIfEmpty(ctx, database); err != nil {
		logger.Warnw("db seed", "err", err)
	}

	// Расписание и напоминания — внешние файлы; их отсутствие не валит бота,
	// соответствующие функции просто молчат.
	timetable, err := schedule.Load(cfg.SchedulePath)
	if err != nil {
		logger.Warnw("schedule load", "path", cfg.SchedulePath, "err", err)
	}
	rem, err := reminders.Load(cfg.RemindersPath)
	if err != nil {
		logger.Warnw("reminders load", "path", cfg.RemindersPath, "err", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatalw("bot api", "err", err)
	}
	logger.Infow("бот запущен", "username", api.Self.UserName, "version", version)

	bot := app.New(api, database, logger, cfg, timetable, rem)

	app.StartHTTP(ctx, cfg.HTTPAddr, database)

	notifyAt, err := jobs.NewDaily(cfg.NotifyAt)
	if err != nil {
		logger.Fatalw("NOTIFY_AT", "err", err)
	}
	remindAt, err := jobs.NewDaily(cfg.RemindAt)
	if err != nil {
		logger.Fatalw("REMIND_AT", "err", err)
	}
	runner := jobs.New(ctx)
	jobs.StartDailySchedule(runner, database, timetable, bot, notifyAt, cfg.Location, logger)
	jobs.StartDailyReminders(runner, database, rem, bot, remindAt, cfg.Location, logger)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			logger.Infow("остановка по сигналу")
			api.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			bot.HandleUpdate(ctx, upd)
		}
	}
}
