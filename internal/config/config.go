package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BotToken      string
	AdminID       int64 // 0 — админ не настроен, привилегированные команды глухие
	DBPath        string
	SchedulePath  string
	RemindersPath string
	NotifyAt      string // HH:MM, рассылка расписания
	RemindAt      string // HH:MM, дедлайны и мотивация
	Location      *time.Location
	HTTPAddr      string
	LogLevel      string
	Env           string // dev|prod
	SentryDSN     string
}

func Load() (*Config, error) {
	tz := getenv("TZ", "Europe/Moscow")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	adminID, err := parseAdminID(os.Getenv("ADMIN_ID"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_ID: %w", err)
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN не задан")
	}

	cfg := &Config{
		BotToken:      token,
		AdminID:       adminID,
		DBPath:        getenv("DB_PATH", "./data/bot_data.sqlite"),
		SchedulePath:  getenv("SCHEDULE_PATH", "./schedule.xlsx"),
		RemindersPath: getenv("REMINDERS_PATH", "./reminders.json"),
		NotifyAt:      getenv("NOTIFY_AT", "08:00"),
		RemindAt:      getenv("REMIND_AT", "09:00"),
		Location:      loc,
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		Env:           getenv("ENV", "dev"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
	}
	if _, err := time.Parse("15:04", cfg.NotifyAt); err != nil {
		return nil, fmt.Errorf("NOTIFY_AT %q: %w", cfg.NotifyAt, err)
	}
	if _, err := time.Parse("15:04", cfg.RemindAt); err != nil {
		return nil, fmt.Errorf("REMIND_AT %q: %w", cfg.RemindAt, err)
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseAdminID(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", s, err)
	}
	return n, nil
}
