package tg

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/studhelp/telegram-university-bot/internal/observability"
)

// Системными считаем 5xx, 429 и таймауты. Телеграмовские валидации
// (Bad Request, битая разметка, chat not found) в Sentry не шлём.
func isSystemErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	if strings.Contains(s, "429") || strings.Contains(s, "502") || strings.Contains(s, "503") || strings.Contains(s, "timeout") {
		return true
	}
	return false
}

func isParseErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "can't parse entities")
}

func Send(bot *tgbotapi.BotAPI, msg tgbotapi.Chattable) (tgbotapi.Message, error) {
	m, err := bot.Send(msg)
	if isSystemErr(err) {
		observability.CaptureErr(err)
	}
	return m, err
}

func Request(bot *tgbotapi.BotAPI, req tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	r, err := bot.Request(req)
	if isSystemErr(err) {
		observability.CaptureErr(err)
	}
	return r, err
}

// SendMarkdown отправляет текст с Markdown-разметкой. Если Telegram не смог
// разобрать сущности, сообщение уходит повторно как обычный текст —
// кривая разметка не должна терять доставку.
func SendMarkdown(bot *tgbotapi.BotAPI, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := Send(bot, msg)
	if isParseErr(err) {
		_, err = Send(bot, tgbotapi.NewMessage(chatID, text))
	}
	return err
}

// SendPlain отправляет текст без разметки.
func SendPlain(bot *tgbotapi.BotAPI, chatID int64, text string) error {
	_, err := Send(bot, tgbotapi.NewMessage(chatID, text))
	return err
}
