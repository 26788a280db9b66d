// Package reminders читает reminders.json и собирает текст ежедневной
// рассылки: дедлайны на сегодня плюс одна мотивационная строка.
package reminders

import (
	"encoding/json"
	"math/rand"
	"os"
	"strings"
	"time"
)

type Deadline struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Message string `json:"message"`
}

// File — структура reminders.json. Ключи motivation — английские названия
// дней недели плюс запасной список "Any".
type File struct {
	Deadlines  []Deadline          `json:"deadlines"`
	Motivation map[string][]string `json:"motivation"`
}

// Load читает файл напоминаний. Отсутствие файла — не ошибка для запуска:
// вызывающий получает nil и молча отключает рассылку напоминаний.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// BuildMessage собирает текст рассылки на дату now. Пустая строка означает
// "сегодня отправлять нечего". pick выбирает индекс мотивационной строки
// (в боевом коде — rand.Intn), вынесен для детерминированных тестов.
func (f *File) BuildMessage(now time.Time, pick func(n int) int) string {
	if f == nil {
		return ""
	}
	today := now.Format("2006-01-02")

	var due []string
	for _, d := range f.Deadlines {
		if d.Date == today {
			due = append(due, "– "+d.Message)
		}
	}

	motivation := ""
	list := f.Motivation[now.Weekday().String()]
	if len(list) == 0 {
		list = f.Motivation["Any"]
	}
	if len(list) > 0 {
		motivation = list[pick(len(list))]
	}

	var b strings.Builder
	if len(due) > 0 {
		b.WriteString("📌 *Напоминания:*\n")
		b.WriteString(strings.Join(due, "\n"))
	}
	if motivation != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("💡 *Мотивация:* ")
		b.WriteString(motivation)
	}
	return b.String()
}

// Pick — выбор мотивационной строки по умолчанию.
func Pick(n int) int { return rand.Intn(n) }
