package reminders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Понедельник, 2026-09-07.
var monday = time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

func first(n int) int { return 0 }

func TestBuildMessage(t *testing.T) {
	f := &File{
		Deadlines: []Deadline{
			{Date: "2026-09-07", Message: "Сдать курсовую"},
			{Date: "2026-09-08", Message: "Пересдача по физике"},
		},
		Motivation: map[string][]string{
			"Monday": {"Начни неделю с главного."},
			"Any":    {"Просто сделай это."},
		},
	}

	t.Run("deadline_and_weekday_motivation", func(t *testing.T) {
		got := f.BuildMessage(monday, first)
		if !strings.Contains(got, "– Сдать курсовую") {
			t.Fatalf("нет дедлайна на сегодня: %q", got)
		}
		if strings.Contains(got, "Пересдача по физике") {
			t.Fatalf("дедлайн другого дня попал в рассылку: %q", got)
		}
		if !strings.Contains(got, "💡 *Мотивация:* Начни неделю с главного.") {
			t.Fatalf("нет мотивации понедельника: %q", got)
		}
	})

	t.Run("any_fallback", func(t *testing.T) {
		tuesday := monday.Add(24 * time.Hour)
		got := f.BuildMessage(tuesday, first)
		if !strings.Contains(got, "Просто сделай это.") {
			t.Fatalf("нет запасной мотивации Any: %q", got)
		}
	})

	t.Run("empty_day_gives_empty_message", func(t *testing.T) {
		empty := &File{}
		if got := empty.BuildMessage(monday, first); got != "" {
			t.Fatalf("пустой файл должен давать пустую рассылку, получили %q", got)
		}
	})

	t.Run("nil_file_is_safe", func(t *testing.T) {
		var nilFile *File
		if got := nilFile.BuildMessage(monday, first); got != "" {
			t.Fatalf("nil-файл должен давать пустую рассылку, получили %q", got)
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	raw := `{
  "deadlines": [{"date": "2026-09-07", "message": "Сдать курсовую"}],
  "motivation": {"Any": ["Вперёд!"]}
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("загрузка не удалась: %v", err)
	}
	if len(f.Deadlines) != 1 || f.Deadlines[0].Message != "Сдать курсовую" {
		t.Fatalf("дедлайны прочитаны неверно: %+v", f.Deadlines)
	}
	if got := f.BuildMessage(monday, first); !strings.Contains(got, "Вперёд!") {
		t.Fatalf("мотивация не попала в рассылку: %q", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "нет.json")); err == nil {
		t.Fatal("ожидали ошибку для отсутствующего файла")
	}
}
