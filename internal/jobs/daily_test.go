package jobs

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
}

func TestDailyDue(t *testing.T) {
	t.Run("not_before_time", func(t *testing.T) {
		d, err := NewDaily("08:00")
		if err != nil {
			t.Fatal(err)
		}
		if d.Due(at(7, 59)) {
			t.Fatal("не должно срабатывать до назначенного времени")
		}
		if !d.Due(at(8, 0)) {
			t.Fatal("должно срабатывать ровно в назначенное время")
		}
	})

	t.Run("fires_once_per_day", func(t *testing.T) {
		d, _ := NewDaily("08:00")
		if !d.Due(at(8, 0)) {
			t.Fatal("первое срабатывание дня потеряно")
		}
		if d.Due(at(8, 1)) || d.Due(at(23, 59)) {
			t.Fatal("повторное срабатывание в тот же день")
		}
		nextDay := at(8, 0).Add(24 * time.Hour)
		if !d.Due(nextDay) {
			t.Fatal("на следующий день должно сработать снова")
		}
	})

	t.Run("late_fire_same_day", func(t *testing.T) {
		// Процесс проснулся сильно позже назначенного времени: рассылка
		// всё равно уходит, но один раз.
		d, _ := NewDaily("08:00")
		if !d.Due(at(17, 30)) {
			t.Fatal("позднее срабатывание в тот же день должно пройти")
		}
		if d.Due(at(18, 0)) {
			t.Fatal("поздний день уже отработан")
		}
	})

	t.Run("bad_format_rejected", func(t *testing.T) {
		for _, bad := range []string{"", "8 часов", "25:00", "08:60"} {
			if _, err := NewDaily(bad); err == nil {
				t.Fatalf("формат %q должен отклоняться", bad)
			}
		}
	})
}
