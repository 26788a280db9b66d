package db_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
)

func openTestDB(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("открытие тестовой базы: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return ctx, database
}

func TestEnsureAndGetUser(t *testing.T) {
	ctx, database := openTestDB(t)

	u := models.User{UserID: 42, FirstName: "Иван", LastName: "Иванов", Username: "ivan"}
	if err := db.EnsureUser(ctx, database, u); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetUser(ctx, database, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.FirstName != "Иван" || got.Group != nil || got.Subgroup != nil {
		t.Fatalf("новый пользователь должен быть без группы: %+v", got)
	}
	if got.Notify || got.Reminders {
		t.Fatal("рассылки по умолчанию выключены")
	}

	// Повторный заход обновляет имя, не трогая остальное.
	if err := db.SetGroup(ctx, database, 42, "ПИ-21"); err != nil {
		t.Fatal(err)
	}
	u.FirstName = "Иван-обновлённый"
	if err := db.EnsureUser(ctx, database, u); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetUser(ctx, database, 42)
	if got.FirstName != "Иван-обновлённый" {
		t.Fatalf("имя не обновилось: %q", got.FirstName)
	}
	if got.Group == nil || *got.Group != "ПИ-21" {
		t.Fatalf("группа потерялась при повторном заходе: %+v", got.Group)
	}

	if _, err := db.GetUser(ctx, database, 999); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("для незнакомого пользователя ожидали ErrNotFound, получили %v", err)
	}
}

func TestSetGroupResetsSubgroup(t *testing.T) {
	ctx, database := openTestDB(t)
	if err := db.EnsureUser(ctx, database, models.User{UserID: 1}); err != nil {
		t.Fatal(err)
	}
	if err := db.SetGroup(ctx, database, 1, "ПИ-21"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSubgroup(ctx, database, 1, 2); err != nil {
		t.Fatal(err)
	}

	if err := db.SetGroup(ctx, database, 1, "ЭК-11"); err != nil {
		t.Fatal(err)
	}
	got, _ := db.GetUser(ctx, database, 1)
	if got.Subgroup != nil {
		t.Fatalf("смена группы должна сбрасывать подгруппу, осталось %d", *got.Subgroup)
	}
}

func TestToggleFlags(t *testing.T) {
	ctx, database := openTestDB(t)
	if err := db.EnsureUser(ctx, database, models.User{UserID: 5}); err != nil {
		t.Fatal(err)
	}

	on, err := db.ToggleNotify(ctx, database, 5)
	if err != nil || !on {
		t.Fatalf("первое переключение должно включать: on=%v err=%v", on, err)
	}
	off, err := db.ToggleNotify(ctx, database, 5)
	if err != nil || off {
		t.Fatalf("второе переключение должно выключать: on=%v err=%v", off, err)
	}

	if _, err := db.ToggleReminders(ctx, database, 404); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("переключение у незнакомого пользователя: ожидали ErrNotFound, получили %v", err)
	}
}

func TestNotifyTargets(t *testing.T) {
	ctx, database := openTestDB(t)

	// 1 — подписан и с группой, 2 — подписан без группы, 3 — не подписан.
	for _, id := range []int64{1, 2, 3} {
		if err := db.EnsureUser(ctx, database, models.User{UserID: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.SetGroup(ctx, database, 1, "ПИ-21"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSubgroup(ctx, database, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := db.ToggleNotify(ctx, database, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := db.ToggleNotify(ctx, database, 2); err != nil {
		t.Fatal(err)
	}

	targets, err := db.NotifyTargets(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 1 {
		t.Fatalf("рассылку получает только подписанный с группой: %+v", targets)
	}
	if targets[0].UserID != 1 || targets[0].Group != "ПИ-21" || targets[0].Subgroup != 2 {
		t.Fatalf("цель рассылки прочитана неверно: %+v", targets[0])
	}

	ids, err := db.AllUserIDs(ctx, database)
	if err != nil || len(ids) != 3 {
		t.Fatalf("широковещательная рассылка охватывает всех: ids=%v err=%v", ids, err)
	}
}
