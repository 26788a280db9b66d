package db_test

import (
	"errors"
	"testing"

	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
)

func TestNewsCRUD(t *testing.T) {
	ctx, database := openTestDB(t)

	id, err := db.AddNews(ctx, database, "Сессия переносится")
	if err != nil {
		t.Fatal(err)
	}
	list, err := db.AllNews(ctx, database)
	if err != nil || len(list) != 1 || list[0].Content != "Сессия переносится" {
		t.Fatalf("новость не вернулась: %+v err=%v", list, err)
	}

	if err := db.DeleteNews(ctx, database, id); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteNews(ctx, database, id); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("повторное удаление: ожидали ErrNotFound, получили %v", err)
	}
}

func TestFaqAndResources(t *testing.T) {
	ctx, database := openTestDB(t)

	fid, err := db.AddFaq(ctx, database, "Где деканат?", "Корпус 2, каб. 215.")
	if err != nil {
		t.Fatal(err)
	}
	rid, err := db.AddResource(ctx, database, "ЭИОС", "https://eios.example.edu")
	if err != nil {
		t.Fatal(err)
	}

	faq, err := db.AllFaq(ctx, database)
	if err != nil || len(faq) != 1 || faq[0].Question != "Где деканат?" {
		t.Fatalf("FAQ не вернулся: %+v err=%v", faq, err)
	}
	res, err := db.AllResources(ctx, database)
	if err != nil || len(res) != 1 || res[0].URL != "https://eios.example.edu" {
		t.Fatalf("ресурс не вернулся: %+v err=%v", res, err)
	}

	if err := db.DeleteFaq(ctx, database, fid); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteResource(ctx, database, rid); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteFaq(ctx, database, fid); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("удаление несуществующего FAQ: ожидали ErrNotFound, получили %v", err)
	}
}

func TestRequestsByUser(t *testing.T) {
	ctx, database := openTestDB(t)

	r := models.Request{
		UserID:  3,
		Type:    models.RequestSpravka,
		Name:    "Иванов Иван",
		Group:   "ПИ-21",
		Details: "По месту требования",
		Status:  models.StatusAccepted,
	}
	if _, err := db.InsertRequest(ctx, database, r); err != nil {
		t.Fatal(err)
	}
	r.Type = models.RequestHvost
	r.Details = "Физика"
	if _, err := db.InsertRequest(ctx, database, r); err != nil {
		t.Fatal(err)
	}

	mine, err := db.RequestsByUser(ctx, database, 3)
	if err != nil || len(mine) != 2 {
		t.Fatalf("ожидали 2 заявки пользователя: %+v err=%v", mine, err)
	}
	for _, req := range mine {
		if req.Status != models.StatusAccepted {
			t.Fatalf("новая заявка должна быть в статусе %q: %+v", models.StatusAccepted, req)
		}
	}

	other, err := db.RequestsByUser(ctx, database, 4)
	if err != nil || len(other) != 0 {
		t.Fatalf("чужие заявки протекли: %+v err=%v", other, err)
	}
}

func TestSeedAndStats(t *testing.T) {
	ctx, database := openTestDB(t)

	if err := db.SeedIfEmpty(ctx, database); err != nil {
		t.Fatal(err)
	}
	s, err := db.GetStats(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if s.Users == 0 || s.RequestsTotal == 0 || s.Faq == 0 || s.Resources == 0 || s.News == 0 {
		t.Fatalf("после посева статистика не должна быть нулевой: %+v", s)
	}
	if s.RequestsTotal != s.Spravka+s.Otsrochka+s.Hvost {
		t.Fatalf("сумма по типам не сходится с общим числом заявок: %+v", s)
	}
	if s.QuestionsUnanswered >= s.QuestionsTotal {
		t.Fatalf("в посеве есть отвеченный вопрос: %+v", s)
	}

	// Повторный посев не дублирует данные.
	before := s.Users
	if err := db.SeedIfEmpty(ctx, database); err != nil {
		t.Fatal(err)
	}
	s2, _ := db.GetStats(ctx, database)
	if s2.Users != before {
		t.Fatalf("повторный посев изменил данные: было %d, стало %d", before, s2.Users)
	}
}
