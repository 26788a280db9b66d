package db_test

import (
	"errors"
	"testing"

	"github.com/studhelp/telegram-university-bot/internal/db"
	"github.com/studhelp/telegram-university-bot/internal/models"
)

func TestQuestionsFlow(t *testing.T) {
	ctx, database := openTestDB(t)

	if err := db.EnsureUser(ctx, database, models.User{UserID: 10, FirstName: "Оля"}); err != nil {
		t.Fatal(err)
	}
	qid, err := db.AddQuestion(ctx, database, 10, "Когда пересдача?")
	if err != nil {
		t.Fatal(err)
	}

	open, err := db.UnansweredQuestions(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].ID != qid || open[0].FirstName != "Оля" {
		t.Fatalf("неотвеченный вопрос не вернулся: %+v", open)
	}

	userID, question, err := db.AnswerQuestion(ctx, database, qid, "В пятницу.")
	if err != nil {
		t.Fatal(err)
	}
	if userID != 10 || question != "Когда пересдача?" {
		t.Fatalf("ответ привязался не к тому вопросу: user=%d q=%q", userID, question)
	}

	// Повторное закрытие того же вопроса невозможно.
	if _, _, err := db.AnswerQuestion(ctx, database, qid, "Ещё раз."); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("повторный ответ: ожидали ErrNotFound, получили %v", err)
	}

	open, _ = db.UnansweredQuestions(ctx, database)
	if len(open) != 0 {
		t.Fatalf("закрытый вопрос остался в списке: %+v", open)
	}
	all, err := db.AllQuestions(ctx, database)
	if err != nil || len(all) != 1 || !all[0].Answered {
		t.Fatalf("в полном списке вопрос должен значиться отвеченным: %+v err=%v", all, err)
	}
}

func TestAnswerUnknownQuestion(t *testing.T) {
	ctx, database := openTestDB(t)
	if _, _, err := db.AnswerQuestion(ctx, database, 777, "текст"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("несуществующий вопрос: ожидали ErrNotFound, получили %v", err)
	}
}

func TestQuestionFromUnknownUser(t *testing.T) {
	// Вопрос может прийти раньше, чем пользователь попал в users.
	ctx, database := openTestDB(t)
	if _, err := db.AddQuestion(ctx, database, 55, "Аноним спрашивает"); err != nil {
		t.Fatal(err)
	}
	open, err := db.UnansweredQuestions(ctx, database)
	if err != nil || len(open) != 1 {
		t.Fatalf("вопрос без профиля должен сохраняться: %+v err=%v", open, err)
	}
	if open[0].FirstName != "" {
		t.Fatalf("у профиля-призрака не должно быть имени: %q", open[0].FirstName)
	}
}
