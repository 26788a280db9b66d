package session

import (
	"sync"
	"testing"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

func TestStoreFormLifecycle(t *testing.T) {
	s := NewStore()
	const chat = int64(100)

	if _, ok := s.Form(chat); ok {
		t.Fatal("у нового чата не должно быть формы")
	}

	f := s.StartForm(chat, models.RequestSpravka)
	if f.Step != StepName || f.Type != models.RequestSpravka {
		t.Fatalf("новая форма должна начинаться с ФИО: %+v", f)
	}

	f.Name = "Иванов"
	f.Step = StepGroup
	s.SaveForm(chat, f)

	got, ok := s.Form(chat)
	if !ok || got.Name != "Иванов" || got.Step != StepGroup {
		t.Fatalf("сохранённая форма не вернулась: %+v", got)
	}

	// Возвращается копия: мутация снаружи не трогает хранилище.
	got.Name = "Петров"
	again, _ := s.Form(chat)
	if again.Name != "Иванов" {
		t.Fatal("мутация копии протекла в хранилище")
	}

	s.Clear(chat)
	if _, ok := s.Form(chat); ok {
		t.Fatal("Clear должен забывать форму")
	}
}

func TestStartFormResetsEverything(t *testing.T) {
	s := NewStore()
	const chat = int64(7)

	f := s.StartForm(chat, models.RequestSpravka)
	f.Name = "Иванов"
	f.Step = StepGroup
	s.SaveForm(chat, f)

	// Новая заявка другого типа: старые поля не должны протечь.
	f2 := s.StartForm(chat, models.RequestHvost)
	if f2.Name != "" || f2.Group != "" || f2.Step != StepName {
		t.Fatalf("новая форма должна быть чистой: %+v", f2)
	}
	got, _ := s.Form(chat)
	if got.Type != models.RequestHvost || got.Name != "" {
		t.Fatalf("в хранилище осталось старое состояние: %+v", got)
	}
}

func TestPromptReplacesForm(t *testing.T) {
	s := NewStore()
	const chat = int64(1)

	s.StartForm(chat, models.RequestOtsrochka)
	s.SetPrompt(chat, Prompt{Kind: PromptAnswer, QuestionID: 42})

	if _, ok := s.Form(chat); ok {
		t.Fatal("промпт должен вытеснять форму")
	}
	p, ok := s.Prompt(chat)
	if !ok || p.Kind != PromptAnswer || p.QuestionID != 42 {
		t.Fatalf("промпт не вернулся: %+v", p)
	}

	s.StartForm(chat, models.RequestSpravka)
	if _, ok := s.Prompt(chat); ok {
		t.Fatal("форма должна вытеснять промпт")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chat int64) {
			defer wg.Done()
			s.StartForm(chat, models.RequestSpravka)
			if f, ok := s.Form(chat); ok {
				f.Name = "x"
				s.SaveForm(chat, f)
			}
			s.Clear(chat)
		}(int64(i % 5))
	}
	wg.Wait()
}
