package app

import (
	"testing"

	"github.com/studhelp/telegram-university-bot/internal/models"
	"github.com/studhelp/telegram-university-bot/internal/session"
)

func TestAdvanceForm(t *testing.T) {
	t.Run("full_flow", func(t *testing.T) {
		f := session.Form{Type: models.RequestSpravka, Step: session.StepName}

		f, _, done, ok := advanceForm(f, "Иванов Иван Иванович")
		if !ok || done {
			t.Fatal("шаг ФИО должен приниматься и не завершать форму")
		}
		if f.Step != session.StepGroup || f.Name != "Иванов Иван Иванович" {
			t.Fatalf("после ФИО ожидали шаг группы, получили %+v", f)
		}

		f, _, done, ok = advanceForm(f, "ПИ-21")
		if !ok || done || f.Step != session.StepDetail || f.Group != "ПИ-21" {
			t.Fatalf("после группы ожидали шаг детали, получили %+v", f)
		}

		_, detail, done, ok := advanceForm(f, "По месту требования")
		if !ok || !done {
			t.Fatal("третий шаг должен завершать форму")
		}
		if detail != "По месту требования" {
			t.Fatalf("деталь потерялась: %q", detail)
		}
	})

	t.Run("empty_input_rejected_on_every_step", func(t *testing.T) {
		for _, step := range []session.FormStep{session.StepName, session.StepGroup, session.StepDetail} {
			f := session.Form{Type: models.RequestHvost, Step: step}
			for _, input := range []string{"", "   ", "\n\t"} {
				next, _, done, ok := advanceForm(f, input)
				if ok || done {
					t.Fatalf("шаг %d: пустой ввод %q не должен приниматься", step, input)
				}
				if next.Step != step {
					t.Fatalf("шаг %d: пустой ввод сдвинул форму на %d", step, next.Step)
				}
			}
		}
	})

	t.Run("input_trimmed", func(t *testing.T) {
		f := session.Form{Type: models.RequestOtsrochka, Step: session.StepName}
		f, _, _, _ = advanceForm(f, "  Петров Пётр  ")
		if f.Name != "Петров Пётр" {
			t.Fatalf("ввод должен обрезаться: %q", f.Name)
		}
	})
}

func TestFormFlowsCoverAllTypes(t *testing.T) {
	for _, rt := range []models.RequestType{models.RequestSpravka, models.RequestOtsrochka, models.RequestHvost} {
		flow, ok := formFlows[rt]
		if !ok {
			t.Fatalf("нет описания потока для типа %q", rt)
		}
		if flow.intro == "" || flow.detailPrompt == "" || flow.detailField == "" || flow.confirm == "" {
			t.Fatalf("поток %q заполнен не полностью: %+v", rt, flow)
		}
		f := session.Form{Type: rt, Step: session.StepName}
		if formPrompt(f) == "" {
			t.Fatalf("пустой промпт первого шага для %q", rt)
		}
	}
}

func TestFanOut(t *testing.T) {
	var delivered []int64
	send := func(chatID int64, text string) error {
		if chatID == 2 {
			return errStopped
		}
		delivered = append(delivered, chatID)
		return nil
	}
	n := FanOut([]int64{1, 2, 3}, "привет", send)
	if n != 2 {
		t.Fatalf("ожидали 2 успешные доставки, получили %d", n)
	}
	if len(delivered) != 2 || delivered[0] != 1 || delivered[1] != 3 {
		t.Fatalf("ошибка одной доставки не должна прерывать обход: %v", delivered)
	}
}

var errStopped = errForbidden("Forbidden: bot was blocked by the user")

type errForbidden string

func (e errForbidden) Error() string { return string(e) }
