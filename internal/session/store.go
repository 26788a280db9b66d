// Package session хранит переходное состояние диалога per-чат: незавершённую
// заявку пользователя или ожидаемый ввод админа. Состояние живёт только в
// памяти; новый сценарий молча перетирает незаконченный (last-writer-wins).
package session

import (
	"sync"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

type FormStep int

const (
	StepName FormStep = iota + 1
	StepGroup
	StepDetail
)

// Form — частично заполненная заявка одного из трёх типов.
type Form struct {
	Type  models.RequestType
	Step  FormStep
	Name  string
	Group string
}

type PromptKind int

const (
	PromptNews PromptKind = iota + 1 // /addnews без аргумента
	PromptAnons                      // /anons без аргумента
	PromptFaqQuestion
	PromptFaqAnswer
	PromptResourceName
	PromptResourceURL
	PromptAnswer // /answer <id> без текста
)

// Prompt — ожидание следующего текстового сообщения от админа.
type Prompt struct {
	Kind PromptKind
	// накопленные промежуточные значения
	QuestionID   int64
	FaqQuestion  string
	ResourceName string
}

// state — размеченное объединение: в один момент у чата есть либо форма,
// либо админский промпт, либо ничего.
type state struct {
	form   *Form
	prompt *Prompt
}

type Store struct {
	mu sync.RWMutex
	m  map[int64]state
}

func NewStore() *Store {
	return &Store{m: make(map[int64]state)}
}

// StartForm заводит новую форму, безусловно сбрасывая всё прежнее состояние
// чата: поля незаконченной заявки другого типа не протекают в новую.
func (s *Store) StartForm(chatID int64, t models.RequestType) Form {
	f := Form{Type: t, Step: StepName}
	s.mu.Lock()
	s.m[chatID] = state{form: &f}
	s.mu.Unlock()
	return f
}

// Form возвращает копию незавершённой формы чата, ok=false — формы нет.
func (s *Store) Form(chatID int64) (Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.m[chatID]
	if st.form == nil {
		return Form{}, false
	}
	return *st.form, true
}

// SaveForm перезаписывает форму чата продвинутым состоянием.
func (s *Store) SaveForm(chatID int64, f Form) {
	s.mu.Lock()
	s.m[chatID] = state{form: &f}
	s.mu.Unlock()
}

// SetPrompt переводит чат в режим ожидания админского ввода.
func (s *Store) SetPrompt(chatID int64, p Prompt) {
	s.mu.Lock()
	s.m[chatID] = state{prompt: &p}
	s.mu.Unlock()
}

func (s *Store) Prompt(chatID int64) (Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.m[chatID]
	if st.prompt == nil {
		return Prompt{}, false
	}
	return *st.prompt, true
}

// Clear забывает всё состояние чата.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	delete(s.m, chatID)
	s.mu.Unlock()
}
