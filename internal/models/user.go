package models

import "errors"

// ErrNotFound возвращается слоем БД, когда запись отсутствует.
var ErrNotFound = errors.New("not found")

type User struct {
	UserID    int64
	FirstName string
	LastName  string
	Username  string
	Group     *string // код учебной группы, NULL пока не задан
	Subgroup  *int    // 1 или 2; NULL — подгруппа не выбрана
	Notify    bool    // ежедневная рассылка расписания
	Reminders bool    // дедлайны и мотивация
}

// NotifyTarget — срез пользователя для рассылки расписания.
type NotifyTarget struct {
	UserID   int64
	Group    string
	Subgroup int // 0, если подгруппа не выбрана
}
