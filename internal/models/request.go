package models

import "time"

type RequestType string

const (
	RequestSpravka   RequestType = "spravka"   // справка
	RequestOtsrochka RequestType = "otsrochka" // отсрочка
	RequestHvost     RequestType = "hvost"     // пересдача
)

// RequestLabel — человекочитаемое название типа заявки.
func RequestLabel(t RequestType) string {
	switch t {
	case RequestSpravka:
		return "Справка"
	case RequestOtsrochka:
		return "Отсрочка"
	case RequestHvost:
		return "Пересдача"
	}
	return string(t)
}

// StatusAccepted — статус заявки при создании; дальше его меняет
// только внешний админский инструментарий.
const StatusAccepted = "Принята"

type Request struct {
	ID        int64
	UserID    int64
	Type      RequestType
	Name      string
	Group     string
	Details   string
	Status    string
	CreatedAt time.Time
}

type Question struct {
	ID         int64
	UserID     int64
	FirstName  string // подтягивается join'ом для списка админа
	Question   string
	AskedAt    time.Time
	Answered   bool
	Answer     *string
	AnsweredAt *time.Time
}
