package models

import "time"

type NewsItem struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}

type FaqEntry struct {
	ID       int64
	Question string
	Answer   string
}

type ResourceLink struct {
	ID   int64
	Name string
	URL  string
}

// Stats — агрегаты для /stats.
type Stats struct {
	Users               int
	RequestsTotal       int
	Spravka             int
	Otsrochka           int
	Hvost               int
	QuestionsTotal      int
	QuestionsUnanswered int
	News                int
	Faq                 int
	Resources           int
}
