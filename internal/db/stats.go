package db

import (
	"context"
	"database/sql"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

// GetStats собирает агрегаты для /stats одиночными COUNT-запросами.
func GetStats(ctx context.Context, database *sql.DB) (*models.Stats, error) {
	s := &models.Stats{}

	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM users`, &s.Users},
		{`SELECT COUNT(*) FROM requests`, &s.RequestsTotal},
		{`SELECT COUNT(*) FROM requests WHERE type = 'spravka'`, &s.Spravka},
		{`SELECT COUNT(*) FROM requests WHERE type = 'otsrochka'`, &s.Otsrochka},
		{`SELECT COUNT(*) FROM requests WHERE type = 'hvost'`, &s.Hvost},
		{`SELECT COUNT(*) FROM questions`, &s.QuestionsTotal},
		{`SELECT COUNT(*) FROM questions WHERE answered = 0`, &s.QuestionsUnanswered},
		{`SELECT COUNT(*) FROM news`, &s.News},
		{`SELECT COUNT(*) FROM faq`, &s.Faq},
		{`SELECT COUNT(*) FROM resources`, &s.Resources},
	}
	for _, c := range counts {
		if err := database.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// isEmpty — true, когда во всех таблицах ни одной записи (для первичного сева).
func isEmpty(ctx context.Context, database *sql.DB) (bool, error) {
	s, err := GetStats(ctx, database)
	if err != nil {
		return false, err
	}
	total := s.Users + s.RequestsTotal + s.QuestionsTotal + s.News + s.Faq + s.Resources
	return total == 0, nil
}
