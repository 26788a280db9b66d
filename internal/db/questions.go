package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

// sqlite CURRENT_TIMESTAMP пишет в таком виде (UTC).
const sqliteTimeLayout = "2006-01-02 15:04:05"

func parseSQLiteTime(s string) time.Time {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func AddQuestion(ctx context.Context, database *sql.DB, userID int64, text string) (int64, error) {
	res, err := database.ExecContext(ctx,
		`INSERT INTO questions (user_id, question) VALUES (?, ?)`, userID, text)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UnansweredQuestions — открытые вопросы с именем автора для админа.
func UnansweredQuestions(ctx context.Context, database *sql.DB) ([]models.Question, error) {
	rows, err := database.QueryContext(ctx, `
SELECT q.id, q.user_id, COALESCE(u.first_name, ''), q.question, q.asked_at
FROM questions q LEFT JOIN users u ON q.user_id = u.user_id
WHERE q.answered = 0 ORDER BY q.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		var (
			q       models.Question
			askedAt string
		)
		if err := rows.Scan(&q.ID, &q.UserID, &q.FirstName, &q.Question, &askedAt); err != nil {
			return nil, err
		}
		q.AskedAt = parseSQLiteTime(askedAt)
		out = append(out, q)
	}
	return out, rows.Err()
}

// AllQuestions — все вопросы для /list questions.
func AllQuestions(ctx context.Context, database *sql.DB) ([]models.Question, error) {
	rows, err := database.QueryContext(ctx,
		`SELECT id, user_id, question, answered FROM questions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		var (
			q        models.Question
			answered int
		)
		if err := rows.Scan(&q.ID, &q.UserID, &q.Question, &answered); err != nil {
			return nil, err
		}
		q.Answered = answered == 1
		out = append(out, q)
	}
	return out, rows.Err()
}

// AnswerQuestion атомарно закрывает вопрос: срабатывает только если он ещё
// не отвечен, иначе models.ErrNotFound. Возвращает автора и текст вопроса
// для доставки ответа.
func AnswerQuestion(ctx context.Context, database *sql.DB, qid int64, answer string) (int64, string, error) {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback() }()

	var (
		userID   int64
		question string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, question FROM questions WHERE id = ? AND answered = 0`, qid).
		Scan(&userID, &question)
	if err == sql.ErrNoRows {
		return 0, "", models.ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}

	if _, err := tx.ExecContext(ctx, `
UPDATE questions SET answered = 1, answer = ?, answered_at = datetime('now')
WHERE id = ?`, answer, qid); err != nil {
		return 0, "", err
	}
	if err := tx.Commit(); err != nil {
		return 0, "", err
	}
	return userID, question, nil
}
