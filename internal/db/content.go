package db

import (
	"context"
	"database/sql"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

// ---- Новости ----

func AddNews(ctx context.Context, database *sql.DB, content string) (int64, error) {
	res, err := database.ExecContext(ctx, `INSERT INTO news (content) VALUES (?)`, content)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func DeleteNews(ctx context.Context, database *sql.DB, id int64) error {
	return deleteByID(ctx, database, "news", id)
}

// AllNews — новости, свежие первыми.
func AllNews(ctx context.Context, database *sql.DB) ([]models.NewsItem, error) {
	rows, err := database.QueryContext(ctx,
		`SELECT id, content, created_at FROM news ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.NewsItem
	for rows.Next() {
		var (
			n         models.NewsItem
			createdAt string
		)
		if err := rows.Scan(&n.ID, &n.Content, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt = parseSQLiteTime(createdAt)
		out = append(out, n)
	}
	return out, rows.Err()
}

// ---- FAQ ----

func AddFaq(ctx context.Context, database *sql.DB, question, answer string) (int64, error) {
	res, err := database.ExecContext(ctx,
		`INSERT INTO faq (question, answer) VALUES (?, ?)`, question, answer)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func DeleteFaq(ctx context.Context, database *sql.DB, id int64) error {
	return deleteByID(ctx, database, "faq", id)
}

func AllFaq(ctx context.Context, database *sql.DB) ([]models.FaqEntry, error) {
	rows, err := database.QueryContext(ctx, `SELECT id, question, answer FROM faq ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.FaqEntry
	for rows.Next() {
		var f models.FaqEntry
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ---- Ресурсы ----

func AddResource(ctx context.Context, database *sql.DB, name, url string) (int64, error) {
	res, err := database.ExecContext(ctx,
		`INSERT INTO resources (name, url) VALUES (?, ?)`, name, url)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func DeleteResource(ctx context.Context, database *sql.DB, id int64) error {
	return deleteByID(ctx, database, "resources", id)
}

func AllResources(ctx context.Context, database *sql.DB) ([]models.ResourceLink, error) {
	rows, err := database.QueryContext(ctx, `SELECT id, name, url FROM resources ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ResourceLink
	for rows.Next() {
		var r models.ResourceLink
		if err := rows.Scan(&r.ID, &r.Name, &r.URL); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// deleteByID удаляет запись и возвращает models.ErrNotFound, если её не было.
func deleteByID(ctx context.Context, database *sql.DB, table string, id int64) error {
	// table приходит только из обёрток этого файла.
	res, err := database.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
