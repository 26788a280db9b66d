package db

import (
	"context"
	"database/sql"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

func InsertRequest(ctx context.Context, database *sql.DB, r models.Request) (int64, error) {
	res, err := database.ExecContext(ctx, `
INSERT INTO requests (user_id, type, name, group_name, details, status)
VALUES (?, ?, ?, ?, ?, ?)`,
		r.UserID, string(r.Type), r.Name, r.Group, r.Details, r.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RequestsByUser — заявки пользователя для /status, в порядке создания.
func RequestsByUser(ctx context.Context, database *sql.DB, userID int64) ([]models.Request, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, user_id, type, name, group_name, details, status
FROM requests WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Request
	for rows.Next() {
		var (
			r   models.Request
			typ string
		)
		if err := rows.Scan(&r.ID, &r.UserID, &typ, &r.Name, &r.Group, &r.Details, &r.Status); err != nil {
			return nil, err
		}
		r.Type = models.RequestType(typ)
		out = append(out, r)
	}
	return out, rows.Err()
}
