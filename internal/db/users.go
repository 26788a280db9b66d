package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studhelp/telegram-university-bot/internal/models"
)

// EnsureUser добавляет пользователя при первом обращении и обновляет
// имя/username при каждом (они могут меняться).
func EnsureUser(ctx context.Context, database *sql.DB, u models.User) error {
	_, err := database.ExecContext(ctx, `
INSERT INTO users (user_id, first_name, last_name, username, notify, reminders)
VALUES (?, ?, ?, ?, 0, 0)
ON CONFLICT(user_id) DO UPDATE SET
    first_name = excluded.first_name,
    last_name  = excluded.last_name,
    username   = excluded.username`,
		u.UserID, u.FirstName, u.LastName, u.Username)
	return err
}

func GetUser(ctx context.Context, database *sql.DB, userID int64) (*models.User, error) {
	row := database.QueryRowContext(ctx, `
SELECT user_id, first_name, last_name, username, group_name, subgroup, notify, reminders
FROM users WHERE user_id = ?`, userID)

	var (
		u        models.User
		group    sql.NullString
		subgroup sql.NullInt64
		notify   int
		remind   int
	)
	err := row.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Username, &group, &subgroup, &notify, &remind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if group.Valid {
		g := group.String
		u.Group = &g
	}
	if subgroup.Valid {
		s := int(subgroup.Int64)
		u.Subgroup = &s
	}
	u.Notify = notify == 1
	u.Reminders = remind == 1
	return &u, nil
}

// SetGroup устанавливает группу и сбрасывает подгруппу: старая подгруппа
// для новой группы смысла не имеет.
func SetGroup(ctx context.Context, database *sql.DB, userID int64, group string) error {
	_, err := database.ExecContext(ctx,
		`UPDATE users SET group_name = ?, subgroup = NULL WHERE user_id = ?`, group, userID)
	return err
}

func SetSubgroup(ctx context.Context, database *sql.DB, userID int64, subgroup int) error {
	_, err := database.ExecContext(ctx,
		`UPDATE users SET subgroup = ? WHERE user_id = ?`, subgroup, userID)
	return err
}

// ToggleNotify переключает флаг рассылки расписания и возвращает новое состояние.
func ToggleNotify(ctx context.Context, database *sql.DB, userID int64) (bool, error) {
	return toggleFlag(ctx, database, userID, "notify")
}

// ToggleReminders переключает флаг учебных напоминаний и возвращает новое состояние.
func ToggleReminders(ctx context.Context, database *sql.DB, userID int64) (bool, error) {
	return toggleFlag(ctx, database, userID, "reminders")
}

func toggleFlag(ctx context.Context, database *sql.DB, userID int64, column string) (bool, error) {
	// column приходит только из двух обёрток выше, инъекция исключена.
	var current sql.NullInt64
	err := database.QueryRowContext(ctx,
		`SELECT `+column+` FROM users WHERE user_id = ?`, userID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return false, models.ErrNotFound
	}
	if err != nil {
		return false, err
	}
	newState := 1
	if current.Valid && current.Int64 == 1 {
		newState = 0
	}
	if _, err := database.ExecContext(ctx,
		`UPDATE users SET `+column+` = ? WHERE user_id = ?`, newState, userID); err != nil {
		return false, err
	}
	return newState == 1, nil
}

// AllUserIDs — все известные пользователи, для широковещательной рассылки.
func AllUserIDs(ctx context.Context, database *sql.DB) ([]int64, error) {
	rows, err := database.QueryContext(ctx, `SELECT user_id FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// NotifyTargets — пользователи с включённой рассылкой расписания и заданной группой.
func NotifyTargets(ctx context.Context, database *sql.DB) ([]models.NotifyTarget, error) {
	rows, err := database.QueryContext(ctx, `
SELECT user_id, group_name, subgroup
FROM users WHERE notify = 1 AND group_name IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []models.NotifyTarget
	for rows.Next() {
		var (
			t        models.NotifyTarget
			subgroup sql.NullInt64
		)
		if err := rows.Scan(&t.UserID, &t.Group, &subgroup); err != nil {
			return nil, err
		}
		if subgroup.Valid {
			t.Subgroup = int(subgroup.Int64)
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// ReminderTargets — пользователи с включёнными учебными напоминаниями.
func ReminderTargets(ctx context.Context, database *sql.DB) ([]int64, error) {
	rows, err := database.QueryContext(ctx, `SELECT user_id FROM users WHERE reminders = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
