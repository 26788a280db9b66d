package db

import (
	"context"
	"database/sql"
)

// SeedIfEmpty заполняет базу примерными данными при самом первом запуске,
// когда все таблицы пусты. Повторные запуски ничего не трогают.
func SeedIfEmpty(ctx context.Context, database *sql.DB) error {
	empty, err := isEmpty(ctx, database)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	users := []struct {
		id                           int64
		first, last, username, group string
		subgroup                     int
	}{
		{1, "Иван", "Иванов", "ivanov", "ПИ-21", 1},
		{2, "Петр", "Петров", "petrov", "ПИ-22", 2},
		{3, "Николай", "Николаев", "nick", "ИК-19", 1},
		{4, "Сергей", "Сергеев", "sergey", "БИ-20", 2},
		{5, "Алексей", "Алексеев", "alex", "ФИ-18", 1},
	}
	for _, u := range users {
		if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO users (user_id, first_name, last_name, username, group_name, subgroup, notify, reminders)
VALUES (?, ?, ?, ?, ?, ?, 0, 0)`,
			u.id, u.first, u.last, u.username, u.group, u.subgroup); err != nil {
			return err
		}
	}

	requests := []struct {
		userID                    int64
		typ, name, group, details string
	}{
		{1, "spravka", "Иван Иванов", "ПИ-21", "для стипендии"},
		{2, "spravka", "Петр Петров", "ПИ-22", "для военкомата"},
		{3, "spravka", "Николай Николаев", "ИК-19", "для общежития"},
		{2, "otsrochka", "Петр Петров", "ПИ-22", "болезнь"},
		{4, "otsrochka", "Сергей Сергеев", "БИ-20", "семейные обстоятельства"},
		{5, "otsrochka", "Алексей Алексеев", "ФИ-18", "участие в конференции"},
		{1, "hvost", "Иван Иванов", "ПИ-21", "Математика"},
		{3, "hvost", "Николай Николаев", "ИК-19", "История"},
		{5, "hvost", "Алексей Алексеев", "ФИ-18", "Информатика"},
	}
	for _, r := range requests {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO requests (user_id, type, name, group_name, details, status)
VALUES (?, ?, ?, ?, ?, 'Принята')`,
			r.userID, r.typ, r.name, r.group, r.details); err != nil {
			return err
		}
	}

	faq := [][2]string{
		{"Как подать заявку на справку?", "Используйте команду /spravka и следуйте инструкциям."},
		{"Как включить напоминания о дедлайнах?", "Отправьте команду /reminders для включения или отключения напоминаний."},
		{"Что делать, если я пропустил экзамен по болезни?", "Вы можете подать заявку на пересдачу экзамена командой /hvost."},
	}
	for _, f := range faq {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO faq (question, answer) VALUES (?, ?)`, f[0], f[1]); err != nil {
			return err
		}
	}

	resources := [][2]string{
		{"📚 Электронная библиотека", "https://library.mgppu.ru"},
		{"🌐 Сайт МГППУ", "https://mgppu.ru"},
		{"🎓 Личный кабинет студента", "https://lk.mgppu.ru"},
	}
	for _, r := range resources {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO resources (name, url) VALUES (?, ?)`, r[0], r[1]); err != nil {
			return err
		}
	}

	news := []string{
		"Начало сессии перенесено на 10 июня.",
		"Прием заявок на стипендию открыт.",
		"Опубликовано новое расписание занятий.",
	}
	for _, n := range news {
		if _, err := tx.ExecContext(ctx, `INSERT INTO news (content) VALUES (?)`, n); err != nil {
			return err
		}
	}

	questions := []struct {
		userID int64
		text   string
	}{
		{1, "Когда начнется экзаменационная сессия?"},
		{2, "Где можно посмотреть расписание занятий?"},
		{3, "Как восстановить пароль от электронной почты?"},
	}
	var firstQID int64
	for i, q := range questions {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO questions (user_id, question) VALUES (?, ?)`, q.userID, q.text)
		if err != nil {
			return err
		}
		if i == 0 {
			firstQID, _ = res.LastInsertId()
		}
	}
	// Один вопрос сразу с ответом — чтобы в примере были оба состояния.
	if firstQID != 0 {
		if _, err := tx.ExecContext(ctx, `
UPDATE questions SET answered = 1, answer = ?, answered_at = datetime('now')
WHERE id = ?`,
			"Экзаменационная сессия начнется в следующем месяце.", firstQID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
