package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Регистрирует драйвер "sqlite" (чистый Go).
	_ "modernc.org/sqlite"
)

// Open открывает (или создаёт) базу по пути path, применяет PRAGMA
// и накатывает миграции. База однописательная, пул ужимаем до одного
// соединения — конкурентные одиночные запросы сериализует сам sqlite.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)
	database.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := Migrate(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return database, nil
}

func applyPragmas(ctx context.Context, database *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := database.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
