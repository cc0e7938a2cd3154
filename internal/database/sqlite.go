package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// Only play statistics are stored; bankrolls live with the table.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS players (
	chat_id INTEGER PRIMARY KEY,
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	pushes INTEGER NOT NULL DEFAULT 0,
	games INTEGER NOT NULL DEFAULT 0,
	last_bet INTEGER NOT NULL DEFAULT 100,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rounds (
	id TEXT PRIMARY KEY,
	chat_id INTEGER NOT NULL,
	bet INTEGER NOT NULL,
	payout INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	played_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_players_wins ON players(wins);
CREATE INDEX IF NOT EXISTS idx_rounds_chat ON rounds(chat_id);
`

// sqliteDSN adds a busy timeout and WAL journaling: updates of different
// chats write from their own goroutines.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_busy_timeout=5000&_journal_mode=WAL"
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err = db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}
