package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	*pgxpool.Pool
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS players (
	chat_id BIGINT PRIMARY KEY,
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	pushes INTEGER NOT NULL DEFAULT 0,
	games INTEGER NOT NULL DEFAULT 0,
	last_bet INTEGER NOT NULL DEFAULT 100,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS rounds (
	id UUID PRIMARY KEY,
	chat_id BIGINT NOT NULL,
	bet INTEGER NOT NULL,
	payout INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	played_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_players_wins ON players(wins);
CREATE INDEX IF NOT EXISTS idx_rounds_chat ON rounds(chat_id);
`

func NewPostgres(ctx context.Context, dsn string) (*Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err = p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err = p.Exec(ctx, postgresSchema); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &Pool{p}, nil
}
