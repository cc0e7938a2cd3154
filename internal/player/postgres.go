package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) GetOrCreate(ctx context.Context, chatID int64, defaultBet int) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := r.pool.QueryRow(ctx, `
		SELECT wins, losses, pushes, games, last_bet
		FROM players WHERE chat_id = $1
	`, chatID).Scan(
		&player.Wins, &player.Losses, &player.Pushes,
		&player.Games, &player.LastBet,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		player.LastBet = defaultBet

		_, err = r.pool.Exec(ctx, `
			INSERT INTO players (chat_id, last_bet)
			VALUES ($1, $2)
			ON CONFLICT (chat_id) DO NOTHING
		`, chatID, player.LastBet)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *PostgresRepository) Save(ctx context.Context, player *Player) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE players SET
			wins = $1, losses = $2, pushes = $3,
			games = $4, last_bet = $5, updated_at = now()
		WHERE chat_id = $6
	`, player.Wins, player.Losses, player.Pushes,
		player.Games, player.LastBet, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordRound(ctx context.Context, round Round) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO rounds (id, chat_id, bet, payout, outcome)
		VALUES ($1, $2, $3, $4, $5)
	`, round.ID, round.ChatID, round.Bet, round.Payout, round.Outcome)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetTop(ctx context.Context, limit int) ([]Stats, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT chat_id, wins, games, wins + losses + pushes
		FROM players
		WHERE games > 0
		ORDER BY wins DESC, games ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		var hands int
		if err := rows.Scan(&s.ChatID, &s.Wins, &s.Games, &hands); err != nil {
			return nil, err
		}
		if hands > 0 {
			s.WinRate = float64(s.Wins) / float64(hands) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func (r *PostgresRepository) History(ctx context.Context, chatID int64, limit int) ([]Round, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, chat_id, bet, payout, outcome, played_at
		FROM rounds
		WHERE chat_id = $1
		ORDER BY played_at DESC
		LIMIT $2
	`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.ID, &rd.ChatID, &rd.Bet, &rd.Payout, &rd.Outcome, &rd.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}
