package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(ctx context.Context, chatID int64, defaultBet int) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := r.db.QueryRowContext(ctx, `
		SELECT wins, losses, pushes, games, last_bet
		FROM players WHERE chat_id = ?
	`, chatID).Scan(
		&player.Wins, &player.Losses, &player.Pushes,
		&player.Games, &player.LastBet,
	)

	if errors.Is(err, sql.ErrNoRows) {
		player.LastBet = defaultBet

		_, err = r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO players (chat_id, last_bet)
			VALUES (?, ?)
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

func (r *SQLiteRepository) Save(ctx context.Context, player *Player) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE players SET
			wins = ?, losses = ?, pushes = ?,
			games = ?, last_bet = ?, updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.Wins, player.Losses, player.Pushes,
		player.Games, player.LastBet, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) RecordRound(ctx context.Context, round Round) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rounds (id, chat_id, bet, payout, outcome)
		VALUES (?, ?, ?, ?, ?)
	`, round.ID, round.ChatID, round.Bet, round.Payout, round.Outcome)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTop(ctx context.Context, limit int) ([]Stats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id, wins, games, wins + losses + pushes
		FROM players
		WHERE games > 0
		ORDER BY wins DESC, games ASC
		LIMIT ?
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

// History returns the latest rounds of a chat, newest first.
func (r *SQLiteRepository) History(ctx context.Context, chatID int64, limit int) ([]Round, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, chat_id, bet, payout, outcome, played_at
		FROM rounds
		WHERE chat_id = ?
		ORDER BY played_at DESC, rowid DESC
		LIMIT ?
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
