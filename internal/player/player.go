package player

import (
	"context"
	"time"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

// Player is the persistent record of one chat's play. The bankroll itself
// is not stored: every session starts from the configured balance.
type Player struct {
	ChatID  int64
	Wins    int
	Losses  int
	Pushes  int
	Games   int
	LastBet int
}

type Stats struct {
	ChatID  int64
	Wins    int
	Games   int
	WinRate float64
}

// Round is a finished round as written to the history table.
type Round struct {
	ID       string
	ChatID   int64
	Bet      int
	Payout   int
	Outcome  string
	PlayedAt time.Time
}

type Repository interface {
	GetOrCreate(ctx context.Context, chatID int64, defaultBet int) (*Player, error)
	Save(ctx context.Context, player *Player) error
	RecordRound(ctx context.Context, round Round) error
	GetTop(ctx context.Context, limit int) ([]Stats, error)
	History(ctx context.Context, chatID int64, limit int) ([]Round, error)
}

// Record counts one game and one win, loss or push per settled hand.
func (p *Player) Record(results []game.HandResult) {
	if len(results) == 0 {
		return
	}
	p.Games++
	for _, res := range results {
		switch res.Result {
		case game.ResultPlayerWin:
			p.Wins++
		case game.ResultPush:
			p.Pushes++
		default:
			p.Losses++
		}
	}
}

func (p *Player) WinRate() float64 {
	hands := p.Wins + p.Losses + p.Pushes
	if hands == 0 {
		return 0
	}
	return float64(p.Wins) / float64(hands) * 100
}

// RoundFromSnapshot builds the history row for a resolved round.
func RoundFromSnapshot(chatID int64, s game.Snapshot) Round {
	payout := 0
	for _, res := range s.Results {
		payout += res.Payout
	}
	return Round{
		ID:      s.RoundID,
		ChatID:  chatID,
		Bet:     s.Bet,
		Payout:  payout,
		Outcome: s.Outcome,
	}
}
