package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

func formatCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

func formatDealer(s game.Snapshot) string {
	if s.HoleHidden {
		return fmt.Sprintf("%s ?? (%d)", formatCards(s.VisibleDealer()), s.DealerValue)
	}
	return fmt.Sprintf("%s (%d)", formatCards(s.Dealer), s.DealerValue)
}

func formatTable(s game.Snapshot) string {
	var sb strings.Builder

	playerMark, splitMark := "", ""
	if s.HasSplit() && s.Phase == game.PhasePlayerActing {
		if s.Active == game.HandSplit {
			splitMark = " 👈"
		} else {
			playerMark = " 👈"
		}
	}

	fmt.Fprintf(&sb, "🃏 Dealer: %s\n", formatDealer(s))
	fmt.Fprintf(&sb, "🎴 You: %s (%d)%s", formatCards(s.Player), s.PlayerValue, playerMark)
	if s.HasSplit() {
		fmt.Fprintf(&sb, "\n✂️ Split: %s (%d)%s", formatCards(s.Split), s.SplitValue, splitMark)
	}
	return sb.String()
}

func formatGameStatus(s game.Snapshot) string {
	return fmt.Sprintf("💰 Bet: %d | Balance: %d\n\n%s", s.Bet, s.Bankroll, formatTable(s))
}

func formatGameEnd(s game.Snapshot) string {
	payout := 0
	for _, res := range s.Results {
		payout += res.Payout
	}

	msg := fmt.Sprintf("%s\n\n%s", formatTable(s), s.Outcome)
	if payout > 0 {
		msg += fmt.Sprintf("\n💰 Payout: +%d", payout)
	}
	msg += fmt.Sprintf("\n💵 Balance: %d", s.Bankroll)
	return msg
}

func errorText(err error) string {
	switch {
	case errors.Is(err, game.ErrNoFunds):
		return "💸 You have no money left. You lost everything!"
	case errors.Is(err, game.ErrInvalidBet):
		return "❌ Invalid bet amount!"
	case errors.Is(err, game.ErrInsufficientFunds):
		return "❌ Not enough balance for that"
	case errors.Is(err, game.ErrIllegalAction), errors.Is(err, game.ErrTableNotFound):
		return "❌ That move is not available right now"
	}
	return "❌ Error. Try again later."
}
