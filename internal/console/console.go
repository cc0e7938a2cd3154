// Package console plays a table over a line based text stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

const help = `commands:
  deal [N]  place a bet of N (defaults to the last bet)
  hit | stand | double | split | switch
  quit`

type Console struct {
	table *game.Table
	out   io.Writer
	bet   int
}

func New(t *game.Table, out io.Writer, defaultBet int) *Console {
	return &Console{table: t, out: out, bet: defaultBet}
}

// Run reads commands until quit or end of input.
func (c *Console) Run(in io.Reader) error {
	fmt.Fprintf(c.out, "Blackjack. Balance: %d\n%s\n", c.table.Bankroll(), help)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(c.out)
			return sc.Err()
		}
		if !c.Exec(sc.Text()) {
			return nil
		}
	}
}

// Exec runs one command line and reports whether to keep going.
func (c *Console) Exec(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true
	}

	var (
		snap game.Snapshot
		err  error
	)
	switch cmd := fields[0]; cmd {
	case "quit", "exit", "q":
		fmt.Fprintf(c.out, "Final balance: %d\n", c.table.Bankroll())
		return false
	case "help", "?":
		fmt.Fprintln(c.out, help)
		return true
	case "deal", "bet":
		bet := c.bet
		if len(fields) > 1 {
			if bet, err = game.ParseBet(fields[1]); err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
				return true
			}
		}
		if snap, err = c.table.PlaceBet(bet); err == nil {
			c.bet = bet
		}
	case "h", "s", "d", "p", "w":
		snap, err = c.table.Do(shortcuts[cmd])
	default:
		snap, err = c.table.Do(game.Action(cmd))
	}

	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		if errors.Is(err, game.ErrNoFunds) {
			return false
		}
		return true
	}

	fmt.Fprintln(c.out, Render(snap))
	return true
}

var shortcuts = map[string]game.Action{
	"h": game.ActionHit,
	"s": game.ActionStand,
	"d": game.ActionDouble,
	"p": game.ActionSplit,
	"w": game.ActionSwitch,
}

func cards(cs []game.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

// Render draws the table as plain text.
func Render(s game.Snapshot) string {
	var sb strings.Builder

	dealer := cards(s.VisibleDealer())
	if s.HoleHidden {
		dealer += " ??"
	}
	fmt.Fprintf(&sb, "Dealer: %s (%d)\n", dealer, s.DealerValue)

	mark := func(h game.HandID) string {
		if s.HasSplit() && s.Phase == game.PhasePlayerActing && s.Active == h {
			return " <"
		}
		return ""
	}
	fmt.Fprintf(&sb, "You:    %s (%d)%s\n", cards(s.Player), s.PlayerValue, mark(game.HandPlayer))
	if s.HasSplit() {
		fmt.Fprintf(&sb, "Split:  %s (%d)%s\n", cards(s.Split), s.SplitValue, mark(game.HandSplit))
	}
	fmt.Fprintf(&sb, "Bet: %d  Balance: %d", s.Bet, s.Bankroll)

	if s.Phase == game.PhaseResolved {
		fmt.Fprintf(&sb, "\n%s", s.Outcome)
	}

	var legal []string
	for _, a := range game.LegalActions(s) {
		legal = append(legal, string(a))
	}
	fmt.Fprintf(&sb, "\n[%s]", strings.Join(legal, " "))
	return sb.String()
}
