package game

import (
	"fmt"
	"strings"
)

type Phase string

const (
	PhaseAwaitingBet   Phase = "awaiting_bet"
	PhasePlayerActing  Phase = "player_acting"
	PhaseDealerPlaying Phase = "dealer_playing"
	PhaseResolved      Phase = "resolved"
)

// HandID selects one of the player's hands.
type HandID string

const (
	HandPlayer HandID = "player"
	HandSplit  HandID = "split"
)

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultPush
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "player_win"
	case ResultDealerWin:
		return "dealer_win"
	case ResultPush:
		return "push"
	}
	return "none"
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player_win":
		*r = ResultPlayerWin
	case "dealer_win":
		*r = ResultDealerWin
	case "push":
		*r = ResultPush
	case "none":
		*r = ResultNone
	default:
		return fmt.Errorf("unknown result %q", text)
	}
	return nil
}

// HandResult is the settlement of one player hand against the dealer.
type HandResult struct {
	Hand   HandID `json:"hand"`
	Result Result `json:"result"`
	Value  int    `json:"value"`
	Payout int    `json:"payout"`
}

// Round holds everything about one betting round. It is created by
// Table.PlaceBet and replaced by the next one.
type Round struct {
	ID           string       `json:"id"`
	Phase        Phase        `json:"phase"`
	Deck         *Deck        `json:"deck"`
	Player       *Hand        `json:"player"`
	Split        *Hand        `json:"split,omitempty"`
	Dealer       *Hand        `json:"dealer"`
	Bet          int          `json:"bet"`
	Doubled      bool         `json:"doubled"`
	Active       HandID       `json:"active"`
	HoleRevealed bool         `json:"hole_revealed"`
	SwitchLocked bool         `json:"switch_locked"`
	Results      []HandResult `json:"results,omitempty"`
	Payout       int          `json:"payout"`
	Outcome      string       `json:"outcome,omitempty"`
}

func (r *Round) HasSplit() bool {
	return r.Split != nil
}

// ActiveHand is the hand receiving player actions.
func (r *Round) ActiveHand() *Hand {
	if r.Active == HandSplit && r.Split != nil {
		return r.Split
	}
	return r.Player
}

func (r *Round) clone() *Round {
	if r == nil {
		return nil
	}
	c := *r
	c.Deck = r.Deck.clone()
	c.Player = r.Player.clone()
	c.Split = r.Split.clone()
	c.Dealer = r.Dealer.clone()
	c.Results = append([]HandResult(nil), r.Results...)
	return &c
}

// settle compares one hand with the final dealer value. Order matters: a
// busted hand loses even when the dealer busts too.
func settle(id HandID, h *Hand, dealerValue, bet int) HandResult {
	res := HandResult{Hand: id, Value: h.Value()}

	switch {
	case res.Value > Blackjack:
		res.Result = ResultDealerWin
	case dealerValue > Blackjack:
		res.Result, res.Payout = ResultPlayerWin, bet*2
	case res.Value == dealerValue:
		res.Result, res.Payout = ResultPush, bet
	case res.Value > dealerValue:
		res.Result, res.Payout = ResultPlayerWin, bet*2
	default:
		res.Result = ResultDealerWin
	}
	return res
}

func outcomeMessage(results []HandResult) string {
	lines := make([]string, 0, len(results))
	for _, res := range results {
		if res.Hand == HandSplit {
			switch res.Result {
			case ResultPlayerWin:
				lines = append(lines, "Player wins on split hand!")
			case ResultPush:
				lines = append(lines, "Push on split hand!")
			default:
				lines = append(lines, "Dealer wins on split hand!")
			}
			continue
		}

		switch res.Result {
		case ResultPlayerWin:
			lines = append(lines, "Player wins!")
		case ResultPush:
			lines = append(lines, "Push! It's a tie.")
		default:
			lines = append(lines, "Dealer wins!")
		}
	}
	return strings.Join(lines, "\n")
}
