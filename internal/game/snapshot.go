package game

import (
	"slices"
)

type Action string

const (
	ActionDeal   Action = "deal"
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
	ActionSwitch Action = "switch"
)

// Snapshot is a read-only view of a table for rendering.
type Snapshot struct {
	RoundID     string       `json:"round_id,omitempty"`
	Phase       Phase        `json:"phase"`
	Player      []Card       `json:"player"`
	PlayerValue int          `json:"player_value"`
	Split       []Card       `json:"split,omitempty"`
	SplitValue  int          `json:"split_value,omitempty"`
	Dealer      []Card       `json:"dealer"`
	DealerValue int          `json:"dealer_value"`
	HoleHidden  bool         `json:"hole_hidden"`
	Bet         int          `json:"bet"`
	Bankroll    int          `json:"bankroll"`
	Active      HandID       `json:"active,omitempty"`
	Doubled     bool         `json:"doubled"`
	SwitchLock  bool         `json:"switch_locked"`
	Results     []HandResult `json:"results,omitempty"`
	Outcome     string       `json:"outcome,omitempty"`
}

func (s Snapshot) HasSplit() bool {
	return s.Split != nil
}

// VisibleDealer is the dealer hand as the player may see it.
func (s Snapshot) VisibleDealer() []Card {
	if s.HoleHidden && len(s.Dealer) > 1 {
		return s.Dealer[:1]
	}
	return s.Dealer
}

func (t *Table) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    PhaseAwaitingBet,
		Bankroll: t.bankroll,
	}

	r := t.round
	if r == nil {
		return s
	}

	s.RoundID = r.ID
	s.Phase = r.Phase
	s.Player = slices.Clone(r.Player.Cards)
	s.PlayerValue = r.Player.Value()
	if r.HasSplit() {
		s.Split = slices.Clone(r.Split.Cards)
		s.SplitValue = r.Split.Value()
	}
	s.Dealer = slices.Clone(r.Dealer.Cards)
	s.HoleHidden = !r.HoleRevealed
	s.DealerValue = CalculateScore(s.VisibleDealer())
	s.Bet = r.Bet
	s.Active = r.Active
	s.Doubled = r.Doubled
	s.SwitchLock = r.SwitchLocked
	s.Results = slices.Clone(r.Results)
	s.Outcome = r.Outcome
	return s
}

// LegalActions lists what the player may do next, in display order.
func LegalActions(s Snapshot) []Action {
	var out []Action
	if s.Bankroll > 0 {
		out = append(out, ActionDeal)
	}
	if s.Phase != PhasePlayerActing {
		return out
	}

	out = append(out, ActionHit, ActionStand)

	canCover := covers(s.Bankroll, s.Bet)
	if !s.Doubled && canCover {
		out = append(out, ActionDouble)
	}
	if !s.HasSplit() && canCover && len(s.Player) == 2 && s.Player[0].Rank == s.Player[1].Rank {
		out = append(out, ActionSplit)
	}
	if s.HasSplit() && !s.SwitchLock {
		out = append(out, ActionSwitch)
	}
	return out
}

func IsLegal(s Snapshot, a Action) bool {
	return slices.Contains(LegalActions(s), a)
}
