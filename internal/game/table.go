package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const DealerStandsOn = 17

// MaxBankroll is the house limit. Larger starting bankrolls are lowered to it
// and winnings beyond it are not credited.
const MaxBankroll = math.MaxInt >> 10

// Table is one player's seat against the dealer: a bankroll that survives
// rounds plus the current round. It is not safe for concurrent use; see Manager.
type Table struct {
	bankroll int
	round    *Round

	newDeck func() *Deck
	newID   func() string
}

type Option func(*Table)

// WithDeckFactory replaces the shuffled deck each round starts with.
func WithDeckFactory(f func() *Deck) Option {
	return func(t *Table) {
		t.newDeck = f
	}
}

func WithIDGenerator(f func() string) Option {
	return func(t *Table) {
		t.newID = f
	}
}

func NewTable(bankroll int, opts ...Option) *Table {
	t := &Table{
		bankroll: min(bankroll, MaxBankroll),
		newDeck:  NewDeck,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) Bankroll() int {
	return t.bankroll
}

// Round returns a copy of the current round, or nil before the first bet.
func (t *Table) Round() *Round {
	return t.round.clone()
}

// PlaceBet starts a new round, discarding any round in progress.
func (t *Table) PlaceBet(amount int) (Snapshot, error) {
	if t.bankroll <= 0 {
		return t.Snapshot(), ErrNoFunds
	}
	if amount <= 0 || amount > t.bankroll {
		return t.Snapshot(), fmt.Errorf("%w: %d with bankroll %d", ErrInvalidBet, amount, t.bankroll)
	}

	r := &Round{
		ID:     t.newID(),
		Phase:  PhasePlayerActing,
		Deck:   t.newDeck(),
		Player: NewHand(),
		Dealer: NewHand(),
		Bet:    amount,
		Active: HandPlayer,
	}

	for i := 0; i < 2; i++ {
		for _, h := range []*Hand{r.Player, r.Dealer} {
			card, err := r.Deck.Deal()
			if err != nil {
				return t.Snapshot(), fmt.Errorf("initial deal: %w", err)
			}
			h.AddCard(card)
		}
	}

	t.bankroll -= amount
	t.round = r
	return t.Snapshot(), nil
}

func (t *Table) Hit() (Snapshot, error) {
	return t.apply("hit", t.hit)
}

func (t *Table) Stand() (Snapshot, error) {
	return t.apply("stand", t.stand)
}

func (t *Table) Double() (Snapshot, error) {
	return t.apply("double", t.double)
}

func (t *Table) Split() (Snapshot, error) {
	return t.apply("split", t.split)
}

func (t *Table) SwitchHand() (Snapshot, error) {
	return t.apply("switch", t.switchHand)
}

// Do runs the named action. Deal needs a bet and goes through PlaceBet.
func (t *Table) Do(a Action) (Snapshot, error) {
	switch a {
	case ActionHit:
		return t.Hit()
	case ActionStand:
		return t.Stand()
	case ActionDouble:
		return t.Double()
	case ActionSplit:
		return t.Split()
	case ActionSwitch:
		return t.SwitchHand()
	}
	return t.Snapshot(), fmt.Errorf("%w: unknown action %q", ErrIllegalAction, a)
}

// apply runs an in-round action and rolls the table back if it fails.
func (t *Table) apply(name string, fn func() error) (Snapshot, error) {
	if t.round == nil || t.round.Phase != PhasePlayerActing {
		return t.Snapshot(), fmt.Errorf("%w: %s outside of player turn", ErrIllegalAction, name)
	}

	prevRound, prevBankroll := t.round.clone(), t.bankroll
	if err := fn(); err != nil {
		t.round, t.bankroll = prevRound, prevBankroll
		return t.Snapshot(), fmt.Errorf("%s: %w", name, err)
	}
	return t.Snapshot(), nil
}

func (t *Table) hit() error {
	hand := t.round.ActiveHand()

	card, err := t.round.Deck.Deal()
	if err != nil {
		return err
	}
	hand.AddCard(card)

	if IsBust(hand.Cards) {
		t.resolve()
	}
	return nil
}

func (t *Table) stand() error {
	r := t.round
	if r.HasSplit() && r.Active == HandPlayer {
		r.Active = HandSplit
		r.SwitchLocked = true
		return nil
	}

	r.HoleRevealed = true
	r.Phase = PhaseDealerPlaying
	if err := t.dealerPlay(); err != nil {
		return err
	}
	t.resolve()
	return nil
}

func (t *Table) double() error {
	r := t.round
	if r.Doubled {
		return fmt.Errorf("%w: bet already doubled", ErrIllegalAction)
	}
	if !covers(t.bankroll, r.Bet) {
		return fmt.Errorf("%w: doubling %d, bankroll %d", ErrInsufficientFunds, r.Bet, t.bankroll)
	}

	t.bankroll -= r.Bet
	r.Bet *= 2
	r.Doubled = true

	hand := r.ActiveHand()
	card, err := r.Deck.Deal()
	if err != nil {
		return err
	}
	hand.AddCard(card)

	if IsBust(hand.Cards) {
		t.resolve()
		return nil
	}
	return t.stand()
}

func (t *Table) split() error {
	r := t.round
	if r.HasSplit() {
		return fmt.Errorf("%w: hand already split", ErrIllegalAction)
	}
	if !r.Player.CanSplit() {
		return fmt.Errorf("%w: split needs a pair", ErrIllegalAction)
	}
	if !covers(t.bankroll, r.Bet) {
		return fmt.Errorf("%w: splitting %d, bankroll %d", ErrInsufficientFunds, r.Bet, t.bankroll)
	}

	t.bankroll -= r.Bet

	second := r.Player.Cards[1]
	r.Player.Cards = r.Player.Cards[:1]
	r.Split = NewHand(second)

	for _, h := range []*Hand{r.Player, r.Split} {
		card, err := r.Deck.Deal()
		if err != nil {
			return err
		}
		h.AddCard(card)
	}
	return nil
}

func (t *Table) switchHand() error {
	r := t.round
	if !r.HasSplit() {
		return fmt.Errorf("%w: no split hand", ErrIllegalAction)
	}
	if r.SwitchLocked {
		return fmt.Errorf("%w: switching is locked after stand", ErrIllegalAction)
	}

	if r.Active == HandPlayer {
		r.Active = HandSplit
	} else {
		r.Active = HandPlayer
	}
	return nil
}

func (t *Table) dealerPlay() error {
	r := t.round
	for r.Dealer.Value() < DealerStandsOn {
		card, err := r.Deck.Deal()
		if err != nil {
			return err
		}
		r.Dealer.AddCard(card)
	}
	return nil
}

// resolve settles every hand against the dealer as it stands and pays the
// bankroll. Both hands are paid on the same recorded bet.
func (t *Table) resolve() {
	r := t.round
	r.HoleRevealed = true
	r.Phase = PhaseResolved

	dealerValue := r.Dealer.Value()
	r.Results = []HandResult{settle(HandPlayer, r.Player, dealerValue, r.Bet)}
	if r.HasSplit() {
		r.Results = append(r.Results, settle(HandSplit, r.Split, dealerValue, r.Bet))
	}

	r.Payout = 0
	for _, res := range r.Results {
		r.Payout += res.Payout
	}
	t.bankroll = min(t.bankroll+r.Payout, MaxBankroll)
	r.Outcome = outcomeMessage(r.Results)
}

// covers reports bet*2 <= bankroll without computing bet*2, which wraps for
// bets above MaxInt/2.
func covers(bankroll, bet int) bool {
	return bet <= bankroll-bet
}
