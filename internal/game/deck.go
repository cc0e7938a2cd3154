package game

import (
	"math/rand"
	"slices"
)

const DeckSize = 52

// Deck is an ordered set of cards. The top of the deck is the end of Cards.
type Deck struct {
	Cards []Card `json:"cards"`
}

func newOrderedDeck() *Deck {
	d := &Deck{
		Cards: make([]Card, 0, DeckSize),
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.Cards = append(d.Cards, Card{Rank: rank, Suit: suit})
		}
	}
	return d
}

// NewDeck returns all 52 cards in random order.
func NewDeck() *Deck {
	d := newOrderedDeck()
	d.Shuffle(nil)
	return d
}

// NewSeededDeck returns a shuffled deck whose order is fixed by seed.
func NewSeededDeck(seed int64) *Deck {
	d := newOrderedDeck()
	d.Shuffle(rand.New(rand.NewSource(seed)))
	return d
}

// NewStackedDeck returns a deck that deals exactly the given cards, first card first.
func NewStackedDeck(cards ...Card) *Deck {
	stacked := slices.Clone(cards)
	slices.Reverse(stacked)
	return &Deck{Cards: stacked}
}

// Shuffle permutes the deck in place. A nil r uses the global source.
func (d *Deck) Shuffle(r *rand.Rand) {
	swap := func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
	if r == nil {
		rand.Shuffle(len(d.Cards), swap)
		return
	}
	r.Shuffle(len(d.Cards), swap)
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.Cards)
}

func (d *Deck) clone() *Deck {
	if d == nil {
		return nil
	}
	return &Deck{Cards: slices.Clone(d.Cards)}
}
