package game

import (
	"fmt"
	"strings"
)

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "T"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

var (
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	Suits = []Suit{Clubs, Diamonds, Hearts, Spades}
)

var rankValues = map[Rank]int{
	Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
	Ten: 10, Jack: 10, Queen: 10, King: 10, Ace: 11,
}

var suitSymbols = map[Suit]string{
	Clubs: "♣", Diamonds: "♦", Hearts: "♥", Spades: "♠",
}

// Value is the blackjack value of the rank, counting an ace as 11.
func (r Rank) Value() int {
	return rankValues[r]
}

// Card is a playing card. Cards compare equal by rank and suit.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns the short form used by ParseCard, e.g. "TC".
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// Pretty renders the card for people: "10♣", "A♠".
func (c Card) Pretty() string {
	rank := string(c.Rank)
	if c.Rank == Ten {
		rank = "10"
	}
	return rank + suitSymbols[c.Suit]
}

func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	c := Card{Rank: Rank(s[:1]), Suit: Suit(s[1:])}
	if _, ok := rankValues[c.Rank]; !ok {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	if _, ok := suitSymbols[c.Suit]; !ok {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	return c, nil
}

// MustParseCards parses every card or panics. Used for fixed decks in tests and tools.
func MustParseCards(cards ...string) []Card {
	out := make([]Card, 0, len(cards))
	for _, s := range cards {
		c, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
