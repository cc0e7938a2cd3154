package game

import "slices"

const Blackjack = 21

type Hand struct {
	Cards []Card `json:"cards"`
}

func NewHand(cards ...Card) *Hand {
	h := &Hand{
		Cards: make([]Card, 0, 10),
	}
	h.Cards = append(h.Cards, cards...)
	return h
}

func (h *Hand) AddCard(c Card) {
	h.Cards = append(h.Cards, c)
}

// Value counts every ace as 11, then demotes aces to 1 while the total is over 21.
func (h *Hand) Value() int {
	return CalculateScore(h.Cards)
}

func (h *Hand) Len() int {
	return len(h.Cards)
}

// CanSplit reports whether the hand is a pair of the same rank.
func (h *Hand) CanSplit() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

func (h *Hand) clone() *Hand {
	if h == nil {
		return nil
	}
	return &Hand{Cards: slices.Clone(h.Cards)}
}
