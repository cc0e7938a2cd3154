package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	d := NewDeck()
	require.Equal(t, DeckSize, d.Remaining())

	seen := make(map[Card]bool, DeckSize)
	for i := 0; i < DeckSize; i++ {
		c, err := d.Deal()
		require.NoError(t, err)
		assert.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}

	assert.Len(t, seen, DeckSize)
	assert.Equal(t, 0, d.Remaining())

	for _, suit := range Suits {
		for _, rank := range Ranks {
			assert.True(t, seen[Card{Rank: rank, Suit: suit}])
		}
	}
}

func TestDealFromEmptyDeck(t *testing.T) {
	d := NewStackedDeck()

	_, err := d.Deal()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDealReducesDeck(t *testing.T) {
	d := NewDeck()

	_, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, DeckSize-1, d.Remaining())
}

func TestSeededDeckIsDeterministic(t *testing.T) {
	a := NewSeededDeck(42)
	b := NewSeededDeck(42)
	c := NewSeededDeck(7)

	assert.Equal(t, a.Cards, b.Cards)
	assert.NotEqual(t, a.Cards, c.Cards)
	assert.ElementsMatch(t, a.Cards, c.Cards)
}

func TestStackedDeckDealsInOrder(t *testing.T) {
	cards := MustParseCards("TC", "8H", "9D")
	d := NewStackedDeck(cards...)

	for _, want := range cards {
		got, err := d.Deal()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, d.Remaining())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"TC", Card{Rank: Ten, Suit: Clubs}},
		{"10c", Card{Rank: Ten, Suit: Clubs}},
		{"as", Card{Rank: Ace, Suit: Spades}},
		{" 8D ", Card{Rank: Eight, Suit: Diamonds}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "1C", "TX", "ACE"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}
}

func TestCardStrings(t *testing.T) {
	c := Card{Rank: Ten, Suit: Hearts}

	assert.Equal(t, "TH", c.String())
	assert.Equal(t, "10♥", c.Pretty())
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.Pretty())
}
