package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

func stackedTable(bankroll int, cards ...string) *game.Table {
	return game.NewTable(bankroll, game.WithDeckFactory(func() *game.Deck {
		return game.NewStackedDeck(game.MustParseCards(cards...)...)
	}))
}

func TestRunRound(t *testing.T) {
	var out bytes.Buffer
	c := New(stackedTable(1000, "TC", "8H", "9D", "7S", "2C"), &out, 100)

	require.NoError(t, c.Run(strings.NewReader("deal 50\ns\nquit\n")))

	got := out.String()
	assert.Contains(t, got, "Dealer: 8♥ ?? (8)")
	assert.Contains(t, got, "You:    10♣ 9♦ (19)")
	assert.Contains(t, got, "[deal hit stand double]")
	assert.Contains(t, got, "Dealer: 8♥ 7♠ 2♣ (17)")
	assert.Contains(t, got, "Player wins!")
	assert.Contains(t, got, "Final balance: 1050")
}

func TestExecErrors(t *testing.T) {
	var out bytes.Buffer
	c := New(stackedTable(100), &out, 10)

	assert.True(t, c.Exec("hit"))
	assert.Contains(t, out.String(), "illegal action")

	out.Reset()
	assert.True(t, c.Exec("deal ten"))
	assert.Contains(t, out.String(), "invalid bet")

	out.Reset()
	assert.True(t, c.Exec("deal 500"))
	assert.Contains(t, out.String(), "invalid bet")
	assert.Equal(t, 100, c.table.Bankroll())
}

func TestExecStopsWhenBroke(t *testing.T) {
	var out bytes.Buffer
	c := New(stackedTable(100, "TC", "8H", "6D", "9S", "KH"), &out, 100)

	assert.True(t, c.Exec("deal"))
	assert.True(t, c.Exec("hit"))
	assert.Contains(t, out.String(), "Dealer wins!")
	assert.Equal(t, 0, c.table.Bankroll())

	assert.False(t, c.Exec("deal"))
	assert.Contains(t, out.String(), "no funds left")
}

func TestRenderSplit(t *testing.T) {
	tb := stackedTable(1000, "8C", "5H", "8D", "9S", "3C", "4D")
	_, err := tb.PlaceBet(100)
	require.NoError(t, err)
	snap, err := tb.Split()
	require.NoError(t, err)

	got := Render(snap)
	assert.Contains(t, got, "You:    8♣ 3♣ (11) <")
	assert.Contains(t, got, "Split:  8♦ 4♦ (12)\n")
	assert.Contains(t, got, "[deal hit stand double switch]")
}
