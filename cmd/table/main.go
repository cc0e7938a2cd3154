package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/console"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

func main() {
	balance := flag.Int("balance", 1000, "Initial balance in `chips`")
	bet := flag.Int("bet", 100, "Default bet in `chips`")
	seed := flag.Int64("seed", 0, "Shuffle `seed` for a reproducible shoe, 0 for random")
	cli.Main()

	var opts []game.Option
	if *seed != 0 {
		round := *seed
		opts = append(opts, game.WithDeckFactory(func() *game.Deck {
			d := game.NewSeededDeck(round)
			round++
			return d
		}))
	}

	c := console.New(game.NewTable(*balance, opts...), os.Stdout, *bet)
	if err := c.Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
