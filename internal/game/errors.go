package game

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidBet        = errors.New("invalid bet")
	ErrNoFunds           = errors.New("no funds left")
	ErrIllegalAction     = errors.New("illegal action")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDeckExhausted     = errors.New("deck exhausted")
	ErrTableNotFound     = errors.New("table not found")
)

// ParseBet turns user input into a bet amount. Range checks against the
// bankroll happen in PlaceBet.
func ParseBet(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidBet
	}
	return n, nil
}
