package game

// CalculateScore counts every ace as 11, then demotes aces to 1 while the
// total is over 21.
func CalculateScore(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Rank.Value()
		if card.Rank == Ace {
			aces++
		}
	}

	for score > Blackjack && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > Blackjack
}
