package game

type Hand []Card

// CalculateScore scores a hand. Aces are applied left to right: an ace counts
// 11 only if the remaining aces can still be held at 1 without busting.
func CalculateScore(hand Hand) int {
	score := 0
	aces := 0

	for _, c := range hand {
		if c.Rank.IsAce() {
			aces++
			continue
		}
		score += c.Rank.Points()
	}

	for i := range aces {
		minFutureAces := aces - (i + 1)
		if score+11+minFutureAces <= 21 {
			score += 11
		} else {
			score++
		}
	}

	return score
}

// IsBlackjack reports an ace and a face card as the only two cards.
// Ace with a numeric ten does not count.
func IsBlackjack(hand Hand) bool {
	if len(hand) != 2 {
		return false
	}

	first, second := hand[0].Rank, hand[1].Rank
	return (first.IsAce() && second.IsFace()) || (first.IsFace() && second.IsAce())
}

func IsBust(hand Hand) bool {
	return CalculateScore(hand) > 21
}

func (h Hand) Score() int {
	return CalculateScore(h)
}

func (h Hand) IsBlackjack() bool {
	return IsBlackjack(h)
}
