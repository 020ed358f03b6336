package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func c(r Rank, s Suit) Card {
	return NewCard(s, r)
}

// requireFullDeck checks that the deck and both hands together hold each of
// the 52 cards exactly once.
func requireFullDeck(t *testing.T, s State) {
	t.Helper()

	seen := make(map[Card]int, 52)
	for _, group := range [][]Card{s.Deck, s.PlayerHand, s.DealerHand} {
		for _, card := range group {
			seen[card]++
		}
	}

	require.Len(t, seen, 52)
	for card, n := range seen {
		require.Equal(t, 1, n, "card %s seen %d times", card, n)
	}
}
