package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want int
	}{
		{"empty", Hand{}, 0},
		{"ace king", Hand{c(Ace, Spades), c(King, Hearts)}, 21},
		{"two aces", Hand{c(Ace, Spades), c(Ace, Hearts)}, 12},
		{"three aces", Hand{c(Ace, Spades), c(Ace, Hearts), c(Ace, Clubs)}, 13},
		{"nine and two aces", Hand{c(Nine, Clubs), c(Ace, Spades), c(Ace, Hearts)}, 21},
		{"soft seventeen", Hand{c(Ace, Diamonds), c(Six, Clubs)}, 17},
		{"ace goes hard", Hand{c(Ace, Clubs), c(Five, Hearts), c(Eight, Spades)}, 14},
		{"faces", Hand{c(Jack, Clubs), c(Queen, Hearts)}, 20},
		{"bust is not clamped", Hand{c(King, Clubs), c(Queen, Hearts), c(Five, Spades)}, 25},
		{"numerics", Hand{c(Two, Clubs), c(Three, Hearts), c(Ten, Spades)}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateScore(tt.hand))
			assert.Equal(t, tt.want, tt.hand.Score(), "scoring twice must agree")
		})
	}
}

func TestIsBlackjack(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want bool
	}{
		{"ace king", Hand{c(Ace, Spades), c(King, Hearts)}, true},
		{"jack ace", Hand{c(Jack, Clubs), c(Ace, Diamonds)}, true},
		{"ten ace is not blackjack", Hand{c(Ten, Spades), c(Ace, Hearts)}, false},
		{"three cards", Hand{c(Ace, Spades), c(King, Hearts), c(Two, Diamonds)}, false},
		{"two faces", Hand{c(King, Spades), c(Queen, Hearts)}, false},
		{"two aces", Hand{c(Ace, Spades), c(Ace, Hearts)}, false},
		{"empty", Hand{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlackjack(tt.hand))
		})
	}
}

func TestIsBust(t *testing.T) {
	assert.False(t, IsBust(Hand{c(King, Clubs), c(Ace, Hearts), c(Queen, Spades)}))
	assert.True(t, IsBust(Hand{c(King, Clubs), c(Two, Hearts), c(Queen, Spades)}))
}
