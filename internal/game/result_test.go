package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineResult(t *testing.T) {
	tests := []struct {
		name   string
		player Hand
		dealer Hand
		want   Result
	}{
		{
			name:   "both blackjack",
			player: Hand{c(Ace, Spades), c(King, Hearts)},
			dealer: Hand{c(Queen, Clubs), c(Ace, Diamonds)},
			want:   ResultDraw,
		},
		{
			name:   "player blackjack beats dealer 21",
			player: Hand{c(Ace, Spades), c(Jack, Hearts)},
			dealer: Hand{c(Seven, Clubs), c(Seven, Diamonds), c(Seven, Hearts)},
			want:   ResultPlayerWin,
		},
		{
			name:   "dealer blackjack",
			player: Hand{c(Ten, Spades), c(Ace, Hearts)},
			dealer: Hand{c(King, Clubs), c(Ace, Diamonds)},
			want:   ResultDealerWin,
		},
		{
			name:   "equal scores",
			player: Hand{c(Ten, Spades), c(Eight, Hearts)},
			dealer: Hand{c(King, Clubs), c(Eight, Diamonds)},
			want:   ResultDraw,
		},
		{
			name:   "equal bust scores draw",
			player: Hand{c(Ten, Spades), c(Eight, Hearts), c(Four, Clubs)},
			dealer: Hand{c(King, Clubs), c(Eight, Diamonds), c(Four, Hearts)},
			want:   ResultDraw,
		},
		{
			name:   "player bust beats comparison",
			player: Hand{c(Ten, Spades), c(Eight, Hearts), c(Four, Clubs)},
			dealer: Hand{c(King, Clubs), c(Eight, Diamonds)},
			want:   ResultDealerWin,
		},
		{
			name:   "player bust checked before dealer bust",
			player: Hand{c(Ten, Spades), c(Nine, Hearts), c(Four, Clubs)},
			dealer: Hand{c(King, Clubs), c(Eight, Diamonds), c(Four, Hearts)},
			want:   ResultDealerWin,
		},
		{
			name:   "dealer bust",
			player: Hand{c(Ten, Spades), c(Two, Hearts)},
			dealer: Hand{c(King, Clubs), c(Six, Diamonds), c(Nine, Hearts)},
			want:   ResultPlayerWin,
		},
		{
			name:   "dealer higher",
			player: Hand{c(Ten, Spades), c(Seven, Hearts)},
			dealer: Hand{c(King, Clubs), c(Nine, Diamonds)},
			want:   ResultDealerWin,
		},
		{
			name:   "player higher",
			player: Hand{c(Ten, Spades), c(Ace, Hearts), c(Queen, Clubs)},
			dealer: Hand{c(King, Clubs), c(Nine, Diamonds)},
			want:   ResultPlayerWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{PlayerHand: tt.player, DealerHand: tt.dealer}
			assert.Equal(t, tt.want, DetermineResult(s))
		})
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "player_win", ResultPlayerWin.String())
	assert.Equal(t, "dealer_win", ResultDealerWin.String())
	assert.Equal(t, "draw", ResultDraw.String())
	assert.Equal(t, "no_result", ResultNone.String())
}
