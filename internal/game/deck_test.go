package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solojack/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	require.Len(t, d, 52)
	requireFullDeck(t, State{Deck: d})

	assert.Equal(t, c(Two, Clubs), d[0])
	assert.Equal(t, c(Ace, Spades), d[51])
}

func TestShuffle(t *testing.T) {
	original := NewDeck()

	t.Run("permutes without touching input", func(t *testing.T) {
		shuffled := Shuffle(original, randutil.New(1))

		assert.Equal(t, NewDeck(), original)
		assert.NotEqual(t, original, shuffled)
		assert.ElementsMatch(t, original, shuffled)
	})

	t.Run("same seed same order", func(t *testing.T) {
		a := Shuffle(original, randutil.New(99))
		b := Shuffle(original, randutil.New(99))
		assert.Equal(t, a, b)
	})
}

func TestTakeCard(t *testing.T) {
	t.Run("draws from the top", func(t *testing.T) {
		d := Deck{c(Two, Clubs), c(Nine, Hearts), c(Ace, Spades)}

		card, rest, err := TakeCard(d)
		require.NoError(t, err)
		assert.Equal(t, c(Ace, Spades), card)
		assert.Equal(t, Deck{c(Two, Clubs), c(Nine, Hearts)}, rest)
		assert.Len(t, d, 3)
	})

	t.Run("empty deck", func(t *testing.T) {
		_, rest, err := TakeCard(Deck{})
		assert.ErrorIs(t, err, ErrEmptyDeck)
		assert.Empty(t, rest)
	})
}
