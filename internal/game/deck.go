package game

import (
	"errors"
	"slices"
)

var ErrEmptyDeck = errors.New("attempted draw with 0 cards remaining")

// Deck is a stack of cards; the top is the end of the slice.
type Deck []Card

// Shuffler is satisfied by *rand.Rand from math/rand and math/rand/v2.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewDeck returns all 52 cards, suit-major, unshuffled.
func NewDeck() Deck {
	d := make(Deck, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, NewCard(s, r))
		}
	}
	return d
}

// Shuffle returns a permutation of d; d itself is left untouched.
func Shuffle(d Deck, rng Shuffler) Deck {
	out := slices.Clone(d)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// TakeCard draws the top card.
func TakeCard(d Deck) (Card, Deck, error) {
	if len(d) == 0 {
		return Card{}, d, ErrEmptyDeck
	}

	top := len(d) - 1
	return d[top], slices.Clone(d[:top]), nil
}

func (d Deck) Remaining() int {
	return len(d)
}
