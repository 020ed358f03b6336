package game

import (
	"fmt"
	"strconv"
)

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the singular suit name used in asset keys.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "club"
	case Diamonds:
		return "diamond"
	case Hearts:
		return "heart"
	case Spades:
		return "spade"
	default:
		return "unknown"
	}
}

func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch {
	case r.IsNumeric():
		return strconv.Itoa(int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

func (r Rank) IsNumeric() bool {
	return r >= Two && r <= Ten
}

func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

func (r Rank) IsAce() bool {
	return r == Ace
}

// Points is the fixed value of a non-ace card. Aces are valued by the scorer.
func (r Rank) Points() int {
	switch {
	case r.IsNumeric():
		return int(r)
	case r.IsFace():
		return 10
	default:
		return 0
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// AssetKey identifies the card face image, e.g. "spade_1" or "heart_queen".
func (c Card) AssetKey() string {
	var rank string
	switch {
	case c.Rank.IsAce():
		rank = "1"
	case c.Rank == Jack:
		rank = "jack"
	case c.Rank == Queen:
		rank = "queen"
	case c.Rank == King:
		rank = "king"
	default:
		rank = strconv.Itoa(int(c.Rank))
	}
	return c.Suit.Name() + "_" + rank
}
