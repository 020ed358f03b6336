package game

import (
	"errors"
	"fmt"
	"slices"
)

var ErrShortDeck = errors.New("deck has fewer than 4 cards to deal")

type Turn int

const (
	PlayerTurn Turn = iota
	DealerTurn
)

func (t Turn) String() string {
	if t == DealerTurn {
		return "dealer_turn"
	}
	return "player_turn"
}

// State is a snapshot of one round. Operations return a new State and never
// modify the one they were given.
type State struct {
	Deck       Deck
	PlayerHand Hand
	DealerHand Hand
	Turn       Turn
}

// Setup shuffles a fresh deck and deals the opening hands.
func Setup(rng Shuffler) State {
	s, err := SetupWithDeck(Shuffle(NewDeck(), rng))
	if err != nil {
		// a full deck always covers the opening deal
		panic(err)
	}
	return s
}

// SetupWithDeck deals from d as given: the player takes the top two cards,
// the dealer the next two.
func SetupWithDeck(d Deck) (State, error) {
	n := len(d)
	if n < 4 {
		return State{}, ErrShortDeck
	}

	return State{
		Deck:       slices.Clone(d[:n-4]),
		PlayerHand: Hand(slices.Clone(d[n-2:])),
		DealerHand: Hand(slices.Clone(d[n-4 : n-2])),
		Turn:       PlayerTurn,
	}, nil
}

// PlayerHits gives the player one card. The turn is not checked here.
func PlayerHits(s State) (State, error) {
	card, rest, err := TakeCard(s.Deck)
	if err != nil {
		return s, fmt.Errorf("player hit: %w", err)
	}

	s.Deck = rest
	s.PlayerHand = append(slices.Clone(s.PlayerHand), card)
	return s, nil
}

// PlayerStands ends the player's turn with the single-draw dealer.
func PlayerStands(s State) (State, error) {
	return Stand(s, DealerSingleDraw)
}

// Stand ends the player's turn and lets the dealer play under policy.
func Stand(s State, policy DealerPolicy) (State, error) {
	next, err := policy.play(s)
	if err != nil {
		return s, fmt.Errorf("player stand: %w", err)
	}
	next.Turn = DealerTurn
	return next, nil
}

func (s State) PlayerScore() int {
	return CalculateScore(s.PlayerHand)
}

func (s State) DealerScore() int {
	return CalculateScore(s.DealerHand)
}

func (s State) CardsRemaining() int {
	return s.Deck.Remaining()
}

func (s State) IsFinished() bool {
	return s.Turn == DealerTurn
}

// Result is DetermineResult of the current hands, whatever the turn.
func (s State) Result() Result {
	return DetermineResult(s)
}

// Outcome is the result to show: nothing until the dealer has played.
func (s State) Outcome() Result {
	if !s.IsFinished() {
		return ResultNone
	}
	return DetermineResult(s)
}

// HoleCardHidden reports whether the dealer's first card is face down.
func (s State) HoleCardHidden() bool {
	return s.Turn == PlayerTurn && len(s.DealerHand) > 0
}

// VisibleDealerCards returns the dealer cards a player may see.
func (s State) VisibleDealerCards() Hand {
	if s.HoleCardHidden() {
		return slices.Clone(s.DealerHand[1:])
	}
	return slices.Clone(s.DealerHand)
}
