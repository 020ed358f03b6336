package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownPolicy = errors.New("unknown dealer policy")

// dealerStandsAbove is the score above which the dealer takes no card.
const dealerStandsAbove = 16

type DealerPolicy int

const (
	// DealerSingleDraw draws at most one card when the player stands.
	DealerSingleDraw DealerPolicy = iota
	// DealerHitToSeventeen keeps drawing until the score is above 16.
	DealerHitToSeventeen
)

func (p DealerPolicy) String() string {
	switch p {
	case DealerSingleDraw:
		return "single"
	case DealerHitToSeventeen:
		return "seventeen"
	default:
		return "unknown"
	}
}

func ParseDealerPolicy(s string) (DealerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return DealerSingleDraw, nil
	case "seventeen", "17":
		return DealerHitToSeventeen, nil
	default:
		return DealerSingleDraw, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p DealerPolicy) play(s State) (State, error) {
	switch p {
	case DealerSingleDraw:
		if CalculateScore(s.DealerHand) > dealerStandsAbove {
			return s, nil
		}
		return dealerDraws(s)

	case DealerHitToSeventeen:
		var err error
		for CalculateScore(s.DealerHand) <= dealerStandsAbove {
			if s, err = dealerDraws(s); err != nil {
				return s, err
			}
		}
		return s, nil

	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
}

func dealerDraws(s State) (State, error) {
	card, rest, err := TakeCard(s.Deck)
	if err != nil {
		return s, fmt.Errorf("dealer draw: %w", err)
	}

	s.Deck = rest
	s.DealerHand = append(slices.Clone(s.DealerHand), card)
	return s, nil
}
