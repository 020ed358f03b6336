package bot

import (
	"fmt"
	"strings"

	"solojack/internal/game"
)

const hiddenCard = "🂠"

type renderer struct {
	assetBase string
}

// card links the card label to its face image when an asset base is set.
func (r renderer) card(c game.Card) string {
	if r.assetBase == "" {
		return c.String()
	}
	return fmt.Sprintf(`<a href="%s/%s.png">%s</a>`, r.assetBase, c.AssetKey(), c.String())
}

func (r renderer) back() string {
	if r.assetBase == "" {
		return hiddenCard
	}
	return fmt.Sprintf(`<a href="%s/back.png">%s</a>`, r.assetBase, hiddenCard)
}

func (r renderer) hand(h game.Hand) string {
	parts := make([]string, 0, len(h))
	for _, c := range h {
		parts = append(parts, r.card(c))
	}
	return strings.Join(parts, " ")
}

func handLabel(h game.Hand) string {
	if h.IsBlackjack() {
		return "BLACKJACK"
	}
	return fmt.Sprint(h.Score())
}

func resultText(res game.Result) string {
	switch res {
	case game.ResultPlayerWin:
		return "🎉 You win!"
	case game.ResultDealerWin:
		return "😔 Dealer wins!"
	case game.ResultDraw:
		return "🤝 Draw!"
	default:
		return ""
	}
}

func turnText(t game.Turn) string {
	if t == game.DealerTurn {
		return "Dealer's turn"
	}
	return "Your turn"
}

// round renders the table the way the player is allowed to see it.
func (r renderer) round(s game.State) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🃏 There are %d cards left in deck\n\n", s.CardsRemaining())
	fmt.Fprintf(&sb, "🎴 You: %s (%s)\n", r.hand(s.PlayerHand), handLabel(s.PlayerHand))

	if s.HoleCardHidden() {
		fmt.Fprintf(&sb, "🎩 Dealer: %s %s\n", r.back(), r.hand(s.VisibleDealerCards()))
	} else {
		fmt.Fprintf(&sb, "🎩 Dealer: %s (%s)\n", r.hand(s.DealerHand), handLabel(s.DealerHand))
	}

	sb.WriteString("\n")
	if res := s.Outcome(); res != game.ResultNone {
		sb.WriteString(resultText(res))
	} else {
		sb.WriteString(turnText(s.Turn))
	}

	return sb.String()
}
