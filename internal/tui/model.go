// Package tui is a terminal table for a single player: h hits, s stands,
// r deals a new round and q quits.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"solojack/internal/game"
)

type Model struct {
	state  game.State
	rng    game.Shuffler
	policy game.DealerPolicy
	logger *log.Logger
	styles Styles

	// onFinish is called once per round when the dealer has played.
	onFinish func(game.State)

	err      error
	quitting bool
}

type Option func(*Model)

func WithOnFinish(fn func(game.State)) Option {
	return func(m *Model) { m.onFinish = fn }
}

func NewModel(rng game.Shuffler, policy game.DealerPolicy, logger *log.Logger, opts ...Option) *Model {
	m := &Model{
		rng:    rng,
		policy: policy,
		logger: logger.WithPrefix("tui"),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = game.Setup(m.rng)
	return m
}

func (m *Model) State() game.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.state = game.Setup(m.rng)
		m.err = nil
		m.logger.Debug("new round", "deck", m.state.CardsRemaining())

	case "h":
		if m.state.IsFinished() {
			return m, nil
		}
		m.apply(game.PlayerHits)

	case "s":
		if m.state.IsFinished() {
			return m, nil
		}
		m.apply(func(s game.State) (game.State, error) {
			return game.Stand(s, m.policy)
		})
		if m.state.IsFinished() {
			m.logger.Info("round finished", "result", m.state.Outcome(),
				"player", m.state.PlayerScore(), "dealer", m.state.DealerScore())
			if m.onFinish != nil {
				m.onFinish(m.state)
			}
		}
	}

	return m, nil
}

func (m *Model) apply(action func(game.State) (game.State, error)) {
	next, err := action(m.state)
	if err != nil {
		m.logger.Error("action failed", "error", err)
		m.err = err
		return
	}
	m.err = nil
	m.state = next
}

func (m *Model) card(c game.Card) string {
	if c.Suit.IsRed() {
		return m.styles.RedCard.Render(c.String())
	}
	return m.styles.BlackCard.Render(c.String())
}

func (m *Model) hand(h game.Hand) string {
	parts := make([]string, 0, len(h))
	for _, c := range h {
		parts = append(parts, m.card(c))
	}
	return strings.Join(parts, " ")
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.state
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "There are %d cards left in deck\n\n", s.CardsRemaining())

	sb.WriteString(m.styles.Label.Render("Player Cards"))
	fmt.Fprintf(&sb, "\n%s\nPlayer Score %d\n\n", m.hand(s.PlayerHand), s.PlayerScore())

	sb.WriteString(m.styles.Label.Render("Dealer Cards"))
	if s.HoleCardHidden() {
		fmt.Fprintf(&sb, "\n%s %s\n\n", m.styles.Hidden.Render("##"), m.hand(s.VisibleDealerCards()))
	} else {
		fmt.Fprintf(&sb, "\n%s\nDealer Score %d\n\n", m.hand(s.DealerHand), s.DealerScore())
	}

	if res := s.Outcome(); res != game.ResultNone {
		sb.WriteString(m.styles.Success.Render(res.String()))
	} else {
		sb.WriteString(m.styles.Info.Render(s.Turn.String()))
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render(m.err.Error()))
		sb.WriteString("\n")
	}

	help := "h hit • s stand • r reset • q quit"
	if s.IsFinished() {
		help = "r reset • q quit"
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(help))
	sb.WriteString("\n")

	return sb.String()
}
