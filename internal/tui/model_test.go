package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solojack/internal/game"
	"solojack/internal/randutil"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewModel(randutil.New(3), game.DealerSingleDraw, logger, opts...)
}

func TestModelHit(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 48, m.State().CardsRemaining())

	_, cmd := m.Update(key("h"))
	assert.Nil(t, cmd)
	assert.Len(t, m.State().PlayerHand, 3)
	assert.Equal(t, game.PlayerTurn, m.State().Turn)
}

func TestModelStandFinishesOnce(t *testing.T) {
	var finished []game.State
	m := newTestModel(t, WithOnFinish(func(s game.State) {
		finished = append(finished, s)
	}))

	m.Update(key("s"))
	require.Len(t, finished, 1)
	assert.Equal(t, game.DealerTurn, m.State().Turn)
	assert.Contains(t, m.View(), m.State().Outcome().String())

	// hit and stand are ignored once the dealer has played
	before := m.State()
	m.Update(key("h"))
	m.Update(key("s"))
	assert.Equal(t, before, m.State())
	assert.Len(t, finished, 1)
}

func TestModelReset(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("s"))

	m.Update(key("r"))
	assert.Equal(t, game.PlayerTurn, m.State().Turn)
	assert.Equal(t, 48, m.State().CardsRemaining())
	assert.Contains(t, m.View(), "player_turn")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestModelViewHidesHoleCard(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "There are 48 cards left in deck")
	assert.Contains(t, view, "##")
	assert.NotContains(t, view, "Dealer Score")
}
