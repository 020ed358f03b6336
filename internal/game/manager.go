package game

import (
	"errors"
	"sync"
)

var (
	ErrNoActiveRound = errors.New("no active round")
	ErrRoundOver     = errors.New("round is already over")
)

type session struct {
	mu    sync.Mutex
	state State
}

// Manager holds the current round of every chat. Actions on one chat are
// applied one at a time.
type Manager struct {
	rng    Shuffler
	rngMu  sync.Mutex
	policy DealerPolicy

	games map[int64]*session
	mu    sync.RWMutex
}

func NewManager(rng Shuffler, policy DealerPolicy) *Manager {
	return &Manager{
		rng:    rng,
		policy: policy,
		games:  make(map[int64]*session),
	}
}

func (m *Manager) Policy() DealerPolicy {
	return m.policy
}

// Deal starts a new round for chatID, replacing any previous one.
func (m *Manager) Deal(chatID int64) State {
	m.rngMu.Lock()
	s := Setup(m.rng)
	m.rngMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[chatID] = &session{state: s}
	return s
}

func (m *Manager) Get(chatID int64) (State, bool) {
	m.mu.RLock()
	sess, ok := m.games[chatID]
	m.mu.RUnlock()
	if !ok {
		return State{}, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state, true
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, chatID)
}

func (m *Manager) Hit(chatID int64) (State, error) {
	return m.apply(chatID, PlayerHits)
}

func (m *Manager) Stand(chatID int64) (State, error) {
	return m.apply(chatID, func(s State) (State, error) {
		return Stand(s, m.policy)
	})
}

func (m *Manager) apply(chatID int64, action func(State) (State, error)) (State, error) {
	m.mu.RLock()
	sess, ok := m.games[chatID]
	m.mu.RUnlock()
	if !ok {
		return State{}, ErrNoActiveRound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.IsFinished() {
		return sess.state, ErrRoundOver
	}

	next, err := action(sess.state)
	if err != nil {
		return sess.state, err
	}
	sess.state = next
	return next, nil
}
