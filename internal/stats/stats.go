package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"solojack/internal/game"
)

type Tally struct {
	ChatID     int64
	Games      int
	Wins       int
	Losses     int
	Draws      int
	Blackjacks int
}

func (t Tally) WinRate() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Games) * 100
}

type Repository interface {
	Record(ctx context.Context, chatID int64, result game.Result, blackjack bool) error
	Get(ctx context.Context, chatID int64) (Tally, error)
	Top(ctx context.Context, limit int) ([]Tally, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Record adds one finished round to the chat's tally. ResultNone is ignored.
func (r *SQLiteRepository) Record(ctx context.Context, chatID int64, result game.Result, blackjack bool) error {
	var win, loss, draw, bj int
	switch result {
	case game.ResultPlayerWin:
		win = 1
	case game.ResultDealerWin:
		loss = 1
	case game.ResultDraw:
		draw = 1
	default:
		return nil
	}
	if blackjack {
		bj = 1
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rounds (chat_id, games, wins, losses, draws, blackjacks)
		VALUES (?, 1, ?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			games = games + 1,
			wins = wins + excluded.wins,
			losses = losses + excluded.losses,
			draws = draws + excluded.draws,
			blackjacks = blackjacks + excluded.blackjacks,
			updated_at = CURRENT_TIMESTAMP
	`, chatID, win, loss, draw, bj)
	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

// Get returns an empty tally for a chat that never finished a round.
func (r *SQLiteRepository) Get(ctx context.Context, chatID int64) (Tally, error) {
	t := Tally{ChatID: chatID}

	err := r.db.QueryRowContext(ctx, `
		SELECT games, wins, losses, draws, blackjacks
		FROM rounds WHERE chat_id = ?
	`, chatID).Scan(&t.Games, &t.Wins, &t.Losses, &t.Draws, &t.Blackjacks)

	if errors.Is(err, sql.ErrNoRows) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("failed to get tally: %w", err)
	}
	return t, nil
}

func (r *SQLiteRepository) Top(ctx context.Context, limit int) ([]Tally, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id, games, wins, losses, draws, blackjacks
		FROM rounds
		WHERE games > 0
		ORDER BY wins DESC, games ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top: %w", err)
	}
	defer rows.Close()

	var tallies []Tally
	for rows.Next() {
		var t Tally
		if err := rows.Scan(&t.ChatID, &t.Games, &t.Wins, &t.Losses, &t.Draws, &t.Blackjacks); err != nil {
			return nil, err
		}
		tallies = append(tallies, t)
	}

	return tallies, rows.Err()
}
