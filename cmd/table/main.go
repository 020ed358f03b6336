package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"solojack/internal/config"
	"solojack/internal/database"
	"solojack/internal/game"
	"solojack/internal/randutil"
	"solojack/internal/stats"
	"solojack/internal/tui"
)

// terminalChatID keys the terminal player's tally in the rounds table.
const terminalChatID = 0

type CLI struct {
	EnvFile []string `help:"Env files to load before reading the environment" default:".env" type:"path"`
	Seed    *int64   `help:"Fix the shuffle seed (overrides SHUFFLE_SEED)"`
	Dealer  string   `help:"Dealer policy: single or seventeen (overrides DEALER_POLICY)"`
	NoStats bool     `help:"Do not record finished rounds"`
	LogFile string   `help:"Write logs to this file" default:"blackjack-table.log" type:"path"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Blackjack at the terminal"))

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, err)
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli CLI) error {
	// the TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "table",
	})

	cfg, err := config.LoadTable(cli.EnvFile...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	policy := cfg.DealerPolicy
	if cli.Dealer != "" {
		if policy, err = game.ParseDealerPolicy(cli.Dealer); err != nil {
			return err
		}
	}

	rng := randutil.FromClock()
	switch {
	case cli.Seed != nil:
		rng = randutil.New(*cli.Seed)
	case cfg.HasSeed:
		rng = randutil.New(cfg.ShuffleSeed)
	}

	var opts []tui.Option
	if !cli.NoStats {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		rounds := stats.NewRepository(db.DB)
		opts = append(opts, tui.WithOnFinish(func(s game.State) {
			res := s.Outcome()
			blackjack := res == game.ResultPlayerWin && s.PlayerHand.IsBlackjack()
			if err := rounds.Record(context.Background(), terminalChatID, res, blackjack); err != nil {
				logger.Error("failed to record round", "error", err)
			}
		}))
	}

	logger.Info("starting table", "policy", policy)

	model := tui.NewModel(rng, policy, logger, opts...)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run table: %w", err)
	}
	return nil
}
