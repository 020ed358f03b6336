package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"solojack/internal/bot"
	"solojack/internal/config"
	"solojack/internal/database"
	"solojack/internal/game"
	"solojack/internal/randutil"
	"solojack/internal/stats"
)

type CLI struct {
	EnvFile []string `help:"Env files to load before reading the environment" default:".env" type:"path"`
	Debug   bool     `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Description("Blackjack Telegram bot"))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "solojack",
	})

	cfg, err := config.Load(cli.EnvFile...)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	} else if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			logger.Fatal("invalid LOG_LEVEL", "error", err)
		}
		logger.SetLevel(level)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	logger.Info("database connected", "path", cfg.DatabasePath)

	rng := randutil.FromClock()
	if cfg.HasSeed {
		rng = randutil.New(cfg.ShuffleSeed)
		logger.Info("using fixed shuffle seed", "seed", cfg.ShuffleSeed)
	}

	games := game.NewManager(rng, cfg.DealerPolicy)
	rounds := stats.NewRepository(db.DB)

	b, err := bot.New(cfg, games, rounds, logger)
	if err != nil {
		logger.Fatal("failed to create bot", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return b.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("bot error", "error", err)
		os.Exit(1)
	}
}
