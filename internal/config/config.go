package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"solojack/internal/game"
)

type Config struct {
	BotToken     string
	DatabasePath string
	AssetBaseURL string
	DealerPolicy game.DealerPolicy
	LogLevel     string

	// ShuffleSeed fixes the shuffle source when HasSeed is set.
	ShuffleSeed int64
	HasSeed     bool
}

// Load reads the bot configuration. Missing env files are not an error.
func Load(files ...string) (*Config, error) {
	cfg, err := LoadTable(files...)
	if err != nil {
		return nil, err
	}

	cfg.BotToken = os.Getenv("BOT_TOKEN")
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	return cfg, nil
}

// LoadTable reads everything except the bot token, for the terminal table.
func LoadTable(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./blackjack.db"
	}

	policy, err := game.ParseDealerPolicy(os.Getenv("DEALER_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEALER_POLICY: %w", err)
	}

	cfg := &Config{
		DatabasePath: dbPath,
		AssetBaseURL: strings.TrimSuffix(os.Getenv("ASSET_BASE_URL"), "/"),
		DealerPolicy: policy,
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	if seed := os.Getenv("SHUFFLE_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUFFLE_SEED: %w", err)
		}
		cfg.ShuffleSeed = n
		cfg.HasSeed = true
	}

	return cfg, nil
}
