package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DatabasePath string
	DatabaseURL  string
	HTTPAddr     string
	StartBalance int
	DefaultBet   int
	Debug        bool
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabasePath: getenv("DATABASE_PATH", "./blackjack.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
	}

	var err error
	if cfg.StartBalance, err = intEnv("START_BALANCE", 1000); err != nil {
		return nil, err
	}
	if cfg.DefaultBet, err = intEnv("DEFAULT_BET", 100); err != nil {
		return nil, err
	}
	if cfg.Debug, err = boolEnv("DEBUG", false); err != nil {
		return nil, err
	}

	if cfg.StartBalance <= 0 {
		return nil, fmt.Errorf("START_BALANCE must be positive, got %d", cfg.StartBalance)
	}
	if cfg.DefaultBet <= 0 {
		return nil, fmt.Errorf("DEFAULT_BET must be positive, got %d", cfg.DefaultBet)
	}

	return cfg, nil
}

// RequireBotToken is checked by the Telegram binary only.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
