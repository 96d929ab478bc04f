package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tatianab/number-game/internal/models"
)

// Config holds the application configuration.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"LOG_FILE"`
	RulesFile string `env:"RULES_FILE"`
	Seed      uint64 `env:"SEED"` // 0 picks a random seed
	Daily     bool   `env:"DAILY"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	Addr      string `env:"ADDR" envDefault:":5175"`

	Rules models.Rules
}

// LoadConfig loads a .env file if present, then the environment, then the
// rules file named by RULES_FILE.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Rules = models.DefaultRules()
	if cfg.RulesFile != "" {
		rules, err := models.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}

	return &cfg, nil
}

// Logger builds the root logger and a func that releases its output. The
// terminal game owns the screen, so when interactive is set and no LOG_FILE
// is configured, logs are discarded.
func (c *Config) Logger(interactive bool) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	var out io.Writer
	closeFn := func() {}
	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case interactive:
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeFn, nil
}
