package main

import (
	"github.com/rs/zerolog/log"

	"github.com/tatianab/number-game/internal/config"
	"github.com/tatianab/number-game/internal/engine"
	"github.com/tatianab/number-game/internal/httpserver"
	"github.com/tatianab/number-game/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, closeLog, err := cfg.Logger(false)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closeLog()
	log.Logger = logger

	eng, err := engine.NewEngine(cfg.Rules, engine.NewRandSource(cfg.Seed), logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	srv := httpserver.New(eng, store.NewMemoryStore(), cfg.DailySalt, logger)
	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
