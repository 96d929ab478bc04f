package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tatianab/number-game/internal/config"
	"github.com/tatianab/number-game/internal/engine"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	games := flag.Int("games", 5, "number of puzzles to play")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	eng, err := engine.NewEngine(cfg.Rules, engine.NewRandSource(cfg.Seed), logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}
	rules := eng.Rules()
	maxTurns := len(rules.Kinds) + 1

	total := 0
	for game := 1; game <= *games; game++ {
		fmt.Printf("--- Game %d ---\n", game)
		session, err := eng.NewSession(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create session")
		}

		snap := session.Snapshot()
		turn := 0
		for !snap.Won {
			turn++
			if turn > maxTurns {
				log.Fatal().Int("game", game).Msg("bot did not win within the turn limit")
			}

			// Smallest number that satisfies everything revealed so far.
			guess, ok := engine.Solve(rules.SecretMin, rules.SecretMax, engine.Revealed(snap))
			if !ok {
				log.Fatal().Int("game", game).Msg("no number satisfies the revealed conditions")
			}
			snap, err = session.OnGuess(strconv.Itoa(guess))
			if err != nil {
				log.Fatal().Err(err).Msg("guess rejected")
			}

			fmt.Printf("Turn %d: guessed %d\n", turn, guess)
			for _, c := range snap.Conditions {
				mark := " "
				if c.Satisfied {
					mark = "x"
				}
				fmt.Printf("  [%s] %s\n", mark, c.Text)
			}
		}
		fmt.Printf("Solved %d in %d turns\n\n", snap.Guess, turn)
		total += turn
	}

	if *games > 0 {
		fmt.Printf("Average turns: %.2f\n", float64(total)/float64(*games))
	}
}
