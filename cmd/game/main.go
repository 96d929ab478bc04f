package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tatianab/number-game/internal/config"
	"github.com/tatianab/number-game/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play today's shared puzzle")
	dumpRules := flag.String("dump-rules", "", "write the active rules to this YAML file and exit")
	flag.Parse()

	if *dumpRules != "" {
		if err := cfg.Rules.Save(*dumpRules); err != nil {
			fmt.Printf("Error writing rules: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.StartWithConfig(cfg); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
