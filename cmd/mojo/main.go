package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/JosiahVarughese/mojo-social/internal/api"
	"github.com/JosiahVarughese/mojo-social/internal/clock"
	"github.com/JosiahVarughese/mojo-social/internal/config"
	"github.com/JosiahVarughese/mojo-social/internal/debounce"
	"github.com/JosiahVarughese/mojo-social/internal/logger"
	"github.com/JosiahVarughese/mojo-social/internal/metrics"
	"github.com/JosiahVarughese/mojo-social/internal/store"
	"github.com/JosiahVarughese/mojo-social/internal/ui"
)

func main() {
	cfg := config.Load()

	// Flags override the environment.
	flag.StringVar(&cfg.Env, "env", cfg.Env, "environment: dev or prod (log format)")
	flag.BoolVar(&cfg.Seed, "seed", cfg.Seed, "populate the demo dataset on startup")
	flag.StringVar(&cfg.RosterPath, "roster", cfg.RosterPath, "YAML file with seed usernames")
	flag.StringVar(&cfg.DebugAddr, "debug-addr", cfg.DebugAddr, "address for /health and /metrics (empty = off)")
	flag.Int64Var(&cfg.ClockSeed, "clock-seed", cfg.ClockSeed, "seed for the simulated timeline")
	flag.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay before clearing suggestion lists")
	flag.Parse()

	// The TUI owns stdout; logs go to stderr.
	log := logger.New(cfg.Env, os.Stderr)

	metrics.Init()
	if cfg.DebugAddr != "" {
		go api.Serve(cfg.DebugAddr, log)
	}

	st := store.New(log, clock.NewTimeline(cfg.ClockSeed))

	if cfg.Seed {
		var roster []string
		if cfg.RosterPath != "" {
			var err error
			roster, err = config.LoadRoster(cfg.RosterPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		st.PopulateSampleData(roster)
	}

	app := ui.NewApp(st, log, debounce.New(cfg.Debounce))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("ui", "err", err)
		os.Exit(1)
	}
}
