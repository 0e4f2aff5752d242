package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/W/Click/Tap - Start a run, then flap
  Q/Esc                - Quit

Examples:
  flappy window
  flappy window --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := mustLoadConfig()
	store := openJournalStore(logger)

	runErr := gui.Run(gui.Options{
		Config:   cfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Journal:  storage.NewJournal(store, "window", cfg, logger),
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
