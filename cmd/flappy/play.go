package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/Click - Start a run, then flap
  Ctrl+S         - Save a text screenshot to ~/.flappy/screenshots
  ?              - Show all keys
  Q/Esc/Ctrl+C   - Quit

Every finished run is recorded in the run journal (see 'flappy runs').

Examples:
  flappy play
  flappy play --fps 30
  flappy play --seed 42 --config ./configs/flappy.example.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := mustLoadConfig()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store := openJournalStore(logger)

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Journal: storage.NewJournal(store, "tui", cfg, logger),
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
