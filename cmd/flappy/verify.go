package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <run-id>",
	Short: "Replay a recorded run and check its result",
	Long: `Re-simulate a recorded run from its seed and jump ticks, with the
configuration it was played with, and compare the final score and tick
count. Exits with status 1 when they differ.

Examples:
  flappy verify 12`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func runVerify(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	rec, err := store.Run(id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	got, err := storage.Verify(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run #%d verified: score %d in %d ticks (%d jumps, seed %d)\n",
		rec.ID, got.Score, got.Ticks, len(rec.Jumps), rec.Seed)
}
