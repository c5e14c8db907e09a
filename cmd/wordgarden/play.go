package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordgarden/internal/config"
	"github.com/vovakirdan/wordgarden/internal/platform/tui"
	"github.com/vovakirdan/wordgarden/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Word Garden in this terminal",
	Long: `Start a Word Garden session.

Controls:
  A-Z        - Type a letter
  Enter      - Submit the guess / play again
  Tab        - Rounds played this session
  Esc/Ctrl+C - Quit

Examples:
  wordgarden play
  wordgarden play --seed 7
  wordgarden play --log ./garden.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open round journal (optional - game works without it)
	store, err := storage.Open(storage.DefaultName)
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Player: os.Getenv("USER"),
		Store:  store,
		Logger: logger,
		Width:  width,
		Height: height,
		Bell:   os.Stderr,
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger logs to path, or discards when path is empty.
// Stderr is not an option while the alt screen is active.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordgarden",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
