// wordgarden is a terminal word-guessing game where every miss wilts a flower.
//
// Usage:
//
//	wordgarden play     - Play in this terminal
//	wordgarden serve    - Start SSH server for remote play
//	wordgarden config   - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Path to a garden config YAML
//	--seed <value>  - Set RNG seed for the word shuffle
//	--log <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogPath string
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordgarden",
	Short: "Word Garden - Guess the hidden word before the flower wilts",
	Long: `Word Garden is a terminal word-guessing game. Guess one letter at a
time; every miss costs the flower a leaf.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Configuration is read from --config, ~/.wordgarden/configs/garden.yaml,
./configs/garden.yaml, or the built-in defaults, in that order.
WORDGARDEN_* environment variables (and a .env file) override it.

Examples:
  wordgarden play
  wordgarden play --config ./garden.yaml --seed 42
  wordgarden serve --ssh :2222
  WORDGARDEN_WORDS=APPLE,PEAR wordgarden config`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom garden config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for word shuffle (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
