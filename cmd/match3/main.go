// match3 is a terminal match-3 game with a local TUI, an SSH server and a
// headless autoplay simulator.
//
// Usage:
//
//	match3 list                    - List game modes
//	match3 play [classic|zen]      - Play a mode
//	match3 menu                    - Start menu to pick a mode interactively
//	match3 serve                   - Start SSH server for remote play
//	match3 scores [classic|zen]    - Show high scores for a mode
//	match3 simulate                - Let the hint bot play and print the result
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.match3/scores.db)
//
// A .env file in the working directory may set MATCH3_DB, MATCH3_CONFIG and
// MATCH3_SSH_ADDR; explicit flags win.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tokens in your terminal",
	Long: `Match-3 is a terminal tile-matching game.

Swap two adjacent tokens to line up three or more of a kind. Lines clear,
tokens fall, new ones drop in and chains score again.

Available commands:
  list      - Show the game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Watch the hint bot play a seeded game
  config    - Print the effective configuration

Examples:
  match3 play
  match3 play zen
  match3 menu
  match3 serve --ssh :2222
  match3 simulate --seed 42 --moves 100`,
}

func init() {
	cobra.OnInitialize(loadEnv)

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads .env and fills in flags the user did not set.
func loadEnv() {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	envDefault(rootCmd.PersistentFlags().Changed("db"), &flagDBPath, "MATCH3_DB")
	configChanged := playCmd.Flags().Changed("config") ||
		menuCmd.Flags().Changed("config") ||
		serveCmd.Flags().Changed("config") ||
		configCmd.Flags().Changed("config")
	envDefault(configChanged, &flagConfig, "MATCH3_CONFIG")
	envDefault(simulateCmd.Flags().Changed("config"), &flagSimConfig, "MATCH3_CONFIG")
	envDefault(serveCmd.Flags().Changed("ssh"), &flagSSHAddr, "MATCH3_SSH_ADDR")
}

func envDefault(changed bool, dst *string, key string) {
	if changed {
		return
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
