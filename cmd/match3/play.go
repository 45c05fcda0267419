package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [classic|zen]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (classic when omitted).

Modes:
  classic - Limited attempts for unproductive swaps, the gauge drains over time
  zen     - No attempts limit, no drain

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select a token, then an adjacent one to swap
  ?            - Show a hint
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More attempts, slow drain
  normal - Default attempts, drain speeds up with score
  hard   - Few attempts, fast drain
  fixed  - No progression, stays at config's initial level

Examples:
  match3 play
  match3 play zen
  match3 play --difficulty hard
  match3 play --config ./my-match3.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// gameIDFor maps a mode name or registry ID to a registry ID.
func gameIDFor(arg string) string {
	switch arg {
	case "", string(match3.ModeClassic):
		return match3.IDClassic
	case string(match3.ModeZen):
		return match3.IDZen
	}
	return arg
}

// modeName is the inverse of gameIDFor for registered modes.
func modeName(id string) string {
	switch id {
	case match3.IDClassic:
		return string(match3.ModeClassic)
	case match3.IDZen:
		return string(match3.ModeZen)
	}
	return id
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID := gameIDFor(arg)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", arg)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	// Set config path and difficulty before creation
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if m3, ok := game.(*match3.Game); ok && m3.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", m3.Err())
		os.Exit(1)
	}
}
