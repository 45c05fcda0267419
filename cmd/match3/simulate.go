package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	match3core "github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagSimMoves   int
	flagSimSize    int
	flagSimTokens  int
	flagSimMode    string
	flagSimConfig  string
	flagSimVerbose bool
	flagSimSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the hint bot play a game",
	Long: `Play a game without a terminal UI. The bot always takes the hinted
swap, so the same seed and config always produce the same game.

Examples:
  match3 simulate --seed 42
  match3 simulate --seed 7 --moves 200 --size 10 --tokens 6
  match3 simulate --mode zen --verbose
  match3 simulate --seed 1 --save
  match3 simulate --difficulty hard --moves 100`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 50, "Maximum number of swaps")
	simulateCmd.Flags().IntVar(&flagSimSize, "size", 0, "Board size (0 = from config)")
	simulateCmd.Flags().IntVar(&flagSimTokens, "tokens", 0, "Number of token kinds (0 = from config)")
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", string(match3.ModeClassic), "Session rules: classic or zen")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every swap")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the result in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "simulate",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagSimMoves < 0 {
		logger.Fatal("--moves must not be negative", "moves", flagSimMoves)
	}

	cfg, err := simulateConfig(flagSimConfig, flagDifficulty, flagSimSize, flagSimTokens)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	mode := match3.Mode(flagSimMode)
	if mode != match3.ModeClassic && mode != match3.ModeZen {
		logger.Fatal("unknown mode", "mode", flagSimMode)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := match3.NewWithConfig(mode, cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.Board.Size*4 + 2,
		ScreenH:  cfg.Board.Size + 10,
		TickRate: flagFPS,
		Seed:     seed,
	})
	if err := game.Err(); err != nil {
		logger.Fatal("cannot start game", "err", err)
	}
	logger.Info("starting", "mode", mode, "seed", seed, "size", cfg.Board.Size, "tokens", cfg.Board.Tokens)

	reports, err := match3.NewBot(game, logger).Play(flagSimMoves)
	if err != nil {
		logger.Fatal("bot failed", "err", err)
	}

	snap := game.Snapshot()
	if grid, err := match3core.FromRows(snap.Grid); err == nil {
		fmt.Println(grid.String())
	}

	best := 0
	for _, r := range reports {
		best = max(best, r.Steps)
	}

	fmt.Printf("Moves:      %d\n", snap.Moves)
	fmt.Printf("Score:      %d\n", snap.Score)
	fmt.Printf("Level:      %d (%d%%)\n", snap.Level, snap.Progress)
	fmt.Printf("Cascades:   %d (longest chain %d)\n", snap.Cascades, best)
	fmt.Printf("Reshuffles: %d\n", snap.Reshuffles)
	if snap.Reason != "" {
		fmt.Printf("Ended:      %s\n", snap.Reason)
	}

	if !flagSimSave || snap.Score == 0 {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "err", err)
	}
	defer store.Close()

	res := game.Result()
	if _, err := store.SaveResult(storage.Result{
		GameID:   game.ID(),
		Score:    res.Score,
		Level:    res.Level,
		Moves:    res.Moves,
		Cascades: res.Cascades,
	}); err != nil {
		logger.Error("cannot save result", "err", err)
		return
	}
	logger.Info("result saved", "game", game.ID(), "score", res.Score)
}

// simulateConfig is the effective config with the board overrides applied.
// Zero size or tokens keep the configured value.
func simulateConfig(path, preset string, size, tokens int) (config.Match3Config, error) {
	cfg, err := effectiveConfig(path, preset)
	if err != nil {
		return cfg, err
	}
	if size > 0 {
		cfg.Board.Size = size
	}
	if tokens > 0 {
		cfg.Board.Tokens = tokens
	}
	return cfg, cfg.Validate()
}
