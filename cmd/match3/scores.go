package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresAll     bool
	flagScoresClear   bool
	flagScoresSummary bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|zen]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 results for the given mode (classic when omitted),
followed by totals across every game played in that mode.

Examples:
  match3 scores
  match3 scores zen --all
  match3 scores --summary
  match3 scores zen --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every result instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresSummary, "summary", false, "Show totals for every mode")
}

func runScores(cmd *cobra.Command, args []string) {
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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresSummary:
		printSummary(store)
		return
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all %s results.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", modeName(gameID))
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "Moves", "Cascades", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "-----", "--------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-10s  %-8d  %-5d  %-5d  %-8d  %s\n",
			i+1, e.PlayerName(), e.Score, e.Level, e.Moves, e.Cascades, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil || stats == nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Best level: %d  Total moves: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalMoves)
}

// printSummary prints one line of totals per mode that has results.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-5s  %-8s  %-8s  %-5s  %s\n", "Mode", "Games", "Best", "Average", "Level", "Last played")
	fmt.Printf("  %-8s  %-5s  %-8s  %-8s  %-5s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-8d  %-8.0f  %-5d  %s\n",
			modeName(info.ID), st.GamesCount, st.HighScore, st.AvgScore, st.BestLevel, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
