package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/report"
	"github.com/fencekor/fenceid/internal/storage"
)

var searchHistory bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search players by name or team",
	Long: "Match players whose Korean name, English name, or current team " +
		"contains the query. With --history, past teams match too.",
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchHistory, "history", false, "also match past teams")
}

func runSearch(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.SearchPlayers(args[0], searchHistory)
	if err != nil {
		return fmt.Errorf("search players: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stdout, "No players matching %q\n", args[0])
		return nil
	}

	report.PrintPlayerTable(os.Stdout, playerLines(rows))
	return nil
}
