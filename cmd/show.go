package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/report"
	"github.com/fencekor/fenceid/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <player-id>",
	Short: "Show one player's full identity card",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	row, err := db.GetPlayer(args[0])
	if err != nil {
		return fmt.Errorf("load player: %w", err)
	}
	if row == nil {
		return fmt.Errorf("no player with ID %q", args[0])
	}

	report.PrintPlayerDetail(os.Stdout, report.PlayerLine{
		Profile:      row.PlayerProfile,
		Competitions: row.CompetitionCount,
		Records:      row.RecordCount,
	})
	return nil
}
