package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/report"
	"github.com/fencekor/fenceid/internal/storage"
)

var playersName string

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List resolved player identities",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersName, "name", "", "only identities resolved under this exact Korean name")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	var rows []storage.PlayerRow
	if playersName != "" {
		rows, err = db.PlayersByName(playersName)
	} else {
		rows, err = db.ListPlayers()
	}
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No players resolved yet. Run 'fenceid resolve <dump.json>' first.")
		return nil
	}

	report.PrintPlayerTable(os.Stdout, playerLines(rows))
	return nil
}

func playerLines(rows []storage.PlayerRow) []report.PlayerLine {
	lines := make([]report.PlayerLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, report.PlayerLine{
			Profile:      row.PlayerProfile,
			Competitions: row.CompetitionCount,
			Records:      row.RecordCount,
		})
	}
	return lines
}
