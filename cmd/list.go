package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ingested competitions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	comps, err := db.ListCompetitions()
	if err != nil {
		return fmt.Errorf("list competitions: %w", err)
	}
	if len(comps) == 0 {
		fmt.Fprintln(os.Stdout, "No competitions ingested yet. Run 'fenceid resolve <dump.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-10s  %8s  %s\n", "ID", "DATE", "RECORDS", "NAME")
	fmt.Fprintf(os.Stdout, "%-12s  %-10s  %8s  %s\n", "────────────", "──────────", "────────", "────")
	for _, c := range comps {
		fmt.Fprintf(os.Stdout, "%-12s  %-10s  %8d  %s\n", c.CompID, c.StartDate, c.Records, c.Name)
	}
	return nil
}
