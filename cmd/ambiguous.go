package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/report"
	"github.com/fencekor/fenceid/internal/storage"
)

var ambiguousCmd = &cobra.Command{
	Use:   "ambiguous",
	Short: "List names that resolved to more than one person",
	Args:  cobra.NoArgs,
	RunE:  runAmbiguous,
}

func runAmbiguous(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	names, err := db.AmbiguousNames()
	if err != nil {
		return fmt.Errorf("list ambiguous names: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "No ambiguous names: every name resolved to a single person.")
		return nil
	}

	entries := make(map[string][]report.PlayerLine, len(names))
	for _, name := range names {
		rows, err := db.PlayersByName(name)
		if err != nil {
			return fmt.Errorf("load identities for %s: %w", name, err)
		}
		entries[name] = playerLines(rows)
	}

	fmt.Fprintf(os.Stdout, "%d ambiguous names:\n\n", len(names))
	report.PrintAmbiguousNames(os.Stdout, entries)
	return nil
}
