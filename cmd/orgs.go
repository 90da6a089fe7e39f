package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/report"
	"github.com/fencekor/fenceid/internal/storage"
)

var orgsQuery string

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List registered organizations",
	Args:  cobra.NoArgs,
	RunE:  runOrgs,
}

func init() {
	orgsCmd.Flags().StringVar(&orgsQuery, "query", "", "only organizations whose name contains this text")
}

func runOrgs(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.ListOrganizations()
	if err != nil {
		return fmt.Errorf("list organizations: %w", err)
	}

	var lines []report.OrgLine
	q := strings.ToLower(orgsQuery)
	for _, row := range rows {
		if q != "" &&
			!strings.Contains(strings.ToLower(row.Name), q) &&
			!strings.Contains(strings.ToLower(row.NameEN), q) {
			continue
		}
		lines = append(lines, report.OrgLine{Org: row.Organization, Players: row.PlayerTotal})
	}
	if len(lines) == 0 {
		fmt.Fprintln(os.Stdout, "No organizations found.")
		return nil
	}

	report.PrintOrgTable(os.Stdout, lines)
	return nil
}
