package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/resolver"
	"github.com/fencekor/fenceid/internal/storage"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all resolved identities as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "output file ('-' for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.ListPlayers()
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	ambiguous, err := db.AmbiguousNames()
	if err != nil {
		return fmt.Errorf("list ambiguous names: %w", err)
	}

	doc := resolver.Document{
		Profiles:       make(map[string]resolver.ExportedProfile, len(rows)),
		NameIndex:      make(map[string][]string),
		AmbiguousNames: ambiguous,
	}
	for _, row := range rows {
		doc.Profiles[row.PlayerID] = exportedProfile(row)
		doc.NameIndex[row.Name] = append(doc.NameIndex[row.Name], row.PlayerID)
	}

	w := os.Stdout
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if exportOut != "-" {
		fmt.Fprintf(os.Stdout, "Exported %d profiles to %s\n", len(doc.Profiles), exportOut)
	}
	return nil
}

func exportedProfile(row storage.PlayerRow) resolver.ExportedProfile {
	p := row.PlayerProfile
	return resolver.ExportedProfile{
		PlayerID:         p.PlayerID,
		Name:             p.Name,
		NameEN:           p.NameEN,
		NameENVerified:   p.NameENVerified,
		FIEID:            p.FIEID,
		FencingTrackerID: p.FencingTrackerID,
		CurrentTeam:      p.CurrentTeam(),
		TeamHistory:      p.TeamHistory,
		Weapons:          p.SortedWeapons(),
		AgeGroups:        p.SortedAgeGroups(),
		Competitions:     row.CompetitionCount,
		RecordCount:      row.RecordCount,
		PodiumBySeason:   p.PodiumBySeason,
	}
}
