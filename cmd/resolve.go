package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fencekor/fenceid/internal/ingest"
	"github.com/fencekor/fenceid/internal/intlname"
	"github.com/fencekor/fenceid/internal/model"
	"github.com/fencekor/fenceid/internal/orgs"
	"github.com/fencekor/fenceid/internal/resolver"
	"github.com/fencekor/fenceid/internal/storage"
)

var resolveCountry string

var resolveCmd = &cobra.Command{
	Use:   "resolve <dump.json|dump.json.zst> [...]",
	Short: "Ingest scraper dumps and re-resolve all player identities",
	Long: "Flatten one or more scraper competition dumps into appearance records, " +
		"run identity resolution over everything ingested so far, and store the " +
		"resulting profiles.",
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCountry, "country", "KO", "ISO country code used in minted IDs")
}

func runResolve(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	r := resolver.New(resolveCountry)

	// Resolution is global: previously ingested records take part again so
	// IDs stay stable across incremental ingests.
	previous, err := db.LoadRawRecords()
	if err != nil {
		return fmt.Errorf("load stored records: %w", err)
	}
	r.AddRecords(previous)

	ingested := 0
	for _, path := range args {
		dump, err := ingest.LoadFile(path)
		if err != nil {
			return err
		}
		for _, comp := range dump.Competitions {
			meta := comp.Competition
			exists, err := db.CompetitionExists(meta.EventCD)
			if err != nil {
				return fmt.Errorf("check competition %s: %w", meta.EventCD, err)
			}
			if exists {
				fmt.Fprintf(os.Stdout, "Skipping %s (%s): already ingested\n", meta.EventCD, meta.Name)
				continue
			}

			records := ingest.Flatten(comp)
			r.AddRecords(records)
			if err := db.InsertRawRecords(records); err != nil {
				return fmt.Errorf("store records for %s: %w", meta.EventCD, err)
			}
			err = db.InsertCompetition(model.CompetitionSummary{
				CompID:    meta.EventCD,
				Name:      meta.Name,
				StartDate: meta.StartDate,
				Records:   len(records),
			})
			if err != nil {
				return fmt.Errorf("store competition %s: %w", meta.EventCD, err)
			}
			ingested++
			fmt.Fprintf(os.Stdout, "Ingested %s (%s): %d records\n", meta.EventCD, meta.Name, len(records))
		}
	}

	special := r.ResolveIdentities()
	profiles := r.Profiles()

	registry := orgs.NewRegistry(resolveCountry)
	for _, p := range profiles {
		for _, rec := range p.Records {
			if rec.Team != "" {
				registry.RecordSighting(rec.Team, rec.CompID, rec.CompDate, p.PlayerID)
			}
		}
	}
	r.PopulateTeamInfo(orgDirectory{registry})
	r.PopulateEnglishNames(nameDirectory{intlname.NewManager()})

	if err := db.SavePlayers(profiles); err != nil {
		return fmt.Errorf("store players: %w", err)
	}
	if err := db.SaveOrganizations(registry.All()); err != nil {
		return fmt.Errorf("store organizations: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\nResolved %d identities (%d ambiguous names, %d pinned IDs) from %d new competitions\n",
		len(profiles), len(r.AmbiguousNames()), special, ingested)
	return nil
}

// orgDirectory adapts the organization registry to the resolver's
// enrichment interface.
type orgDirectory struct {
	reg *orgs.Registry
}

func (d orgDirectory) GetOrCreateOrganization(name string) (resolver.OrgInfo, error) {
	o := d.reg.GetOrCreate(name)
	return resolver.OrgInfo{OrgID: o.OrgID, NameEN: o.NameEN}, nil
}

// nameDirectory adapts the English-name manager to the resolver's
// enrichment interface.
type nameDirectory struct {
	mgr *intlname.Manager
}

func (d nameDirectory) EnglishName(koreanName string) (resolver.EnglishName, bool) {
	best, ok := d.mgr.Best(koreanName)
	if !ok {
		return resolver.EnglishName{}, false
	}
	en := resolver.EnglishName{
		FullName: best.FullName,
		Verified: best.Source == "verified",
	}
	if m, ok := d.mgr.Lookup(koreanName); ok {
		en.FIEID = m.FIEID
		en.FencingTrackerID = m.FencingTrackerID
	}
	return en, true
}
