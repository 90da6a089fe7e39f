package resolver

import "github.com/fencekor/fenceid/internal/model"

// ExportedProfile is the JSON shape of one resolved identity.
type ExportedProfile struct {
	PlayerID         string                         `json:"player_id"`
	Name             string                         `json:"name"`
	NameEN           string                         `json:"name_en,omitempty"`
	NameENVerified   bool                           `json:"name_en_verified,omitempty"`
	FIEID            string                         `json:"fie_id,omitempty"`
	FencingTrackerID string                         `json:"fencingtracker_id,omitempty"`
	CurrentTeam      string                         `json:"current_team,omitempty"`
	TeamHistory      []*model.TeamRecord            `json:"team_history"`
	Weapons          []string                       `json:"weapons"`
	AgeGroups        []string                       `json:"age_groups"`
	Competitions     int                            `json:"competitions"`
	RecordCount      int                            `json:"record_count"`
	PodiumBySeason   map[string]*model.PodiumCounts `json:"podium_by_season,omitempty"`
}

// Document is the full export of a resolution run.
type Document struct {
	Profiles       map[string]ExportedProfile `json:"profiles"`
	NameIndex      map[string][]string        `json:"name_index"`
	AmbiguousNames []string                   `json:"ambiguous_names"`
}

// Export snapshots the resolved state into an export document. Records added
// since the last resolution are resolved first.
func (r *Resolver) Export() *Document {
	if !r.resolved {
		r.ResolveIdentities()
	}
	doc := &Document{
		Profiles:       make(map[string]ExportedProfile, len(r.profiles)),
		NameIndex:      make(map[string][]string, len(r.nameToProfiles)),
		AmbiguousNames: r.AmbiguousNames(),
	}
	for _, p := range r.Profiles() {
		doc.Profiles[p.PlayerID] = ExportedProfile{
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
			Competitions:     len(p.CompetitionIDs),
			RecordCount:      len(p.Records),
			PodiumBySeason:   p.PodiumBySeason,
		}
	}
	for name, ids := range r.nameToProfiles {
		doc.NameIndex[name] = append([]string(nil), ids...)
	}
	return doc
}
