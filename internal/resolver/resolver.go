// Package resolver turns raw appearance records into stable player
// identities. Records sharing a name are partitioned by gender, split at
// impossible age regressions, partitioned by weapon, and finally merged
// under constraints that keep provably distinct people apart.
package resolver

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/fencekor/fenceid/internal/ingest"
	"github.com/fencekor/fenceid/internal/model"
)

// Resolver accumulates appearance records and resolves them into player
// profiles. It is not safe for concurrent use.
type Resolver struct {
	country string
	log     *slog.Logger

	groups    map[string][]model.Appearance
	nameOrder []string
	comps     map[string]*model.CompetitionSummary
	compOrder []string

	ids     *idGenerator
	special map[string]SpecialPlayer

	profiles       map[string]*model.PlayerProfile
	nameToProfiles map[string][]string
	resolved       bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger attaches a structured logger for resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// WithSpecialPlayers overrides the pinned-ID table.
func WithSpecialPlayers(m map[string]SpecialPlayer) Option {
	return func(r *Resolver) { r.special = m }
}

// New returns a Resolver minting IDs under the given country code.
func New(country string, opts ...Option) *Resolver {
	r := &Resolver{
		country:        country,
		log:            slog.New(slog.DiscardHandler),
		groups:         make(map[string][]model.Appearance),
		comps:          make(map[string]*model.CompetitionSummary),
		ids:            newIDGenerator(country),
		special:        defaultSpecialPlayers,
		profiles:       make(map[string]*model.PlayerProfile),
		nameToProfiles: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddCompetition flattens one scraped competition into the resolver.
func (r *Resolver) AddCompetition(comp ingest.Competition) {
	r.AddRecords(ingest.Flatten(comp))
}

// AddRecords feeds raw appearance records into the resolver. Records added
// after ResolveIdentities are picked up by the next resolution.
func (r *Resolver) AddRecords(records []model.Appearance) {
	for _, rec := range records {
		if _, ok := r.groups[rec.Name]; !ok {
			r.nameOrder = append(r.nameOrder, rec.Name)
		}
		r.groups[rec.Name] = append(r.groups[rec.Name], rec)

		if rec.CompID != "" {
			cs := r.comps[rec.CompID]
			if cs == nil {
				cs = &model.CompetitionSummary{
					CompID:    rec.CompID,
					Name:      rec.CompName,
					StartDate: rec.CompDate,
				}
				r.comps[rec.CompID] = cs
				r.compOrder = append(r.compOrder, rec.CompID)
			}
			cs.Records++
		}
	}
	r.resolved = false
}

// ResolveIdentities runs the full pipeline over every name group and
// rebuilds all profiles. It returns the number of profiles re-keyed to a
// pinned special ID. The same input always yields the same profiles and IDs.
func (r *Resolver) ResolveIdentities() int {
	r.profiles = make(map[string]*model.PlayerProfile)
	r.nameToProfiles = make(map[string][]string)
	r.ids.beginRun()

	for _, name := range r.nameOrder {
		records := append([]model.Appearance(nil), r.groups[name]...)
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CompDate < records[j].CompDate
		})
		r.resolveName(name, records)
	}

	n := r.assignSpecialIDs()
	r.resolved = true
	r.log.Info("resolution complete",
		"names", len(r.nameOrder),
		"profiles", len(r.profiles),
		"special", n)
	return n
}

// resolveName runs the partition pipeline for one name group. Age-regression
// splits re-enter the worklist so each half is re-partitioned from scratch.
func (r *Resolver) resolveName(name string, records []model.Appearance) {
	queue := [][]model.Appearance{records}
	for len(queue) > 0 {
		batch := queue[0]
		queue = queue[1:]

		buckets := partitionByGender(batch)
		for _, g := range genderOrder {
			recs := buckets[g]
			if len(recs) == 0 {
				continue
			}
			if date, ok := findAgeRegressionSplit(recs); ok {
				before, after := splitByDate(recs, date)
				if len(before) > 0 && len(after) > 0 {
					r.log.Debug("age regression split",
						"name", name, "date", date,
						"before", len(before), "after", len(after))
					queue = append(queue, before, after)
					continue
				}
			}
			for _, part := range partitionByWeapon(recs) {
				r.resolvePartition(name, part)
			}
		}
	}
}

// resolvePartition merges the teams of one partition into identity
// components and builds a profile per component.
func (r *Resolver) resolvePartition(name string, records []model.Appearance) {
	if len(records) == 0 {
		return
	}

	teams, teamless := buildTeamInfos(records)
	if len(teams) == 0 {
		p := r.newProfile(name, "")
		r.fillProfile(p, teamless)
		return
	}

	overlaps := findOverlappingTeams(records)
	addPseudoOverlaps(teams, overlaps)
	comps := mergeTeams(teams, overlaps)

	if len(comps) > 1 {
		r.log.Debug("homonym split", "name", name, "people", len(comps))
	}

	for ci, comp := range comps {
		// Teams inside a component keep first-appearance order, so the
		// component's first team seeds the ID.
		p := r.newProfile(name, comp[0].name)
		for _, ti := range comp {
			r.fillProfile(p, ti.records)
		}
		// Teamless records cannot disambiguate between people; they fold
		// into the earliest identity.
		if ci == 0 {
			r.fillProfile(p, teamless)
		}
	}
}

func (r *Resolver) newProfile(name, firstTeam string) *model.PlayerProfile {
	id := r.ids.playerID(name, firstTeam)
	p := model.NewPlayerProfile(id, name)
	r.profiles[id] = p
	r.nameToProfiles[name] = append(r.nameToProfiles[name], id)
	return p
}

// fillProfile folds appearance records into a profile. Team sightings are
// counted once per competition.
func (r *Resolver) fillProfile(p *model.PlayerProfile, records []model.Appearance) {
	seen := make(map[string]struct{})
	for _, rec := range records {
		key := rec.CompID + "\x00" + rec.Team
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			p.AddTeam(rec.Team, rec.CompDate)
		}
		if rec.CompID != "" {
			p.CompetitionIDs[rec.CompID] = struct{}{}
		}
		if rec.Weapon != "" {
			p.Weapons[rec.Weapon] = struct{}{}
		}
		if rec.AgeGroup != "" {
			p.AgeGroups[rec.AgeGroup] = struct{}{}
		}
		if rec.Type == model.RecordRanking {
			p.AddPodium(rec.Season(), rec.Rank)
		}
		p.Records = append(p.Records, rec)
	}
}

// assignSpecialIDs re-keys profiles matching the pinned-ID table. Names are
// visited in sorted order so the pass is deterministic.
func (r *Resolver) assignSpecialIDs() int {
	names := make([]string, 0, len(r.special))
	for name := range r.special {
		names = append(names, name)
	}
	sort.Strings(names)

	count := 0
	for _, name := range names {
		sp := r.special[name]
		if _, taken := r.profiles[sp.ID]; taken {
			continue
		}
		for _, oldID := range r.nameToProfiles[name] {
			p := r.profiles[oldID]
			if p == nil || !hasAnyTeam(p, sp.Teams) {
				continue
			}
			delete(r.profiles, oldID)
			p.PlayerID = sp.ID
			r.profiles[sp.ID] = p
			ids := r.nameToProfiles[name]
			for i, id := range ids {
				if id == oldID {
					ids[i] = sp.ID
				}
			}
			r.log.Info("special id assigned", "name", name, "id", sp.ID, "was", oldID)
			count++
			break
		}
	}
	return count
}

func hasAnyTeam(p *model.PlayerProfile, teams []string) bool {
	for _, t := range teams {
		if p.HasTeam(t) {
			return true
		}
	}
	return false
}

// Profiles returns every resolved profile sorted by player ID.
func (r *Resolver) Profiles() []*model.PlayerProfile {
	out := make([]*model.PlayerProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// PlayerByID returns the profile with the given ID, or nil.
func (r *Resolver) PlayerByID(id string) *model.PlayerProfile {
	return r.profiles[id]
}

// PlayersByName returns every profile resolved under a name, in resolution
// order. More than one profile means the name is a homonym.
func (r *Resolver) PlayersByName(name string) []*model.PlayerProfile {
	ids := r.nameToProfiles[name]
	out := make([]*model.PlayerProfile, 0, len(ids))
	for _, id := range ids {
		if p := r.profiles[id]; p != nil {
			out = append(out, p)
		}
	}
	return out
}

// HasDisambiguation reports whether a name resolved to multiple people.
func (r *Resolver) HasDisambiguation(name string) bool {
	return len(r.nameToProfiles[name]) > 1
}

// AmbiguousNames returns the sorted list of names that resolved to more than
// one person.
func (r *Resolver) AmbiguousNames() []string {
	var out []string
	for name, ids := range r.nameToProfiles {
		if len(ids) > 1 {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// SearchPlayers returns profiles whose name contains the query or whose
// current team contains it. With includeHistory, past teams match too.
// Results are sorted by player ID.
func (r *Resolver) SearchPlayers(query string, includeHistory bool) []*model.PlayerProfile {
	var out []*model.PlayerProfile
	for _, p := range r.Profiles() {
		if containsFold(p.Name, query) || containsFold(p.NameEN, query) {
			out = append(out, p)
			continue
		}
		if includeHistory {
			for _, t := range p.TeamHistory {
				if containsFold(t.Team, query) {
					out = append(out, p)
					break
				}
			}
		} else if containsFold(p.CurrentTeam(), query) {
			out = append(out, p)
		}
	}
	return out
}

// Competitions returns ingested competition summaries in ingestion order.
func (r *Resolver) Competitions() []model.CompetitionSummary {
	out := make([]model.CompetitionSummary, 0, len(r.compOrder))
	for _, id := range r.compOrder {
		out = append(out, *r.comps[id])
	}
	return out
}

func containsFold(s, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
