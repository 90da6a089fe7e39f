package model

import "sort"

// Gender is the inferred gender of an appearance record, read from the
// event name. It is an immutable property of a person: a resolved profile
// never mixes male- and female-tagged records.
type Gender int

const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return "?"
	}
}

// TeamType classifies a team string into the track it belongs to.
type TeamType int

const (
	TeamClub       TeamType = 0
	TeamElementary TeamType = 1
	TeamMiddle     TeamType = 2
	TeamHigh       TeamType = 3
	TeamUniversity TeamType = 4
)

func (t TeamType) String() string {
	switch t {
	case TeamElementary:
		return "elementary"
	case TeamMiddle:
		return "middle"
	case TeamHigh:
		return "high"
	case TeamUniversity:
		return "university"
	default:
		return "club"
	}
}

// SchoolLevel returns the progression level of a school-track team type
// (elementary=1 … university=4). Clubs are a separate track and return 0.
func (t TeamType) SchoolLevel() int {
	return int(t)
}

// IsSchool reports whether the team type is on the school track.
func (t TeamType) IsSchool() bool {
	return t != TeamClub
}

// RecordType says which part of a competition an appearance was scraped from.
type RecordType string

const (
	RecordPool      RecordType = "pool"
	RecordRanking   RecordType = "ranking"
	RecordDESeeding RecordType = "de_seeding"
)

// Appearance is one raw appearance of a (name, team) pair in a competition,
// flattened out of the scraper's competition/event/round structure. It is
// never mutated after ingestion.
type Appearance struct {
	Name      string
	Team      string
	CompID    string
	CompName  string
	CompDate  string // ISO date string, lexicographically ordered
	EventName string
	Weapon    string
	AgeGroup  string
	Type      RecordType
	Rank      int // final ranking position; 0 when not a ranking record
}

// Season returns the season (year) the appearance belongs to, or "Unknown".
func (a Appearance) Season() string {
	if len(a.CompDate) >= 4 {
		return a.CompDate[:4]
	}
	return "Unknown"
}

// TeamRecord is one team affiliation inside a player's history. The
// first/last seen range only ever widens as records are folded in.
type TeamRecord struct {
	Team             string `json:"team"`
	TeamID           string `json:"team_id,omitempty"`
	TeamEN           string `json:"team_en,omitempty"`
	FirstSeen        string `json:"first_seen"`
	LastSeen         string `json:"last_seen"`
	CompetitionCount int    `json:"competition_count"`
}

// PodiumCounts aggregates final-ranking finishes for one season.
type PodiumCounts struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
	Top8   int `json:"top8"`
	Total  int `json:"total"`
}

// PlayerProfile is one resolved identity: every appearance attributed to a
// single real person, with team history ordered by first appearance.
type PlayerProfile struct {
	PlayerID string
	Name     string

	NameEN           string
	NameENVerified   bool
	FIEID            string
	FencingTrackerID string

	TeamHistory []*TeamRecord

	CompetitionIDs map[string]struct{}
	Records        []Appearance

	Weapons   map[string]struct{}
	AgeGroups map[string]struct{}

	PodiumBySeason map[string]*PodiumCounts
}

// NewPlayerProfile returns an empty profile for the given identity.
func NewPlayerProfile(playerID, name string) *PlayerProfile {
	return &PlayerProfile{
		PlayerID:       playerID,
		Name:           name,
		CompetitionIDs: make(map[string]struct{}),
		Weapons:        make(map[string]struct{}),
		AgeGroups:      make(map[string]struct{}),
		PodiumBySeason: make(map[string]*PodiumCounts),
	}
}

// CurrentTeam returns the most recently seen team, or "" for a profile with
// no team history.
func (p *PlayerProfile) CurrentTeam() string {
	if len(p.TeamHistory) == 0 {
		return ""
	}
	return p.TeamHistory[len(p.TeamHistory)-1].Team
}

// Teams returns the unique team strings in history order.
func (p *PlayerProfile) Teams() []string {
	out := make([]string, 0, len(p.TeamHistory))
	for _, t := range p.TeamHistory {
		out = append(out, t.Team)
	}
	return out
}

// HasTeam reports whether team appears anywhere in the profile's history.
func (p *PlayerProfile) HasTeam(team string) bool {
	for _, t := range p.TeamHistory {
		if t.Team == team {
			return true
		}
	}
	return false
}

// AddTeam folds a (team, date) sighting into the history: widening the seen
// range of an existing affiliation, or appending a new one. History stays
// ordered by FirstSeen.
func (p *PlayerProfile) AddTeam(team, date string) {
	if team == "" {
		return
	}
	for _, rec := range p.TeamHistory {
		if rec.Team == team {
			if date > rec.LastSeen {
				rec.LastSeen = date
			}
			if date < rec.FirstSeen {
				rec.FirstSeen = date
			}
			rec.CompetitionCount++
			return
		}
	}
	p.TeamHistory = append(p.TeamHistory, &TeamRecord{
		Team:             team,
		FirstSeen:        date,
		LastSeen:         date,
		CompetitionCount: 1,
	})
	for i := len(p.TeamHistory) - 1; i > 0; i-- {
		if p.TeamHistory[i].FirstSeen < p.TeamHistory[i-1].FirstSeen {
			p.TeamHistory[i], p.TeamHistory[i-1] = p.TeamHistory[i-1], p.TeamHistory[i]
		} else {
			break
		}
	}
}

// AddPodium records a final-ranking finish into the per-season counts.
func (p *PlayerProfile) AddPodium(season string, rank int) {
	if rank <= 0 {
		return
	}
	counts := p.PodiumBySeason[season]
	if counts == nil {
		counts = &PodiumCounts{}
		p.PodiumBySeason[season] = counts
	}
	switch {
	case rank == 1:
		counts.Gold++
	case rank == 2:
		counts.Silver++
	case rank == 3:
		counts.Bronze++
	case rank <= 8:
		counts.Top8++
	}
	counts.Total++
}

// SortedWeapons returns the profile's weapons as a sorted slice.
func (p *PlayerProfile) SortedWeapons() []string {
	return sortedKeys(p.Weapons)
}

// SortedAgeGroups returns the profile's age groups as a sorted slice.
func (p *PlayerProfile) SortedAgeGroups() []string {
	return sortedKeys(p.AgeGroups)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CompetitionSummary is a lightweight record for the list command.
type CompetitionSummary struct {
	CompID    string
	Name      string
	StartDate string
	Records   int
}
