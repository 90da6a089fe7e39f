// Package orgs assigns stable organization IDs and English names to the
// team strings appearing on competition rosters. IDs take the form
// {country}{type}{NNNN}, e.g. KOC0001 for the first Korean club or KOH0015
// for the fifteenth high school.
package orgs

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/fencekor/fenceid/internal/hangul"
)

// Type is the one-letter organization type code used inside IDs.
type Type string

const (
	TypeClub         Type = "C"
	TypeMiddleSchool Type = "M"
	TypeHighSchool   Type = "H"
	TypeUniversity   Type = "V"
	TypeProfessional Type = "A" // company and city-hall teams
	TypeNational     Type = "N"
	TypeUnknown      Type = "X"
)

func (t Type) String() string {
	switch t {
	case TypeClub:
		return "club"
	case TypeMiddleSchool:
		return "middle_school"
	case TypeHighSchool:
		return "high_school"
	case TypeUniversity:
		return "university"
	case TypeProfessional:
		return "professional"
	case TypeNational:
		return "national"
	}
	return "unknown"
}

// Organization is one registered team.
type Organization struct {
	OrgID            string              `json:"org_id"`
	Name             string              `json:"name"`
	NameEN           string              `json:"name_en,omitempty"`
	NameENVerified   bool                `json:"name_en_verified"`
	Country          string              `json:"country"`
	Type             Type                `json:"org_type"`
	Region           string              `json:"region,omitempty"`
	RegionEN         string              `json:"region_en,omitempty"`
	PlayerIDs        map[string]struct{} `json:"-"`
	FirstSeen        string              `json:"first_seen,omitempty"`
	LastSeen         string              `json:"last_seen,omitempty"`
	CompetitionCount int                 `json:"competition_count"`

	comps map[string]struct{}
}

// PlayerCount returns the number of distinct players seen for the team.
func (o *Organization) PlayerCount() int {
	return len(o.PlayerIDs)
}

// Registry mints organization IDs and keeps every registered team. It is
// not safe for concurrent use.
type Registry struct {
	country  string
	orgs     map[string]*Organization
	byName   map[string]string
	order    []string
	counters map[Type]int
}

// NewRegistry returns a Registry minting IDs under the given country code.
func NewRegistry(country string) *Registry {
	return &Registry{
		country:  country,
		orgs:     make(map[string]*Organization),
		byName:   make(map[string]string),
		counters: make(map[Type]int),
	}
}

// GetOrCreate returns the organization registered under name, creating and
// classifying it on first sight. Repeated calls with the same name return
// the same record.
func (r *Registry) GetOrCreate(name string) *Organization {
	name = strings.TrimSpace(name)
	if id, ok := r.byName[name]; ok {
		return r.orgs[id]
	}

	typ := DetectType(name)
	nameEN := ConvertToEnglish(name)
	verified := false
	if v, ok := verifiedOrgs[name]; ok {
		typ = v.Type
		nameEN = v.NameEN
		verified = true
	}
	region, regionEN := extractRegion(name)

	r.counters[typ]++
	org := &Organization{
		OrgID:          mintOrgID(r.country, typ, r.counters[typ]),
		Name:           name,
		NameEN:         nameEN,
		NameENVerified: verified,
		Country:        r.country,
		Type:           typ,
		Region:         region,
		RegionEN:       regionEN,
		PlayerIDs:      make(map[string]struct{}),
		comps:          make(map[string]struct{}),
	}
	r.orgs[org.OrgID] = org
	r.byName[name] = org.OrgID
	r.order = append(r.order, org.OrgID)
	return org
}

// RecordSighting folds one roster sighting into the team's stats. Each
// competition counts once no matter how many records carried the team.
func (r *Registry) RecordSighting(name, compID, date, playerID string) {
	org := r.GetOrCreate(name)
	if org.FirstSeen == "" || date < org.FirstSeen {
		org.FirstSeen = date
	}
	if date > org.LastSeen {
		org.LastSeen = date
	}
	if compID != "" {
		if _, ok := org.comps[compID]; !ok {
			org.comps[compID] = struct{}{}
			org.CompetitionCount++
		}
	}
	if playerID != "" {
		org.PlayerIDs[playerID] = struct{}{}
	}
}

// ByID returns the organization with the given ID, or nil.
func (r *Registry) ByID(id string) *Organization {
	return r.orgs[id]
}

// ByName returns the organization registered under name, or nil.
func (r *Registry) ByName(name string) *Organization {
	if id, ok := r.byName[strings.TrimSpace(name)]; ok {
		return r.orgs[id]
	}
	return nil
}

// All returns every organization in registration order.
func (r *Registry) All() []*Organization {
	out := make([]*Organization, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.orgs[id])
	}
	return out
}

// Search returns up to limit organizations whose Korean or English name
// contains the query, busiest teams first.
func (r *Registry) Search(query string, limit int) []*Organization {
	q := strings.ToLower(query)
	var out []*Organization
	for _, org := range r.All() {
		if strings.Contains(strings.ToLower(org.Name), q) ||
			strings.Contains(strings.ToLower(org.NameEN), q) {
			out = append(out, org)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayerCount() > out[j].PlayerCount()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Stats summarizes the registry.
type Stats struct {
	Total    int
	ByType   map[Type]int
	Verified int
}

// Summarize counts organizations per type.
func (r *Registry) Summarize() Stats {
	s := Stats{Total: len(r.orgs), ByType: make(map[Type]int)}
	for _, org := range r.orgs {
		s.ByType[org.Type]++
		if org.NameENVerified {
			s.Verified++
		}
	}
	return s
}

func mintOrgID(country string, typ Type, n int) string {
	return fmt.Sprintf("%s%s%04d", country, string(typ), n)
}

// DetectType classifies a team string by keyword, most specific school
// level first.
func DetectType(name string) Type {
	for _, row := range typeKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(name, kw) {
				return row.typ
			}
		}
	}
	return TypeUnknown
}

// Keyword lists sorted longest-first, so compound terms win over the short
// terms they contain.
var (
	regionKeys  = keysByLength(regionKeySet())
	orgTermKeys = keysByLength(orgTermKeySet())
)

func regionKeySet() []string {
	out := make([]string, 0, len(regions))
	for k := range regions {
		out = append(out, k)
	}
	return out
}

func orgTermKeySet() []string {
	out := make([]string, 0, len(orgTerms))
	for k := range orgTerms {
		out = append(out, k)
	}
	return out
}

func keysByLength(keys []string) []string {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func extractRegion(name string) (string, string) {
	for _, ko := range regionKeys {
		if strings.Contains(name, ko) {
			return ko, regions[ko]
		}
	}
	return "", ""
}

var hangulRun = regexp.MustCompile(`[가-힣]+`)

// ConvertToEnglish builds an English rendering of a Korean team name:
// verified mapping first, then region and organization-term substitution,
// then romanization of whatever hangul is left.
func ConvertToEnglish(name string) string {
	if v, ok := verifiedOrgs[name]; ok {
		return v.NameEN
	}

	result := name
	for _, ko := range regionKeys {
		if strings.Contains(result, ko) {
			result = strings.ReplaceAll(result, ko, regions[ko]+" ")
			break
		}
	}
	for _, ko := range orgTermKeys {
		if strings.Contains(result, ko) {
			result = strings.ReplaceAll(result, ko, " "+orgTerms[ko])
		}
	}
	result = strings.Join(strings.Fields(result), " ")

	if hangul.HasHangul(result) {
		result = hangulRun.ReplaceAllStringFunc(result, hangul.RomanizeTitle)
	}
	return result
}
