package resolver

// OrgDirectory assigns stable organization IDs and English renderings to
// team strings.
type OrgDirectory interface {
	GetOrCreateOrganization(name string) (OrgInfo, error)
}

// OrgInfo is the slice of an organization record the resolver needs.
type OrgInfo struct {
	OrgID  string
	NameEN string
}

// NameDirectory resolves Korean athlete names to English renderings.
type NameDirectory interface {
	EnglishName(koreanName string) (EnglishName, bool)
}

// EnglishName is one resolved English rendering, verified or romanized.
type EnglishName struct {
	FullName         string
	Verified         bool
	FIEID            string
	FencingTrackerID string
}

// PopulateTeamInfo stamps organization IDs and English team names onto every
// team-history entry. Enrichment is best effort: a directory error leaves
// that entry untouched. Returns the number of entries enriched.
func (r *Resolver) PopulateTeamInfo(dir OrgDirectory) int {
	n := 0
	for _, p := range r.Profiles() {
		for _, tr := range p.TeamHistory {
			if tr.TeamID != "" {
				continue
			}
			info, err := dir.GetOrCreateOrganization(tr.Team)
			if err != nil {
				r.log.Warn("org lookup failed", "team", tr.Team, "err", err)
				continue
			}
			tr.TeamID = info.OrgID
			tr.TeamEN = info.NameEN
			n++
		}
	}
	return n
}

// PopulateEnglishNames fills in English names, pinning FIE and
// fencingtracker IDs where the rendering is a verified mapping. Returns the
// number of profiles enriched.
func (r *Resolver) PopulateEnglishNames(dir NameDirectory) int {
	n := 0
	for _, p := range r.Profiles() {
		if p.NameEN != "" {
			continue
		}
		en, ok := dir.EnglishName(p.Name)
		if !ok {
			continue
		}
		p.NameEN = en.FullName
		p.NameENVerified = en.Verified
		p.FIEID = en.FIEID
		p.FencingTrackerID = en.FencingTrackerID
		n++
	}
	return n
}
