package resolver

import (
	"sort"
	"strconv"

	"github.com/fencekor/fenceid/internal/classify"
	"github.com/fencekor/fenceid/internal/model"
)

// teamInfo aggregates one team's evidence inside a partition: its type, the
// weapons seen there, and the active date range.
type teamInfo struct {
	name      string
	ttype     model.TeamType
	weapons   map[string]struct{}
	firstDate string
	lastDate  string
	records   []model.Appearance
}

// buildTeamInfos groups date-sorted records by team, returning teams ordered
// by first appearance plus the records that carry no team at all.
func buildTeamInfos(records []model.Appearance) ([]*teamInfo, []model.Appearance) {
	byName := make(map[string]*teamInfo)
	var teams []*teamInfo
	var teamless []model.Appearance

	for _, rec := range records {
		if rec.Team == "" {
			teamless = append(teamless, rec)
			continue
		}
		ti := byName[rec.Team]
		if ti == nil {
			ti = &teamInfo{
				name:      rec.Team,
				ttype:     classify.TeamType(rec.Team),
				weapons:   make(map[string]struct{}),
				firstDate: rec.CompDate,
				lastDate:  rec.CompDate,
			}
			byName[rec.Team] = ti
			teams = append(teams, ti)
		}
		if rec.Weapon != "" {
			ti.weapons[rec.Weapon] = struct{}{}
		}
		if rec.CompDate < ti.firstDate {
			ti.firstDate = rec.CompDate
		}
		if rec.CompDate > ti.lastDate {
			ti.lastDate = rec.CompDate
		}
		ti.records = append(ti.records, rec)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].firstDate < teams[j].firstDate
	})
	return teams, teamless
}

// addPseudoOverlaps marks same-level school teams with overlapping active
// ranges as distinct people. Nobody attends two middle schools at once, and
// unlike clubs a concurrent school enrollment cannot be a transfer.
func addPseudoOverlaps(teams []*teamInfo, overlaps overlapSet) {
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			a, b := teams[i], teams[j]
			if !a.ttype.IsSchool() || !b.ttype.IsSchool() {
				continue
			}
			if a.ttype.SchoolLevel() != b.ttype.SchoolLevel() {
				continue
			}
			if rangesOverlap(a, b) {
				overlaps.add(a.name, b.name)
			}
		}
	}
}

// rangesOverlap reports whether two active ranges truly overlap. Ranges that
// merely touch (one ends the day the other starts) count as sequential.
func rangesOverlap(a, b *teamInfo) bool {
	return !(a.lastDate <= b.firstDate || b.lastDate <= a.firstDate)
}

// mergeTeams unions teams that plausibly belong to one person's career and
// returns the resulting components in first-appearance order. Every union is
// constrained: no two teams across the merged components may be a known
// overlap pair.
func mergeTeams(teams []*teamInfo, overlaps overlapSet) [][]*teamInfo {
	uf := newUnionFind(len(teams))
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			if uf.sameSet(i, j) {
				continue
			}
			if !canBeSamePerson(teams[i], teams[j], overlaps) {
				continue
			}
			if !canUnion(uf, teams, i, j, overlaps) {
				continue
			}
			uf.union(i, j)
		}
	}

	compIdx := make(map[int]int)
	var comps [][]*teamInfo
	for i, ti := range teams {
		root := uf.find(i)
		c, ok := compIdx[root]
		if !ok {
			c = len(comps)
			compIdx[root] = c
			comps = append(comps, nil)
		}
		comps[c] = append(comps[c], ti)
	}
	return comps
}

// canUnion checks the components of x and y pairwise: merging them must not
// put any known-overlap team pair into one component.
func canUnion(uf *unionFind, teams []*teamInfo, x, y int, overlaps overlapSet) bool {
	for _, mx := range uf.componentOf(x) {
		for _, my := range uf.componentOf(y) {
			if overlaps.has(teams[mx].name, teams[my].name) {
				return false
			}
		}
	}
	return true
}

// canBeSamePerson applies the merge policy to one team pair.
func canBeSamePerson(a, b *teamInfo, overlaps overlapSet) bool {
	if overlaps.has(a.name, b.name) {
		return false
	}
	if len(a.weapons) > 0 && len(b.weapons) > 0 && !intersects(a.weapons, b.weapons) {
		return false
	}

	aSchool, bSchool := a.ttype.IsSchool(), b.ttype.IsSchool()
	switch {
	case aSchool && bSchool:
		return schoolsCompatible(a, b)
	case !aSchool && !bSchool:
		return clubsCompatible(a, b)
	}
	// A school career and a club career under one name stay separate: club
	// rosters reuse the names of students who never trained there.
	return false
}

// schoolsCompatible allows the natural school progression: a one-level jump
// with sequential date ranges and at most a one-year gap, or a same-level
// transfer with non-overlapping ranges and at most a one-year gap.
func schoolsCompatible(a, b *teamInfo) bool {
	la, lb := a.ttype.SchoolLevel(), b.ttype.SchoolLevel()
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		return false
	}

	// Earlier team must end before the later one starts, in either order.
	switch {
	case a.lastDate <= b.firstDate:
		if diff == 1 && lb < la {
			return false // later team at the lower level is a regression
		}
		return yearGap(a.lastDate, b.firstDate) <= 1
	case b.lastDate <= a.firstDate:
		if diff == 1 && la < lb {
			return false
		}
		return yearGap(b.lastDate, a.firstDate) <= 1
	}
	return false
}

// clubsCompatible allows club-to-club moves: either a clean transfer with at
// most a two-year gap, or a weapon-compatible overlap of at most one year
// (fencers do train at two clubs at once).
func clubsCompatible(a, b *teamInfo) bool {
	switch {
	case a.lastDate <= b.firstDate:
		return yearGap(a.lastDate, b.firstDate) <= 2
	case b.lastDate <= a.firstDate:
		return yearGap(b.lastDate, a.firstDate) <= 2
	}
	if !intersects(a.weapons, b.weapons) {
		return false
	}
	start := maxDate(a.firstDate, b.firstDate)
	end := minDate(a.lastDate, b.lastDate)
	return yearGap(start, end) <= 1
}

// yearGap is the calendar-year distance between two YYYY-MM-DD dates.
func yearGap(d1, d2 string) int {
	y1, y2 := dateYear(d1), dateYear(d2)
	if y1 == 0 || y2 == 0 {
		return 0
	}
	if y2 < y1 {
		return y1 - y2
	}
	return y2 - y1
}

func dateYear(d string) int {
	if len(d) < 4 {
		return 0
	}
	y, err := strconv.Atoi(d[:4])
	if err != nil {
		return 0
	}
	return y
}

func maxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minDate(a, b string) string {
	if a < b {
		return a
	}
	return b
}
