package resolver

import "github.com/fencekor/fenceid/internal/model"

// teamPair is an unordered team pair, stored with a < b.
type teamPair struct {
	a, b string
}

func makeTeamPair(t1, t2 string) teamPair {
	if t2 < t1 {
		t1, t2 = t2, t1
	}
	return teamPair{a: t1, b: t2}
}

// overlapSet holds team pairs proven to be different people.
type overlapSet map[teamPair]struct{}

func (s overlapSet) add(t1, t2 string) {
	s[makeTeamPair(t1, t2)] = struct{}{}
}

func (s overlapSet) has(t1, t2 string) bool {
	_, ok := s[makeTeamPair(t1, t2)]
	return ok
}

// findOverlappingTeams returns every pair of teams that appeared under the
// same name within one competition. One person cannot enter a competition
// twice, so each pair proves two distinct people.
func findOverlappingTeams(records []model.Appearance) overlapSet {
	compTeams := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, rec := range records {
		if rec.Team == "" || rec.CompID == "" {
			continue
		}
		if seen[rec.CompID] == nil {
			seen[rec.CompID] = make(map[string]struct{})
		}
		if _, dup := seen[rec.CompID][rec.Team]; dup {
			continue
		}
		seen[rec.CompID][rec.Team] = struct{}{}
		compTeams[rec.CompID] = append(compTeams[rec.CompID], rec.Team)
	}

	overlaps := make(overlapSet)
	for _, teams := range compTeams {
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				overlaps.add(teams[i], teams[j])
			}
		}
	}
	return overlaps
}
