package resolver

import (
	"sort"

	"github.com/fencekor/fenceid/internal/classify"
	"github.com/fencekor/fenceid/internal/model"
)

// genderOrder fixes the bucket iteration order so resolution output is
// deterministic regardless of map iteration.
var genderOrder = []model.Gender{model.GenderFemale, model.GenderMale, model.GenderUnknown}

// partitionByGender buckets records by the gender inferred from their event
// names. Records with no gender marker are folded into a gendered bucket when
// their team appears in exactly one of them; otherwise they stay unknown.
func partitionByGender(records []model.Appearance) map[model.Gender][]model.Appearance {
	buckets := make(map[model.Gender][]model.Appearance)
	for _, rec := range records {
		g := classify.Gender(rec.EventName)
		buckets[g] = append(buckets[g], rec)
	}

	unknown := buckets[model.GenderUnknown]
	if len(unknown) == 0 {
		return buckets
	}

	maleTeams := teamSet(buckets[model.GenderMale])
	femaleTeams := teamSet(buckets[model.GenderFemale])

	folded := false
	var stillUnknown []model.Appearance
	for _, rec := range unknown {
		_, m := maleTeams[rec.Team]
		_, f := femaleTeams[rec.Team]
		switch {
		case rec.Team != "" && m && !f:
			buckets[model.GenderMale] = append(buckets[model.GenderMale], rec)
			folded = true
		case rec.Team != "" && f && !m:
			buckets[model.GenderFemale] = append(buckets[model.GenderFemale], rec)
			folded = true
		default:
			stillUnknown = append(stillUnknown, rec)
		}
	}
	if len(stillUnknown) > 0 {
		buckets[model.GenderUnknown] = stillUnknown
	} else {
		delete(buckets, model.GenderUnknown)
	}

	// Folding appends out of date order; the age-regression scan needs its
	// input date-sorted.
	if folded {
		for _, g := range []model.Gender{model.GenderMale, model.GenderFemale} {
			recs := buckets[g]
			sort.SliceStable(recs, func(i, j int) bool {
				return recs[i].CompDate < recs[j].CompDate
			})
		}
	}
	return buckets
}

func teamSet(records []model.Appearance) map[string]struct{} {
	set := make(map[string]struct{})
	for _, rec := range records {
		if rec.Team != "" {
			set[rec.Team] = struct{}{}
		}
	}
	return set
}
