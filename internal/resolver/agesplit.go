package resolver

import (
	"github.com/fencekor/fenceid/internal/classify"
	"github.com/fencekor/fenceid/internal/model"
)

// findAgeRegressionSplit scans date-sorted records for a chronologically
// impossible age-group regression: a drop of two or more progression levels.
// A one-level drop is tolerated (seniors guest in the division below, labels
// lag a school year). On a hit it returns the date of the regressing record,
// which becomes the boundary between two different people.
func findAgeRegressionSplit(records []model.Appearance) (string, bool) {
	prev := 0
	for _, rec := range records {
		lvl := classify.AgeLevel(rec.AgeGroup)
		if lvl == 0 {
			continue
		}
		if prev > 0 && prev-lvl >= 2 {
			return rec.CompDate, true
		}
		prev = lvl
	}
	return "", false
}

// splitByDate cuts date-sorted records at the split date: records strictly
// before the date on one side, the rest on the other.
func splitByDate(records []model.Appearance, date string) (before, after []model.Appearance) {
	for _, rec := range records {
		if rec.CompDate < date {
			before = append(before, rec)
		} else {
			after = append(after, rec)
		}
	}
	return before, after
}
