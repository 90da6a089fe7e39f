package resolver

import "github.com/fencekor/fenceid/internal/model"

// partitionByWeapon splits records into components of teams connected by
// shared weapons. Fencers specialize in one weapon, so teams whose weapon
// sets never intersect belong to different people. Records with no team, or
// whose team never carries a weapon, default into the single undivided group
// when only one component exists; otherwise they form their own residual
// group.
func partitionByWeapon(records []model.Appearance) [][]model.Appearance {
	var order []string
	weapons := make(map[string]map[string]struct{})
	for _, rec := range records {
		if rec.Team == "" || rec.Weapon == "" {
			continue
		}
		if weapons[rec.Team] == nil {
			weapons[rec.Team] = make(map[string]struct{})
			order = append(order, rec.Team)
		}
		weapons[rec.Team][rec.Weapon] = struct{}{}
	}

	if len(order) == 0 {
		return [][]model.Appearance{records}
	}

	idx := make(map[string]int, len(order))
	for i, team := range order {
		idx[team] = i
	}

	uf := newUnionFind(len(order))
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if intersects(weapons[order[i]], weapons[order[j]]) {
				uf.union(i, j)
			}
		}
	}

	// Components numbered in first-seen team order.
	compIdx := make(map[int]int)
	var nComps int
	for i := range order {
		root := uf.find(i)
		if _, ok := compIdx[root]; !ok {
			compIdx[root] = nComps
			nComps++
		}
	}

	parts := make([][]model.Appearance, nComps)
	var residual []model.Appearance
	for _, rec := range records {
		if i, ok := idx[rec.Team]; ok {
			c := compIdx[uf.find(i)]
			parts[c] = append(parts[c], rec)
			continue
		}
		if nComps == 1 {
			parts[0] = append(parts[0], rec)
		} else {
			residual = append(residual, rec)
		}
	}
	if len(residual) > 0 {
		parts = append(parts, residual)
	}
	return parts
}

func intersects(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for w := range a {
		if _, ok := b[w]; ok {
			return true
		}
	}
	return false
}
