package resolver

import "fmt"

// idGenerator mints sequential player IDs of the form {CC}P{NNNNN}, keyed on
// (name, chronologically first team) so re-resolving the same corpus yields
// the same IDs. Distinct people who share both name and first team (an age
// split inside one club produces this) are told apart by occurrence index
// within the run.
type idGenerator struct {
	country string
	counter int
	memo    map[idKey][]string
	used    map[idKey]int
}

type idKey struct {
	name      string
	firstTeam string
}

func newIDGenerator(country string) *idGenerator {
	return &idGenerator{
		country: country,
		memo:    make(map[idKey][]string),
		used:    make(map[idKey]int),
	}
}

// beginRun resets the per-run occurrence counts. Resolution order is
// deterministic, so the nth identity under a key is the same across runs.
func (g *idGenerator) beginRun() {
	g.used = make(map[idKey]int)
}

func (g *idGenerator) playerID(name, firstTeam string) string {
	k := idKey{name: name, firstTeam: firstTeam}
	idx := g.used[k]
	g.used[k]++
	if idx < len(g.memo[k]) {
		return g.memo[k][idx]
	}
	g.counter++
	id := fmt.Sprintf("%sP%05d", g.country, g.counter)
	g.memo[k] = append(g.memo[k], id)
	return id
}

// SpecialPlayer pins a notable athlete to a fixed ID. A profile matches when
// it carries any of the listed teams in its history.
type SpecialPlayer struct {
	Teams []string
	ID    string
}

// defaultSpecialPlayers covers athletes whose IDs are referenced outside the
// database and must survive any re-resolution.
var defaultSpecialPlayers = map[string]SpecialPlayer{
	"박소윤": {Teams: []string{"최병철펜싱클럽"}, ID: "KOP00000"},
}
