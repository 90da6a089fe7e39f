// Package intlname renders Korean athlete names in English. Verified
// mappings (checked against FIE and fencingtracker profiles) win; everything
// else falls back to revised-romanization variants built from the common
// surname table.
package intlname

import (
	"strings"

	"github.com/fencekor/fenceid/internal/hangul"
)

// Mapping is one hand-verified Korean-to-English name mapping.
type Mapping struct {
	NameEN           string
	Surname          string
	Given            string
	FIEID            string
	FencingTrackerID string
	BirthYear        int
	Weapon           string
}

// ExternalID returns the FIE ID when present, else the fencingtracker ID.
func (m Mapping) ExternalID() string {
	if m.FIEID != "" {
		return m.FIEID
	}
	return m.FencingTrackerID
}

const (
	fieBaseURL     = "https://fie.org"
	trackerBaseURL = "https://fencingtracker.com"
)

// FIEProfileURL returns the public FIE athlete page for an FIE ID.
func FIEProfileURL(fieID string) string {
	return fieBaseURL + "/athletes/" + fieID
}

// TrackerProfileURL returns the public fencingtracker page for a tracker ID.
func TrackerProfileURL(trackerID string) string {
	return trackerBaseURL + "/p/" + trackerID
}

// ProfileURL returns the public profile page for the mapping's external ID,
// preferring FIE, or "" when the mapping carries no external ID.
func (m Mapping) ProfileURL() string {
	if m.FIEID != "" {
		return FIEProfileURL(m.FIEID)
	}
	if m.FencingTrackerID != "" {
		return TrackerProfileURL(m.FencingTrackerID)
	}
	return ""
}

var verifiedNames = map[string]Mapping{
	"박소윤": {
		NameEN: "Soyun Park", Surname: "Park", Given: "Soyun",
		FencingTrackerID: "100809497", BirthYear: 2013, Weapon: "Foil",
	},
	"공하이": {
		NameEN: "Hai Gong", Surname: "Gong", Given: "Hai",
		FencingTrackerID: "100370147", Weapon: "Foil",
	},
	"송세라": {
		NameEN: "SONG Sera", Surname: "Song", Given: "Sera",
		FIEID: "33038", BirthYear: 1992, Weapon: "Epee",
	},
	"임태희": {
		NameEN: "LIM Taehee", Surname: "Lim", Given: "Taehee",
		FIEID: "46568", BirthYear: 2001, Weapon: "Epee",
	},
}

// surnames lists the standard romanizations of common Korean surnames, most
// common variant first.
var surnames = map[string][]string{
	"김": {"Kim", "Gim"},
	"이": {"Lee", "Yi", "Rhee"},
	"박": {"Park", "Pak", "Bak"},
	"최": {"Choi", "Choe"},
	"정": {"Jung", "Jeong", "Chung"},
	"강": {"Kang", "Gang"},
	"조": {"Jo", "Cho"},
	"윤": {"Yoon", "Yun"},
	"장": {"Jang", "Chang"},
	"임": {"Lim", "Im", "Yim"},
	"한": {"Han"},
	"오": {"Oh", "O"},
	"서": {"Seo", "Suh"},
	"신": {"Shin", "Sin"},
	"권": {"Kwon", "Gwon"},
	"황": {"Hwang"},
	"안": {"An", "Ahn"},
	"송": {"Song"},
	"류": {"Ryu", "Yoo", "Yu"},
	"유": {"Yoo", "Yu", "You"},
	"홍": {"Hong"},
	"전": {"Jeon", "Jun", "Chun"},
	"고": {"Ko", "Go", "Koh"},
	"문": {"Moon", "Mun"},
	"양": {"Yang"},
	"손": {"Son"},
	"배": {"Bae", "Pae"},
	"백": {"Baek", "Paek", "Back"},
	"허": {"Heo", "Hur", "Huh"},
	"노": {"No", "Noh", "Roh"},
	"남": {"Nam"},
	"하": {"Ha"},
	"심": {"Shim", "Sim"},
	"주": {"Joo", "Ju"},
	"공": {"Gong", "Kong"},
}

// Candidate is one possible English rendering of a Korean name.
type Candidate struct {
	FullName   string
	Surname    string
	GivenName  string
	Order      string // "western" (Given Surname) or "eastern" (Surname Given)
	Confidence float64
	Source     string // "verified" or "romanization"
	ExternalID string
}

// Candidates generates English renderings for a Korean name. A verified
// mapping yields exactly one candidate; otherwise each surname variant
// produces a western- and an eastern-order pair, most common variant with
// the highest confidence.
func Candidates(koreanName string) []Candidate {
	if v, ok := verifiedNames[koreanName]; ok {
		order := "eastern"
		if strings.HasPrefix(v.NameEN, v.Given) {
			order = "western"
		}
		return []Candidate{{
			FullName:   v.NameEN,
			Surname:    v.Surname,
			GivenName:  v.Given,
			Order:      order,
			Confidence: 1.0,
			Source:     "verified",
			ExternalID: v.ExternalID(),
		}}
	}

	runes := []rune(koreanName)
	if len(runes) == 0 {
		return nil
	}
	surnameKR := string(runes[0])
	givenKR := string(runes[1:])

	variants, ok := surnames[surnameKR]
	if !ok {
		variants = []string{capitalize(hangul.Romanize(surnameKR))}
	}
	given := capitalize(hangul.Romanize(givenKR))

	var out []Candidate
	for i, surname := range variants {
		conf := 0.7 - float64(i)*0.1
		out = append(out,
			Candidate{
				FullName:   given + " " + surname,
				Surname:    surname,
				GivenName:  given,
				Order:      "western",
				Confidence: conf,
				Source:     "romanization",
			},
			Candidate{
				FullName:   surname + " " + given,
				Surname:    surname,
				GivenName:  given,
				Order:      "eastern",
				Confidence: conf - 0.05,
				Source:     "romanization",
			},
		)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Manager answers English-name lookups, with room for mappings learned at
// runtime on top of the built-in verified table.
type Manager struct {
	extra map[string]Mapping
}

// NewManager returns a Manager with the built-in verified mappings.
func NewManager() *Manager {
	return &Manager{extra: make(map[string]Mapping)}
}

// AddVerified registers a runtime-verified mapping, shadowing any built-in
// or romanized rendering for that name.
func (m *Manager) AddVerified(koreanName string, mapping Mapping) {
	m.extra[koreanName] = mapping
}

// Lookup returns the verified mapping for a name, if any.
func (m *Manager) Lookup(koreanName string) (Mapping, bool) {
	if v, ok := m.extra[koreanName]; ok {
		return v, true
	}
	v, ok := verifiedNames[koreanName]
	return v, ok
}

// Best returns the best English rendering for a Korean name: the verified
// mapping when one exists, else the highest-confidence romanization.
func (m *Manager) Best(koreanName string) (Candidate, bool) {
	if v, ok := m.extra[koreanName]; ok {
		return Candidate{
			FullName:   v.NameEN,
			Surname:    v.Surname,
			GivenName:  v.Given,
			Order:      "western",
			Confidence: 1.0,
			Source:     "verified",
			ExternalID: v.ExternalID(),
		}, true
	}
	cands := Candidates(koreanName)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Confidence > best.Confidence {
			best = c
		}
	}
	return best, true
}

// VerifyMatch scores how well an English name matches a Korean one. It
// returns whether they match, a confidence, and the rule that decided.
func (m *Manager) VerifyMatch(koreanName, englishName string) (bool, float64, string) {
	en := strings.ToLower(englishName)

	if v, ok := m.Lookup(koreanName); ok {
		if strings.ToLower(v.NameEN) == en {
			return true, 1.0, "verified match"
		}
		if strings.Contains(en, strings.ToLower(v.Surname)) ||
			strings.Contains(en, strings.ToLower(v.Given)) {
			return true, 0.8, "partial verified match"
		}
	}

	for _, c := range Candidates(koreanName) {
		if strings.ToLower(c.FullName) == en {
			return true, c.Confidence, "romanization match (" + c.Order + " order)"
		}
		parts := strings.Fields(en)
		if len(parts) >= 2 &&
			containsWord(parts, strings.ToLower(c.Surname)) &&
			containsWord(parts, strings.ToLower(c.GivenName)) {
			return true, c.Confidence * 0.9, "name parts match (different order)"
		}
	}

	runes := []rune(koreanName)
	if len(runes) > 0 {
		for _, variant := range surnames[string(runes[0])] {
			if strings.Contains(en, strings.ToLower(variant)) {
				return true, 0.5, "surname match (" + variant + ")"
			}
		}
	}
	return false, 0, "no match found"
}

func containsWord(words []string, w string) bool {
	for _, s := range words {
		if s == w {
			return true
		}
	}
	return false
}
