package intlname

import "testing"

func TestVerifiedCandidates(t *testing.T) {
	cands := Candidates("박소윤")
	if len(cands) != 1 {
		t.Fatalf("verified name yields one candidate, got %d", len(cands))
	}
	c := cands[0]
	if c.FullName != "Soyun Park" || c.Confidence != 1.0 || c.Source != "verified" {
		t.Errorf("unexpected candidate %+v", c)
	}
	if c.ExternalID != "100809497" {
		t.Errorf("fencingtracker ID not carried: %q", c.ExternalID)
	}
	if c.Order != "western" {
		t.Errorf("Soyun Park is western order, got %s", c.Order)
	}
}

func TestFIEIDWinsOverTrackerID(t *testing.T) {
	c := Candidates("송세라")[0]
	if c.ExternalID != "33038" {
		t.Errorf("want FIE ID 33038, got %q", c.ExternalID)
	}
	if c.Order != "eastern" {
		t.Errorf("SONG Sera is eastern order, got %s", c.Order)
	}
}

func TestRomanizedCandidates(t *testing.T) {
	cands := Candidates("김시우")
	if len(cands) != 4 { // two surname variants, two orders each
		t.Fatalf("want 4 candidates, got %d", len(cands))
	}
	if cands[0].FullName != "Siu Kim" {
		t.Errorf("best candidate: want Siu Kim, got %q", cands[0].FullName)
	}
	if cands[1].FullName != "Kim Siu" {
		t.Errorf("eastern variant: want Kim Siu, got %q", cands[1].FullName)
	}
	if cands[0].Confidence <= cands[2].Confidence {
		t.Error("first surname variant must score higher")
	}
}

func TestRareSurnameFallsBackToRomanization(t *testing.T) {
	cands := Candidates("탁민준")
	if len(cands) != 2 {
		t.Fatalf("unlisted surname yields one variant pair, got %d", len(cands))
	}
	if cands[0].Surname != "Tak" {
		t.Errorf("want romanized surname Tak, got %q", cands[0].Surname)
	}
}

func TestManagerBest(t *testing.T) {
	m := NewManager()
	best, ok := m.Best("공하이")
	if !ok || best.FullName != "Hai Gong" {
		t.Fatalf("want Hai Gong, got %+v ok=%v", best, ok)
	}
	best, ok = m.Best("김시우")
	if !ok || best.Source != "romanization" {
		t.Fatalf("unverified name falls back to romanization, got %+v", best)
	}
	if _, ok := m.Best(""); ok {
		t.Error("empty name has no rendering")
	}
}

func TestManagerAddVerified(t *testing.T) {
	m := NewManager()
	m.AddVerified("김시우", Mapping{NameEN: "Siwoo Kim", Surname: "Kim", Given: "Siwoo", FIEID: "99999"})
	best, ok := m.Best("김시우")
	if !ok || best.FullName != "Siwoo Kim" || best.Source != "verified" {
		t.Fatalf("runtime mapping must win, got %+v", best)
	}
	if best.ExternalID != "99999" {
		t.Errorf("external ID not carried: %q", best.ExternalID)
	}
}

func TestVerifyMatch(t *testing.T) {
	m := NewManager()

	ok, conf, _ := m.VerifyMatch("박소윤", "Soyun Park")
	if !ok || conf != 1.0 {
		t.Errorf("verified exact match: ok=%v conf=%v", ok, conf)
	}

	ok, _, reason := m.VerifyMatch("박소윤", "S. Park")
	if !ok {
		t.Errorf("surname still matches: %s", reason)
	}

	ok, _, _ = m.VerifyMatch("김시우", "Kim Siu")
	if !ok {
		t.Error("romanization variant must match")
	}

	ok, _, _ = m.VerifyMatch("김시우", "Tanaka Hiroshi")
	if ok {
		t.Error("unrelated name must not match")
	}
}
